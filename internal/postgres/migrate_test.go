package postgres_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"

	"winsbygroup.com/lunchly/internal/postgres"
)

func TestSchema(t *testing.T) {
	s := postgres.Schema()
	for _, want := range []string{"SERIAL PRIMARY KEY", "reservations", "CHECK (num_guests > 0)"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected schema to contain %q", want)
		}
	}
}

func TestIsConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"foreign key violation", &pq.Error{Code: "23503"}, true},
		{"check violation", &pq.Error{Code: "23514"}, true},
		{"wrapped not null violation", fmt.Errorf("save: %w", &pq.Error{Code: "23502"}), true},
		{"syntax error", &pq.Error{Code: "42601"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := postgres.IsConstraintError(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
