package server_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/server"
)

func build(t *testing.T, demo bool) *server.Server {
	t.Helper()
	srv, err := server.Build(&config.Config{
		Addr:         ":0",
		DBDriver:     config.DriverSQLite,
		DBPath:       filepath.Join(t.TempDir(), "lunchly.db"),
		DBPathSource: "test",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
		DemoMode:     demo,
	})
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() { srv.DB.Close() })
	return srv
}

func get(srv *server.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	srv := build(t, false)

	if rec := get(srv, "/livez"); rec.Code != http.StatusOK {
		t.Errorf("livez: expected %d, got %d", http.StatusOK, rec.Code)
	}
	if rec := get(srv, "/readyz"); rec.Code != http.StatusOK || rec.Body.String() != "Ready" {
		t.Errorf("readyz: expected Ready, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := build(t, false)

	rec := get(srv, "/livez")
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("expected X-Request-Id response header")
	}
}

func TestDemoModeLoadsSampleData(t *testing.T) {
	srv := build(t, true)

	rec := get(srv, "/api/customers/top")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Elena") {
		t.Errorf("expected demo customers in response, got %s", rec.Body.String())
	}
}

func TestUnsupportedDriver(t *testing.T) {
	if _, err := server.Build(&config.Config{DBDriver: "oracle"}); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestRoutesRegistered(t *testing.T) {
	srv := build(t, false)

	want := map[string]bool{
		"GET /api/customers":                   false,
		"GET /api/customers/top":               false,
		"GET /api/customers/:id":               false,
		"POST /api/customers":                  false,
		"PUT /api/customers/:id":               false,
		"GET /api/customers/:id/reservations":  false,
		"POST /api/customers/:id/reservations": false,
		"GET /api/reservations/:id":            false,
	}
	for _, r := range srv.Echo.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for k, found := range want {
		if !found {
			t.Errorf("route %s not registered", k)
		}
	}
}
