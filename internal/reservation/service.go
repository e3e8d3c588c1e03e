package reservation

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Service struct {
	repo Repository
}

func NewService(db *sqlx.DB) *Service {
	return &Service{repo: New(db)}
}

func (s *Service) Get(ctx context.Context, id int64) (*Reservation, error) {
	return s.repo.Get(ctx, id)
}

// ForCustomer returns the customer's reservations in start order.
func (s *Service) ForCustomer(ctx context.Context, customerID int64) ([]Reservation, error) {
	return s.repo.ForCustomer(ctx, customerID)
}

// Save inserts r when it has no ID (assigning the new one), otherwise
// updates the existing row.
func (s *Service) Save(ctx context.Context, r *Reservation) error {
	if r.ID == 0 {
		id, err := s.repo.Create(ctx, r)
		if err != nil {
			return err
		}
		r.ID = id
		return nil
	}
	return s.repo.Update(ctx, r)
}
