package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/apperr"
)

type Repository interface {
	Get(ctx context.Context, id int64) (*Reservation, error)
	ForCustomer(ctx context.Context, customerID int64) ([]Reservation, error)
	Create(ctx context.Context, r *Reservation) (int64, error)
	Update(ctx context.Context, r *Reservation) error
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Get(ctx context.Context, id int64) (*Reservation, error) {
	var res Reservation
	err := r.db.GetContext(ctx, &res, r.db.Rebind(getReservationSQL), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("reservation", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

func (r *repo) ForCustomer(ctx context.Context, customerID int64) ([]Reservation, error) {
	out := []Reservation{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(getForCustomerSQL), customerID)
	if err != nil {
		return nil, fmt.Errorf("get reservations for customer: %w", err)
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, res *Reservation) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(createReservationSQL),
		res.CustomerID,
		res.StartAt,
		res.NumGuests,
		res.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("create reservation: %w", err)
	}
	return id, nil
}

func (r *repo) Update(ctx context.Context, res *Reservation) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(updateReservationSQL),
		res.CustomerID,
		res.StartAt,
		res.NumGuests,
		res.Notes,
		res.ID,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}
