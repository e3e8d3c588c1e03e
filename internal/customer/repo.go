package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/apperr"
	"winsbygroup.com/lunchly/internal/sqlite"
)

// Repository is the query layer behind Service. Queries are written with
// "?" placeholders and rebound for the connected driver.
type Repository interface {
	GetAll(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	Search(ctx context.Context, name string) ([]Customer, error)
	TopReservationCounts(ctx context.Context, limit int) ([]ReservationCount, error)
	Create(ctx context.Context, c *Customer) (int64, error)
	Update(ctx context.Context, c *Customer) error
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetAll(ctx context.Context) ([]Customer, error) {
	out := []Customer{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(getAllCustomersSQL))
	if err != nil {
		return nil, fmt.Errorf("get all customers: %w", err)
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, r.db.Rebind(getCustomerSQL), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("customer", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Search matches name anywhere in the first or last name, ignoring case.
// No rows is reported as not found.
func (r *repo) Search(ctx context.Context, name string) ([]Customer, error) {
	pattern := "%" + name + "%"

	query := searchCustomersSQL
	if r.db.DriverName() == sqlite.DriverName {
		query = searchCustomersSQLite
	}

	out := []Customer{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	if len(out) == 0 {
		return nil, apperr.NotFound("customer", name)
	}
	return out, nil
}

func (r *repo) TopReservationCounts(ctx context.Context, limit int) ([]ReservationCount, error) {
	out := []ReservationCount{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(topReservationCountsSQL), limit)
	if err != nil {
		return nil, fmt.Errorf("top reservation counts: %w", err)
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, c *Customer) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(createCustomerSQL),
		c.FirstName,
		c.LastName,
		c.Phone,
		c.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}
	return id, nil
}

func (r *repo) Update(ctx context.Context, c *Customer) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(updateCustomerSQL),
		c.FirstName,
		c.LastName,
		c.Phone,
		c.Notes,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}
