package customer

import (
	"context"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"winsbygroup.com/lunchly/internal/reservation"
)

// TopLimit is the number of customers returned by TopTen.
const TopLimit = 10

// ReservationFinder lists the reservations belonging to one customer.
type ReservationFinder interface {
	ForCustomer(ctx context.Context, customerID int64) ([]reservation.Reservation, error)
}

type Service struct {
	repo         Repository
	reservations ReservationFinder
}

func NewService(db *sqlx.DB, reservations ReservationFinder) *Service {
	return NewServiceWithRepository(New(db), reservations)
}

// NewServiceWithRepository builds a Service over any Repository.
func NewServiceWithRepository(repo Repository, reservations ReservationFinder) *Service {
	return &Service{
		repo:         repo,
		reservations: reservations,
	}
}

// All returns every customer ordered by last name, then first name.
func (s *Service) All(ctx context.Context) ([]Customer, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

// Search finds customers whose first or last name contains name. An empty
// result is an apperr.NotFoundError, not an empty slice.
func (s *Service) Search(ctx context.Context, name string) ([]Customer, error) {
	return s.repo.Search(ctx, name)
}

// TopTen returns up to TopLimit customers ordered by reservation count,
// highest first. The customers are fetched concurrently and any failed
// fetch fails the whole call.
func (s *Service) TopTen(ctx context.Context) ([]Customer, error) {
	counts, err := s.repo.TopReservationCounts(ctx, TopLimit)
	if err != nil {
		return nil, err
	}

	out := make([]Customer, len(counts))
	g, gctx := errgroup.WithContext(ctx)
	for i, rc := range counts {
		g.Go(func() error {
			c, err := s.repo.Get(gctx, rc.CustomerID)
			if err != nil {
				return err
			}
			out[i] = *c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Reservations returns c's reservations from the reservation collaborator.
func (s *Service) Reservations(ctx context.Context, c *Customer) ([]reservation.Reservation, error) {
	return s.reservations.ForCustomer(ctx, c.ID)
}

// Save inserts c when it is new and records the assigned ID on it;
// otherwise every field is written over the existing row.
func (s *Service) Save(ctx context.Context, c *Customer) error {
	if c.IsNew() {
		id, err := s.repo.Create(ctx, c)
		if err != nil {
			return err
		}
		c.ID = id
		return nil
	}
	return s.repo.Update(ctx, c)
}
