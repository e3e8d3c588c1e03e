package reservation

import "time"

// Reservation is one booking made by a customer.
type Reservation struct {
	ID         int64     `db:"id" json:"id"`
	CustomerID int64     `db:"customer_id" json:"customerId"`
	NumGuests  int       `db:"num_guests" json:"numGuests"`
	StartAt    time.Time `db:"start_at" json:"startAt"`
	Notes      string    `db:"notes" json:"notes"`
}

const startAtLayout = "January 2 2006, 3:04 pm"

// FormattedStartAt renders StartAt for display, e.g. "October 20 2026, 12:30 pm".
func (r *Reservation) FormattedStartAt() string {
	return r.StartAt.Format(startAtLayout)
}
