package api

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/reservation"
)

// -------------------------
// Customer DTOs
// -------------------------

type SaveCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// apply copies the request onto c, normalizing the name fields.
func (r *SaveCustomerRequest) apply(c *customer.Customer) {
	c.FirstName = cleanName(r.FirstName)
	c.LastName = cleanName(r.LastName)
	c.Phone = r.Phone
	c.Notes = r.Notes
}

type CustomerResponse struct {
	customer.Customer
	FullName string `json:"fullName"`
}

func toCustomerResponse(c customer.Customer) CustomerResponse {
	return CustomerResponse{Customer: c, FullName: c.FullName()}
}

func toCustomerResponses(in []customer.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(in))
	for i, c := range in {
		out[i] = toCustomerResponse(c)
	}
	return out
}

// -------------------------
// Reservation DTOs
// -------------------------

type CreateReservationRequest struct {
	StartAt   time.Time `json:"startAt"`
	NumGuests int       `json:"numGuests"`
	Notes     string    `json:"notes"`
}

type ReservationResponse struct {
	reservation.Reservation
	FormattedStartAt string `json:"formattedStartAt"`
}

func toReservationResponse(r reservation.Reservation) ReservationResponse {
	return ReservationResponse{Reservation: r, FormattedStartAt: r.FormattedStartAt()}
}

func toReservationResponses(in []reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(in))
	for i, r := range in {
		out[i] = toReservationResponse(r)
	}
	return out
}

// cleanName trims s and puts it in Unicode NFC so that composed and
// decomposed spellings of the same name store and search alike.
func cleanName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
