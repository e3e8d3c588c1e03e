package customer

// Customer is one row of the customers table. ID is zero until the first Save.
type Customer struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Phone     string `db:"phone" json:"phone"`
	Notes     string `db:"notes" json:"notes"`
}

// FullName joins first and last name with a single space.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// IsNew reports whether c has never been saved.
func (c *Customer) IsNew() bool {
	return c.ID == 0
}

// ReservationCount pairs a customer id with its number of reservations.
type ReservationCount struct {
	CustomerID int64 `db:"customer_id"`
	Count      int64 `db:"reservation_count"`
}
