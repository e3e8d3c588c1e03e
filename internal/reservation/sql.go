package reservation

const getReservationSQL = `
SELECT id, customer_id, num_guests, start_at, notes
FROM reservations
WHERE id = ?
`

const getForCustomerSQL = `
SELECT id, customer_id, num_guests, start_at, notes
FROM reservations
WHERE customer_id = ?
ORDER BY start_at, id
`

const createReservationSQL = `
INSERT INTO reservations (
    customer_id, start_at, num_guests, notes
) VALUES (?, ?, ?, ?)
RETURNING id
`

const updateReservationSQL = `
UPDATE reservations
SET customer_id = ?, start_at = ?, num_guests = ?, notes = ?
WHERE id = ?
`
