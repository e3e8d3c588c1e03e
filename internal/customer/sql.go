package customer

const getAllCustomersSQL = `
SELECT id, first_name, last_name, phone, notes
FROM customers
ORDER BY last_name, first_name
`

const getCustomerSQL = `
SELECT id, first_name, last_name, phone, notes
FROM customers
WHERE id = ?
`

const searchCustomersSQL = `
SELECT id, first_name, last_name, phone, notes
FROM customers
WHERE LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)
ORDER BY last_name, first_name
`

// sqlite's LOWER is ASCII only; ulower is registered by the sqlite package.
const searchCustomersSQLite = `
SELECT id, first_name, last_name, phone, notes
FROM customers
WHERE ulower(first_name) LIKE ulower(?) OR ulower(last_name) LIKE ulower(?)
ORDER BY last_name, first_name
`

const topReservationCountsSQL = `
SELECT customer_id, COUNT(*) AS reservation_count
FROM reservations
GROUP BY customer_id
ORDER BY reservation_count DESC, customer_id
LIMIT ?
`

const createCustomerSQL = `
INSERT INTO customers (
    first_name, last_name, phone, notes
) VALUES (?, ?, ?, ?)
RETURNING id
`

const updateCustomerSQL = `
UPDATE customers
SET first_name = ?, last_name = ?, phone = ?, notes = ?
WHERE id = ?
`
