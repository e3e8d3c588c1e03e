package api

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the customer and reservation endpoints under g.
func RegisterRoutes(g *echo.Group, h *Handler) {

	// Customers
	g.GET("/customers", h.GetCustomers)
	g.GET("/customers/top", h.GetTopCustomers)
	g.GET("/customers/:id", h.GetCustomer)
	g.POST("/customers", h.CreateCustomer)
	g.PUT("/customers/:id", h.UpdateCustomer)

	// Reservations
	g.GET("/customers/:id/reservations", h.GetCustomerReservations)
	g.POST("/customers/:id/reservations", h.CreateReservation)
	g.GET("/reservations/:id", h.GetReservation)
}
