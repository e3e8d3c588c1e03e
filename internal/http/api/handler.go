package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"winsbygroup.com/lunchly/internal/apperr"
	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/database"
	"winsbygroup.com/lunchly/internal/reservation"
)

type Handler struct {
	customers    *customer.Service
	reservations *reservation.Service
}

func NewHandler(c *customer.Service, r *reservation.Service) *Handler {
	return &Handler{
		customers:    c,
		reservations: r,
	}
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

// fail maps err to its status hint; constraint violations are the caller's fault.
func fail(c echo.Context, err error) error {
	status := apperr.StatusCode(err)
	if status == http.StatusInternalServerError && database.IsConstraintError(err) {
		status = http.StatusBadRequest
	}
	return errorJSON(c, status, err.Error())
}

func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Customers

// GET /customers[?search=name]
func (h *Handler) GetCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		out []customer.Customer
		err error
	)
	if term := c.QueryParam("search"); term != "" {
		out, err = h.customers.Search(ctx, cleanName(term))
	} else {
		out, err = h.customers.All(ctx)
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponses(out))
}

// GET /customers/top
func (h *Handler) GetTopCustomers(c echo.Context) error {
	out, err := h.customers.TopTen(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponses(out))
}

// GET /customers/:id
func (h *Handler) GetCustomer(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid customer id")
	}
	out, err := h.customers.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(*out))
}

// POST /customers
func (h *Handler) CreateCustomer(c echo.Context) error {
	var req SaveCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	var cust customer.Customer
	req.apply(&cust)
	if err := h.customers.Save(c.Request().Context(), &cust); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, toCustomerResponse(cust))
}

// PUT /customers/:id
func (h *Handler) UpdateCustomer(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid customer id")
	}

	var req SaveCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	cust, err := h.customers.Get(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	req.apply(cust)
	if err := h.customers.Save(ctx, cust); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Reservations

// GET /customers/:id/reservations
func (h *Handler) GetCustomerReservations(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid customer id")
	}

	ctx := c.Request().Context()
	cust, err := h.customers.Get(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.customers.Reservations(ctx, cust)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toReservationResponses(out))
}

// POST /customers/:id/reservations
func (h *Handler) CreateReservation(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid customer id")
	}

	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.StartAt.IsZero() {
		return errorJSON(c, http.StatusBadRequest, "missing startAt")
	}

	ctx := c.Request().Context()
	if _, err := h.customers.Get(ctx, id); err != nil {
		return fail(c, err)
	}

	r := &reservation.Reservation{
		CustomerID: id,
		StartAt:    req.StartAt,
		NumGuests:  req.NumGuests,
		Notes:      req.Notes,
	}
	if err := h.reservations.Save(ctx, r); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, toReservationResponse(*r))
}

// GET /reservations/:id
func (h *Handler) GetReservation(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid reservation id")
	}
	out, err := h.reservations.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toReservationResponse(*out))
}
