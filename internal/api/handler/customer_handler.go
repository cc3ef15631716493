package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bancobr/bank-api/internal/core/ports"
)

// CustomerHandler exposes the bare customer CRUD routes. Errors propagate
// to the central HTTP error handler for status mapping.
type CustomerHandler struct {
	customerService ports.CustomerService
}

func NewCustomerHandler(customerService ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create registers a new customer record.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customerService.Create(c.Request().Context(), req.FullName, req.Document, req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// Get returns a single customer by id.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  map[string]string
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.customerService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// List returns all customer records.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}  domain.Customer
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}
