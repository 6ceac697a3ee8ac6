package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"crm-service/internal/dto"
	"crm-service/internal/errors"
	"crm-service/internal/repositories"
	"crm-service/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultCustomerPageSize = 50

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService services.CustomerServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService services.CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// ListCustomers returns a page of customers, newest first
// @Summary List customers
// @Tags Customers
// @Produce json
// @Param q query string false "Matches name, email or phone"
// @Param city query string false "Exact city"
// @Param tag query string false "Segment" Enums(lead, prospect, customer, vip)
// @Param limit query int false "Page size (max 500)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	var req dto.ListCustomersRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if req.Limit == 0 {
		req.Limit = defaultCustomerPageSize
	}

	customers, total, err := h.customerService.ListCustomers(repositories.CustomerFilter{
		Query:  strings.TrimSpace(req.Query),
		City:   strings.TrimSpace(req.City),
		Tag:    req.Tag,
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListCustomersResponse{
		Customers: dto.NewCustomerResponses(customers),
		Total:     total,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
}

// CreateCustomer creates a customer, optionally with photo URLs
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "CUSTOMER_002 - Firebase UID already linked"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req dto.CreateCustomerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	customer, err := h.customerService.CreateCustomer(c.Request().Context(), &req)
	if err != nil {
		return sendCustomerError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCustomerResponse(customer))
}

// GetCustomer returns one customer with its ordered photo URLs
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_003 - Invalid customer ID format"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "id", errors.CustomerInvalidID)
	if !ok {
		return err
	}

	customer, err := h.customerService.GetCustomer(id)
	if err != nil {
		return sendCustomerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

// UpdateCustomer changes the fields present in the body
// @Summary Update customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Param request body dto.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "id", errors.CustomerInvalidID)
	if !ok {
		return err
	}

	var req dto.UpdateCustomerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	customer, err := h.customerService.UpdateCustomer(c.Request().Context(), id, &req)
	if err != nil {
		return sendCustomerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

// DeleteCustomer removes a customer with its photos and tasks
// @Summary Delete customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "id", errors.CustomerInvalidID)
	if !ok {
		return err
	}

	if err := h.customerService.DeleteCustomer(c.Request().Context(), id); err != nil {
		return sendCustomerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{OK: true})
}

// ListCities returns the distinct customer cities, alphabetically
// @Summary List customer cities
// @Tags Customers
// @Produce json
// @Success 200 {object} dto.CitiesResponse
// @Router /customers/cities [get]
func (h *CustomerHandler) ListCities(c echo.Context) error {
	cities, err := h.customerService.ListCities(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CitiesResponse{Cities: cities})
}

func sendCustomerError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, errors.CustomerNotFound)
	case stderrors.Is(err, services.ErrCustomerAlreadyExists):
		return SendError(c, errors.CustomerAlreadyExists)
	case stderrors.Is(err, services.ErrCustomerNameRequired):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("name: is required"))
	case stderrors.Is(err, services.ErrInvalidTimestamp):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
