package handlers

import (
	stderrors "errors"
	"net/http"

	"crm-service/internal/dto"
	"crm-service/internal/errors"
	"crm-service/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandler serves the product catalog and cart quotes
type ProductHandler struct {
	pricingService services.PricingServiceInterface
}

func NewProductHandler(pricingService services.PricingServiceInterface) *ProductHandler {
	return &ProductHandler{pricingService: pricingService}
}

// ListProducts returns the catalog ordered by slug
// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.pricingService.ListProducts(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// CreateProduct adds a catalog entry
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 409 {object} errors.ErrorResponse "PRODUCT_002 - Slug already exists"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req dto.CreateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.pricingService.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return sendProductError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// UpdateProduct changes a product's name or base price
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Param slug path string true "Product slug"
// @Param request body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} errors.ErrorResponse "PRODUCT_001 - Product not found"
// @Router /products/{slug} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req dto.UpdateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.pricingService.UpdateProduct(c.Request().Context(), c.Param("slug"), &req)
	if err != nil {
		return sendProductError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Quote prices a cart with the tiered discount schedule. Each row is priced on
// its own quantity.
// @Summary Price a cart
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Cart items"
// @Success 200 {object} dto.QuoteResponse
// @Router /pricing/quote [post]
func (h *ProductHandler) Quote(c echo.Context) error {
	var req dto.QuoteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.pricingService.Quote(c.Request().Context(), req.ItemInputs())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.QuoteResponse{
		Rows:             cart.Rows,
		MerchandiseTotal: cart.MerchandiseTotal,
		Schedule:         dto.NewScheduleResponse(h.pricingService.Schedule()),
	})
}

// Schedule returns the active discount schedule
// @Summary Discount schedule
// @Tags Pricing
// @Produce json
// @Success 200 {object} dto.ScheduleResponse
// @Router /pricing/schedule [get]
func (h *ProductHandler) Schedule(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewScheduleResponse(h.pricingService.Schedule()))
}

func sendProductError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrProductNotFound):
		return SendError(c, errors.ProductNotFound)
	case stderrors.Is(err, services.ErrProductAlreadyExists):
		return SendError(c, errors.ProductAlreadyExists)
	case stderrors.Is(err, services.ErrInvalidProductSlug):
		return SendError(c, errors.ProductInvalidSlug)
	case stderrors.Is(err, services.ErrInvalidProductPrice):
		return SendError(c, errors.ProductInvalidPrice)
	}
	return SendSystemError(c, err)
}
