package dto

import (
	"crm-service/internal/models"
	"crm-service/internal/pricing"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Slug  string          `json:"slug" validate:"required,max=128,product_slug"`
	Name  string          `json:"name" validate:"required,max=255"`
	Price decimal.Decimal `json:"price"`
}

type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Price *decimal.Decimal `json:"price"`
}

type ProductResponse struct {
	ID    string          `json:"id"`
	Slug  string          `json:"slug"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// QuoteItem is one requested cart row. Quantity and price are loosely typed
// and coerced by the pricing engine.
type QuoteItem struct {
	ProductRef string      `json:"productRef"`
	Quantity   interface{} `json:"qty"`
	Price      interface{} `json:"price"`
}

type QuoteRequest struct {
	Items []QuoteItem `json:"items" validate:"max=1000"`
}

type QuoteResponse struct {
	Rows             []pricing.PricedLineItem `json:"rows"`
	MerchandiseTotal decimal.Decimal          `json:"merchandiseTotal"`
	Schedule         ScheduleResponse         `json:"schedule"`
}

type ScheduleResponse struct {
	StartQty int             `json:"startQty"`
	StepQty  int             `json:"stepQty"`
	StepPct  decimal.Decimal `json:"stepPct"`
	MaxPct   decimal.Decimal `json:"maxPct"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{ID: p.ID.String(), Slug: p.Slug, Name: p.Name, Price: p.Price}
}

func NewProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}

func NewScheduleResponse(s pricing.Schedule) ScheduleResponse {
	return ScheduleResponse{StartQty: s.StartQty, StepQty: s.StepQty, StepPct: s.StepPct, MaxPct: s.MaxPct}
}

func (r QuoteRequest) ItemInputs() []pricing.ItemInput {
	items := make([]pricing.ItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, pricing.ItemInput{ProductRef: it.ProductRef, Quantity: it.Quantity, Price: it.Price})
	}
	return items
}
