package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Catalog resolves a product reference to its base unit price.
type Catalog interface {
	UnitPrice(productRef string) (decimal.Decimal, bool)
}

// MapCatalog is a Catalog backed by a slug → price map.
type MapCatalog map[string]decimal.Decimal

// UnitPrice implements Catalog.
func (m MapCatalog) UnitPrice(productRef string) (decimal.Decimal, bool) {
	price, ok := m[productRef]
	return price, ok
}

// ItemInput is a loosely typed line as submitted by a form. Quantity and Price
// accept numbers, numeric strings or nil.
type ItemInput struct {
	ProductRef string
	Quantity   any
	Price      any
}

// PricedLineItem is the result of pricing a single line.
type PricedLineItem struct {
	ProductRef         string          `json:"product_ref"`
	Quantity           int             `json:"qty"`
	BaseUnitPrice      decimal.Decimal `json:"base_unit_price"`
	DiscountPct        decimal.Decimal `json:"discount_pct"`
	EffectiveUnitPrice decimal.Decimal `json:"effective_unit_price"`
	LineTotal          decimal.Decimal `json:"line_total"`
}

// PricedCart aggregates independently priced lines.
type PricedCart struct {
	Rows             []PricedLineItem `json:"rows"`
	MerchandiseTotal decimal.Decimal  `json:"merchandise_total"`
}

var one = decimal.NewFromInt(1)

// PriceItem prices one line. An explicit price overrides the catalog; a missing
// price resolves to zero. It never fails.
func PriceItem(s Schedule, item ItemInput, catalog Catalog) PricedLineItem {
	qty := CoerceQuantity(item.Quantity)

	base, ok := CoercePrice(item.Price)
	if !ok && catalog != nil {
		if price, found := catalog.UnitPrice(item.ProductRef); found && price.IsPositive() {
			base = price
		}
	}

	discount := s.DiscountPct(qty)
	effective := base.Mul(one.Sub(discount))
	lineTotal := effective.Mul(decimal.NewFromInt(int64(qty)))

	return PricedLineItem{
		ProductRef:         item.ProductRef,
		Quantity:           qty,
		BaseUnitPrice:      base,
		DiscountPct:        discount,
		EffectiveUnitPrice: effective.Round(2),
		LineTotal:          lineTotal.Round(2),
	}
}

// PriceCart prices every item on its own quantity and sums the line totals.
func PriceCart(s Schedule, items []ItemInput, catalog Catalog) PricedCart {
	rows := make([]PricedLineItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		row := PriceItem(s, item, catalog)
		rows = append(rows, row)
		total = total.Add(row.LineTotal)
	}

	return PricedCart{
		Rows:             rows,
		MerchandiseTotal: total.Round(2),
	}
}

// CoerceQuantity turns form input into a quantity of at least 1.
func CoerceQuantity(v any) int {
	f, ok := toFloat(v)
	if !ok || f < 1 {
		return 1
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(f))
}

// CoercePrice returns the numeric price in v. The boolean is false when v holds
// no usable number; negative prices are clamped to zero but still count as set.
func CoercePrice(v any) (decimal.Decimal, bool) {
	switch p := v.(type) {
	case decimal.Decimal:
		if p.IsNegative() {
			return decimal.Zero, true
		}
		return p, true
	case *decimal.Decimal:
		if p == nil {
			return decimal.Zero, false
		}
		return CoercePrice(*p)
	}

	f, ok := toFloat(v)
	if !ok {
		return decimal.Zero, false
	}
	if f < 0 {
		return decimal.Zero, true
	}
	return decimal.NewFromFloat(f), true
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
