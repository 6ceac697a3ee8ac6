package pricing

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Schedule is the quantity-based step function used for tiered discounts.
type Schedule struct {
	StartQty int
	StepQty  int
	StepPct  decimal.Decimal
	MaxPct   decimal.Decimal
}

// DefaultSchedule starts at 10 units (2.39% off) and caps at 45.45%.
var DefaultSchedule = Schedule{
	StartQty: 10,
	StepQty:  5,
	StepPct:  decimal.RequireFromString("0.0239"),
	MaxPct:   decimal.RequireFromString("0.4545"),
}

type scheduleFile struct {
	StartQty int     `yaml:"start_qty"`
	StepQty  int     `yaml:"step_qty"`
	StepPct  float64 `yaml:"step_pct"`
	MaxPct   float64 `yaml:"max_pct"`
}

// LoadSchedule reads a YAML discount schedule. Missing or non-positive fields
// keep their default values.
func LoadSchedule(path string) (Schedule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return DefaultSchedule, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var raw scheduleFile
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return DefaultSchedule, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	return NewSchedule(raw.StartQty, raw.StepQty, raw.StepPct, raw.MaxPct), nil
}

// NewSchedule builds a schedule, substituting defaults for non-positive values.
func NewSchedule(startQty, stepQty int, stepPct, maxPct float64) Schedule {
	s := DefaultSchedule
	if startQty > 0 {
		s.StartQty = startQty
	}
	if stepQty > 0 {
		s.StepQty = stepQty
	}
	if stepPct > 0 {
		s.StepPct = decimal.NewFromFloat(stepPct)
	}
	if maxPct > 0 {
		s.MaxPct = decimal.NewFromFloat(maxPct)
	}
	return s
}

// DiscountPct returns the discount fraction for qty, rounded to 4 decimal places.
func (s Schedule) DiscountPct(qty int) decimal.Decimal {
	if qty < 1 {
		qty = 1
	}
	if qty < s.StartQty {
		return decimal.Zero
	}

	stepQty := s.StepQty
	if stepQty < 1 {
		stepQty = 1
	}

	steps := (qty-s.StartQty)/stepQty + 1
	pct := decimal.Min(s.MaxPct, s.StepPct.Mul(decimal.NewFromInt(int64(steps))))
	return pct.Round(4)
}
