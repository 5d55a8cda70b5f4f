// Package pricing computes line item and estimate totals and formats money for
// display. Arithmetic is done on decimals so sums of cents never drift.
package pricing

import (
	"math"

	"github.com/Skale-Club/xtimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Input bounds. Prices and discounts above MaxAmount and tax rates above
// MaxTaxRate are rejected by the use cases.
const (
	MaxAmount  = 1e12
	MaxTaxRate = 100.0
)

var hundred = decimal.NewFromInt(100)

// ValidAmount reports whether v is a finite amount within [0, MaxAmount].
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= MaxAmount
}

// ValidTaxRate reports whether v is a finite percentage within [0, MaxTaxRate].
func ValidTaxRate(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= MaxTaxRate
}

// fromFloat converts v to a decimal. NaN becomes zero and infinities become
// the largest finite float of the same sign.
func fromFloat(v float64) decimal.Decimal {
	switch {
	case math.IsNaN(v):
		return decimal.Zero
	case math.IsInf(v, 1):
		v = math.MaxFloat64
	case math.IsInf(v, -1):
		v = -math.MaxFloat64
	}
	return decimal.NewFromFloat(v)
}

// toFloat converts d back, saturating at ±math.MaxFloat64 so results stay
// encodable.
func toFloat(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}

// Totals is the derived money of an estimate.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}

// LineItemTotal returns quantity * unitPrice. Callers clamp quantity.
// Results never leave the finite float range.
func LineItemTotal(quantity int, unitPrice float64) float64 {
	return toFloat(decimal.NewFromInt(int64(quantity)).Mul(fromFloat(unitPrice)))
}

// EstimateTotals sums the line item totals and applies taxRate (a percentage).
// A taxRate of zero or less yields no tax.
func EstimateTotals(items []entities.EstimateLineItem, taxRate float64) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(fromFloat(it.Total))
	}

	tax := decimal.Zero
	if taxRate > 0 {
		tax = subtotal.Mul(fromFloat(taxRate)).Div(hundred)
	}

	return Totals{
		Subtotal:  toFloat(subtotal),
		TaxAmount: toFloat(tax),
		Total:     toFloat(subtotal.Add(tax)),
	}
}

// ClampQuantity enforces the quantity floor of 1.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// ApplyTotals recomputes every line total and the estimate money from scratch.
// The stored DiscountAmount, when set, is subtracted from the total.
func ApplyTotals(e entities.Estimate) entities.Estimate {
	items := make([]entities.EstimateLineItem, len(e.LineItems))
	for i, it := range e.LineItems {
		it.Quantity = ClampQuantity(it.Quantity)
		it.Total = LineItemTotal(it.Quantity, it.UnitPrice)
		items[i] = it
	}
	e.LineItems = items

	t := EstimateTotals(items, TaxRateOf(e))
	e.Subtotal = t.Subtotal
	e.TaxAmount = t.TaxAmount
	e.Total = t.Total
	if e.DiscountAmount != nil {
		e.Total = toFloat(fromFloat(t.Total).Sub(fromFloat(*e.DiscountAmount)))
	}
	return e
}

// TaxRateOf returns the estimate tax rate, 0 when unset.
func TaxRateOf(e entities.Estimate) float64 {
	if e.TaxRate == nil {
		return 0
	}
	return *e.TaxRate
}
