package request

import (
	"strings"
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
)

type LineItemRequest struct {
	ID            string  `json:"id"`
	ServiceItemID string  `json:"service_item_id"`
	ServiceName   string  `json:"service_name"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	UnitPrice     float64 `json:"unit_price"`
}

// EstimatePatchRequest edits a saved estimate. Totals are always derived
// from the line items, so the payload carries none.
type EstimatePatchRequest struct {
	CustomerName       *string            `json:"customer_name"`
	CustomerEmail      *string            `json:"customer_email"`
	CustomerPhone      *string            `json:"customer_phone"`
	CustomerAddress    *string            `json:"customer_address"`
	Title              *string            `json:"title"`
	Description        *string            `json:"description"`
	LineItems          *[]LineItemRequest `json:"line_items"`
	TaxRate            *float64           `json:"tax_rate"`
	DiscountType       *string            `json:"discount_type"`
	DiscountValue      *float64           `json:"discount_value"`
	DiscountAmount     *float64           `json:"discount_amount"`
	Notes              *string            `json:"notes"`
	TermsAndConditions *string            `json:"terms_and_conditions"`
	ValidUntil         *time.Time         `json:"valid_until"`
}

func (r EstimatePatchRequest) ToPatch() entities.EstimatePatch {
	p := entities.EstimatePatch{
		CustomerName:       trimPtr(r.CustomerName),
		CustomerEmail:      trimPtr(r.CustomerEmail),
		CustomerPhone:      trimPtr(r.CustomerPhone),
		CustomerAddress:    r.CustomerAddress,
		Title:              r.Title,
		Description:        r.Description,
		TaxRate:            r.TaxRate,
		DiscountValue:      r.DiscountValue,
		DiscountAmount:     r.DiscountAmount,
		Notes:              r.Notes,
		TermsAndConditions: r.TermsAndConditions,
		ValidUntil:         r.ValidUntil,
	}
	if r.DiscountType != nil {
		dt := entities.DiscountType(strings.TrimSpace(*r.DiscountType))
		p.DiscountType = &dt
	}
	if r.LineItems != nil {
		items := make([]entities.EstimateLineItem, len(*r.LineItems))
		for i, li := range *r.LineItems {
			items[i] = entities.EstimateLineItem{
				ID:            li.ID,
				ServiceItemID: li.ServiceItemID,
				ServiceName:   strings.TrimSpace(li.ServiceName),
				Description:   li.Description,
				Quantity:      li.Quantity,
				Unit:          li.Unit,
				UnitPrice:     li.UnitPrice,
			}
		}
		p.LineItems = &items
	}
	return p
}
