package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate (orçamento).
//
// Domain notes:
//   - draft is the only initial state and is never re-entered.
//   - accepted and rejected are terminal.
//   - expired is derived at read time from ValidUntil and is normally not stored.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusViewed   EstimateStatus = "viewed"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusExpired  EstimateStatus = "expired"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusViewed,
		EstimateStatusAccepted, EstimateStatusRejected, EstimateStatusExpired:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// EstimateLineItem is one priced entry of an estimate.
//
// ServiceName, Unit and UnitPrice are copied from the catalog when the item is
// added, so later catalog edits never change existing estimates.
type EstimateLineItem struct {
	ID            string  `json:"id"`
	ServiceItemID string  `json:"serviceItemId"`
	ServiceName   string  `json:"serviceName"`
	Description   string  `json:"description,omitempty"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	UnitPrice     float64 `json:"unitPrice"`
	Total         float64 `json:"total"`
}

type EstimatePhoto struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Estimate is the quote document sent to a customer.
//
// Monetary representation:
//   - Subtotal is the sum of the line item totals.
//   - TaxAmount is Subtotal * TaxRate / 100, or 0 when TaxRate is unset.
//   - Total is Subtotal + TaxAmount - DiscountAmount.
//
// Customer* fields are a snapshot taken at creation and do not follow later
// edits to the referenced customer.
type Estimate struct {
	ID                 string             `json:"id"`
	CustomerID         string             `json:"customerId,omitempty"`
	CustomerName       string             `json:"customerName,omitempty"`
	CustomerEmail      string             `json:"customerEmail,omitempty"`
	CustomerPhone      string             `json:"customerPhone,omitempty"`
	CustomerAddress    string             `json:"customerAddress,omitempty"`
	Title              string             `json:"title"`
	Description        string             `json:"description,omitempty"`
	Status             EstimateStatus     `json:"status"`
	LineItems          []EstimateLineItem `json:"lineItems"`
	Photos             []EstimatePhoto    `json:"photos"`
	Subtotal           float64            `json:"subtotal"`
	TaxRate            *float64           `json:"taxRate,omitempty"`
	TaxAmount          float64            `json:"taxAmount"`
	DiscountType       DiscountType       `json:"discountType,omitempty"`
	DiscountValue      *float64           `json:"discountValue,omitempty"`
	DiscountAmount     *float64           `json:"discountAmount,omitempty"`
	Total              float64            `json:"total"`
	Notes              string             `json:"notes,omitempty"`
	TermsAndConditions string             `json:"termsAndConditions,omitempty"`
	ValidUntil         *time.Time         `json:"validUntil,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	SentAt             *time.Time         `json:"sentAt,omitempty"`
	ViewedAt           *time.Time         `json:"viewedAt,omitempty"`
	RespondedAt        *time.Time         `json:"respondedAt,omitempty"`
}

// Clone returns a deep copy so callers never share slices or pointers with
// the store.
func (e Estimate) Clone() Estimate {
	out := e
	if e.LineItems != nil {
		out.LineItems = append([]EstimateLineItem(nil), e.LineItems...)
	}
	if e.Photos != nil {
		out.Photos = append([]EstimatePhoto(nil), e.Photos...)
	}
	out.TaxRate = cloneFloat(e.TaxRate)
	out.DiscountValue = cloneFloat(e.DiscountValue)
	out.DiscountAmount = cloneFloat(e.DiscountAmount)
	out.ValidUntil = cloneTime(e.ValidUntil)
	out.SentAt = cloneTime(e.SentAt)
	out.ViewedAt = cloneTime(e.ViewedAt)
	out.RespondedAt = cloneTime(e.RespondedAt)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v...)
}
