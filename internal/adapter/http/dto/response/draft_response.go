package response

import (
	"time"

	"github.com/Skale-Club/xtimator/internal/usecase"
)

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type DraftResponse struct {
	ID              string                `json:"id"`
	Step            string                `json:"step"`
	CustomerID      string                `json:"customer_id,omitempty"`
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email,omitempty"`
	CustomerPhone   string                `json:"customer_phone,omitempty"`
	CustomerAddress string                `json:"customer_address,omitempty"`
	LineItems       []LineItemResponse    `json:"line_items"`
	Photos          []PhotoResponse       `json:"photos"`
	Notes           string                `json:"notes,omitempty"`
	Messages        []ChatMessageResponse `json:"messages"`
	Subtotal        float64               `json:"subtotal"`
	TaxAmount       float64               `json:"tax_amount"`
	Total           float64               `json:"total"`
	CreatedAt       time.Time             `json:"created_at"`
}

func FromDraft(d usecase.Draft) DraftResponse {
	messages := make([]ChatMessageResponse, len(d.Messages))
	for i, m := range d.Messages {
		messages[i] = ChatMessageResponse{ID: m.ID, Role: string(m.Role), Content: m.Content, Timestamp: m.Timestamp}
	}
	return DraftResponse{
		ID:              d.ID,
		Step:            string(d.Step),
		CustomerID:      d.CustomerID,
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		LineItems:       FromLineItems(d.LineItems),
		Photos:          FromPhotos(d.Photos),
		Notes:           d.Notes,
		Messages:        messages,
		Subtotal:        d.Totals.Subtotal,
		TaxAmount:       d.Totals.TaxAmount,
		Total:           d.Totals.Total,
		CreatedAt:       d.CreatedAt,
	}
}
