package response

import (
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/export"
	"github.com/Skale-Club/xtimator/internal/usecase"
)

type LineItemResponse struct {
	ID            string  `json:"id"`
	ServiceItemID string  `json:"service_item_id"`
	ServiceName   string  `json:"service_name"`
	Description   string  `json:"description,omitempty"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	UnitPrice     float64 `json:"unit_price"`
	Total         float64 `json:"total"`
}

type PhotoResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type EstimateResponse struct {
	ID                 string             `json:"id"`
	CustomerID         string             `json:"customer_id,omitempty"`
	CustomerName       string             `json:"customer_name,omitempty"`
	CustomerEmail      string             `json:"customer_email,omitempty"`
	CustomerPhone      string             `json:"customer_phone,omitempty"`
	CustomerAddress    string             `json:"customer_address,omitempty"`
	Title              string             `json:"title"`
	Description        string             `json:"description,omitempty"`
	Status             string             `json:"status"`
	StatusLabel        string             `json:"status_label"`
	LineItems          []LineItemResponse `json:"line_items"`
	Photos             []PhotoResponse    `json:"photos"`
	Subtotal           float64            `json:"subtotal"`
	TaxRate            *float64           `json:"tax_rate,omitempty"`
	TaxAmount          float64            `json:"tax_amount"`
	DiscountType       string             `json:"discount_type,omitempty"`
	DiscountValue      *float64           `json:"discount_value,omitempty"`
	DiscountAmount     *float64           `json:"discount_amount,omitempty"`
	Total              float64            `json:"total"`
	Notes              string             `json:"notes,omitempty"`
	TermsAndConditions string             `json:"terms_and_conditions,omitempty"`
	ValidUntil         *time.Time         `json:"valid_until,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	SentAt             *time.Time         `json:"sent_at,omitempty"`
	ViewedAt           *time.Time         `json:"viewed_at,omitempty"`
	RespondedAt        *time.Time         `json:"responded_at,omitempty"`
}

func FromLineItems(items []entities.EstimateLineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, li := range items {
		out[i] = LineItemResponse{
			ID:            li.ID,
			ServiceItemID: li.ServiceItemID,
			ServiceName:   li.ServiceName,
			Description:   li.Description,
			Quantity:      li.Quantity,
			Unit:          li.Unit,
			UnitPrice:     li.UnitPrice,
			Total:         li.Total,
		}
	}
	return out
}

func FromPhotos(photos []entities.EstimatePhoto) []PhotoResponse {
	out := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = PhotoResponse{ID: p.ID, URL: p.URL, Caption: p.Caption, CreatedAt: p.CreatedAt}
	}
	return out
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                 e.ID,
		CustomerID:         e.CustomerID,
		CustomerName:       e.CustomerName,
		CustomerEmail:      e.CustomerEmail,
		CustomerPhone:      e.CustomerPhone,
		CustomerAddress:    e.CustomerAddress,
		Title:              e.Title,
		Description:        e.Description,
		Status:             string(e.Status),
		StatusLabel:        export.StatusLabel(e.Status),
		LineItems:          FromLineItems(e.LineItems),
		Photos:             FromPhotos(e.Photos),
		Subtotal:           e.Subtotal,
		TaxRate:            e.TaxRate,
		TaxAmount:          e.TaxAmount,
		DiscountType:       string(e.DiscountType),
		DiscountValue:      e.DiscountValue,
		DiscountAmount:     e.DiscountAmount,
		Total:              e.Total,
		Notes:              e.Notes,
		TermsAndConditions: e.TermsAndConditions,
		ValidUntil:         e.ValidUntil,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
		SentAt:             e.SentAt,
		ViewedAt:           e.ViewedAt,
		RespondedAt:        e.RespondedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, len(list))
	for i, e := range list {
		out[i] = FromEstimate(e)
	}
	return out
}

type ShareResponse struct {
	Text      string `json:"text"`
	Channel   string `json:"channel"`
	Cancelled bool   `json:"cancelled"`
}

func FromShareResult(r usecase.ShareResult) ShareResponse {
	return ShareResponse{Text: r.Text, Channel: string(r.Channel), Cancelled: r.Cancelled}
}

type DashboardResponse struct {
	TotalEstimates    int                `json:"total_estimates"`
	PendingEstimates  int                `json:"pending_estimates"`
	AcceptedEstimates int                `json:"accepted_estimates"`
	TotalCustomers    int                `json:"total_customers"`
	TotalValue        float64            `json:"total_value"`
	AcceptedValue     float64            `json:"accepted_value"`
	Recent            []EstimateResponse `json:"recent"`
}

func FromDashboard(s usecase.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalEstimates:    s.TotalEstimates,
		PendingEstimates:  s.PendingEstimates,
		AcceptedEstimates: s.AcceptedEstimates,
		TotalCustomers:    s.TotalCustomers,
		TotalValue:        s.TotalValue,
		AcceptedValue:     s.AcceptedValue,
		Recent:            FromEstimates(s.Recent),
	}
}
