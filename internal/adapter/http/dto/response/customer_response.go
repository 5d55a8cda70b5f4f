package response

import (
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/usecase"
)

type CustomerResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Address         string     `json:"address,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	EstimateCount   int        `json:"estimate_count"`
	CreatedAt       time.Time  `json:"created_at"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		Notes:           c.Notes,
		Tags:            c.Tags,
		CreatedAt:       c.CreatedAt,
		LastContactedAt: c.LastContactedAt,
	}
}

func FromCustomerSummary(s usecase.CustomerSummary) CustomerResponse {
	res := FromCustomer(s.Customer)
	res.EstimateCount = s.EstimateCount
	return res
}

func FromCustomerSummaries(list []usecase.CustomerSummary) []CustomerResponse {
	out := make([]CustomerResponse, len(list))
	for i, s := range list {
		out[i] = FromCustomerSummary(s)
	}
	return out
}
