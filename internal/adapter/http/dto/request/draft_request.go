package request

import "github.com/Skale-Club/xtimator/internal/usecase"

type DraftCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r DraftCustomerRequest) ToDetails() usecase.CustomerDetails {
	return usecase.CustomerDetails{Name: r.Name, Phone: r.Phone, Address: r.Address}
}

type SelectCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

type DraftStepRequest struct {
	Step string `json:"step" binding:"required"`
}

type AddServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

type PhotoRequest struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
