package request

import (
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/usecase"
)

type CustomerRequest struct {
	Name    string   `json:"name" binding:"required"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Notes   string   `json:"notes"`
	Tags    []string `json:"tags"`
}

func (r CustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Notes:   r.Notes,
		Tags:    r.Tags,
	}
}

type CustomerPatchRequest struct {
	Name    *string   `json:"name"`
	Email   *string   `json:"email"`
	Phone   *string   `json:"phone"`
	Address *string   `json:"address"`
	Notes   *string   `json:"notes"`
	Tags    *[]string `json:"tags"`
}

func (r CustomerPatchRequest) ToPatch() entities.CustomerPatch {
	return entities.CustomerPatch{
		Name:    trimPtr(r.Name),
		Email:   trimPtr(r.Email),
		Phone:   trimPtr(r.Phone),
		Address: r.Address,
		Notes:   r.Notes,
		Tags:    r.Tags,
	}
}
