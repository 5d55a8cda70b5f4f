package request

import (
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/usecase"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       *int   `json:"order"`
}

func (r CategoryRequest) ToInput() usecase.CategoryInput {
	return usecase.CategoryInput{Name: r.Name, Description: r.Description, Icon: r.Icon, Order: r.Order}
}

type CategoryPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

func (r CategoryPatchRequest) ToPatch() entities.CategoryPatch {
	return entities.CategoryPatch{Name: trimPtr(r.Name), Description: r.Description, Icon: r.Icon, Order: r.Order}
}

type ServiceRequest struct {
	CategoryID  string   `json:"category_id"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"base_price"`
	Unit        string   `json:"unit" binding:"required"`
	UnitLabel   string   `json:"unit_label"`
	MinQuantity *int     `json:"min_quantity"`
	MaxQuantity *int     `json:"max_quantity"`
	IsActive    *bool    `json:"is_active"`
	Tags        []string `json:"tags"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Unit:        entities.ServiceUnit(strings.TrimSpace(r.Unit)),
		UnitLabel:   r.UnitLabel,
		MinQuantity: r.MinQuantity,
		MaxQuantity: r.MaxQuantity,
		IsActive:    r.IsActive,
		Tags:        r.Tags,
	}
}

type ServicePatchRequest struct {
	CategoryID  *string   `json:"category_id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	BasePrice   *float64  `json:"base_price"`
	Unit        *string   `json:"unit"`
	UnitLabel   *string   `json:"unit_label"`
	MinQuantity *int      `json:"min_quantity"`
	MaxQuantity *int      `json:"max_quantity"`
	IsActive    *bool     `json:"is_active"`
	Tags        *[]string `json:"tags"`
}

func (r ServicePatchRequest) ToPatch() entities.ServicePatch {
	p := entities.ServicePatch{
		CategoryID:  trimPtr(r.CategoryID),
		Name:        trimPtr(r.Name),
		Description: r.Description,
		BasePrice:   r.BasePrice,
		UnitLabel:   r.UnitLabel,
		MinQuantity: r.MinQuantity,
		MaxQuantity: r.MaxQuantity,
		IsActive:    r.IsActive,
		Tags:        r.Tags,
	}
	if r.Unit != nil {
		u := entities.ServiceUnit(strings.TrimSpace(*r.Unit))
		p.Unit = &u
	}
	return p
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
