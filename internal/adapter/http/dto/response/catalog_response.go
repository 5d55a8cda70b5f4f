package response

import "github.com/Skale-Club/xtimator/internal/domain/entities"

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

func FromCategory(c entities.ServiceCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Order:       c.Order,
	}
}

func FromCategories(list []entities.ServiceCategory) []CategoryResponse {
	out := make([]CategoryResponse, len(list))
	for i, c := range list {
		out[i] = FromCategory(c)
	}
	return out
}

type ServiceResponse struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"category_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	BasePrice   float64  `json:"base_price"`
	Unit        string   `json:"unit"`
	UnitLabel   string   `json:"unit_label"`
	MinQuantity *int     `json:"min_quantity,omitempty"`
	MaxQuantity *int     `json:"max_quantity,omitempty"`
	IsActive    bool     `json:"is_active"`
	Tags        []string `json:"tags,omitempty"`
}

func FromService(s entities.ServiceItem) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		Unit:        string(s.Unit),
		UnitLabel:   s.UnitLabel,
		MinQuantity: s.MinQuantity,
		MaxQuantity: s.MaxQuantity,
		IsActive:    s.IsActive,
		Tags:        s.Tags,
	}
}

func FromServices(list []entities.ServiceItem) []ServiceResponse {
	out := make([]ServiceResponse, len(list))
	for i, s := range list {
		out[i] = FromService(s)
	}
	return out
}
