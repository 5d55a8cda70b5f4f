package response

import (
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/templates"
	"github.com/Skale-Club/xtimator/internal/usecase"
)

type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email,omitempty"`
	BusinessName string    `json:"business_name"`
	BusinessType string    `json:"business_type"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Logo         string    `json:"logo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		BusinessName: u.BusinessName,
		BusinessType: u.BusinessType,
		Phone:        u.Phone,
		Address:      u.Address,
		Logo:         u.Logo,
		CreatedAt:    u.CreatedAt,
	}
}

type OnboardingStatusResponse struct {
	Complete bool          `json:"complete"`
	Step     string        `json:"step"`
	User     *UserResponse `json:"user"`
}

func FromOnboardingStatus(s usecase.OnboardingStatus) OnboardingStatusResponse {
	res := OnboardingStatusResponse{Complete: s.Complete, Step: string(s.Step)}
	if s.User != nil {
		u := FromUser(*s.User)
		res.User = &u
	}
	return res
}

type TemplateResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	CategoryCount int    `json:"category_count"`
	ServiceCount  int    `json:"service_count"`
}

func FromTemplates(list []templates.BusinessTemplate) []TemplateResponse {
	out := make([]TemplateResponse, len(list))
	for i, t := range list {
		out[i] = TemplateResponse{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			Icon:          t.Icon,
			CategoryCount: len(t.Categories),
			ServiceCount:  len(t.Services),
		}
	}
	return out
}

type TemplateResultResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Services   []ServiceResponse  `json:"services"`
}

func FromTemplateResult(r usecase.TemplateResult) TemplateResultResponse {
	return TemplateResultResponse{Categories: FromCategories(r.Categories), Services: FromServices(r.Services)}
}

type SettingsResponse struct {
	Currency            string  `json:"currency"`
	CurrencySymbol      string  `json:"currency_symbol"`
	TaxRate             float64 `json:"tax_rate"`
	DefaultValidityDays int     `json:"default_validity_days"`
	TermsAndConditions  string  `json:"terms_and_conditions"`
	EmailSignature      string  `json:"email_signature,omitempty"`
}

func FromSettings(s entities.AppSettings) SettingsResponse {
	return SettingsResponse{
		Currency:            s.Currency,
		CurrencySymbol:      s.CurrencySymbol,
		TaxRate:             s.TaxRate,
		DefaultValidityDays: s.DefaultValidityDays,
		TermsAndConditions:  s.TermsAndConditions,
		EmailSignature:      s.EmailSignature,
	}
}
