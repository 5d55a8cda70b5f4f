package request

import (
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/usecase"
)

type BusinessRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	BusinessType string `json:"business_type"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

func (r BusinessRequest) ToInput() usecase.BusinessInput {
	return usecase.BusinessInput{
		BusinessName: r.BusinessName,
		BusinessType: r.BusinessType,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
	}
}

type TemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

type OnboardingStepRequest struct {
	Step string `json:"step" binding:"required"`
}

type SettingsPatchRequest struct {
	Currency            *string  `json:"currency"`
	CurrencySymbol      *string  `json:"currency_symbol"`
	TaxRate             *float64 `json:"tax_rate"`
	DefaultValidityDays *int     `json:"default_validity_days"`
	TermsAndConditions  *string  `json:"terms_and_conditions"`
	EmailSignature      *string  `json:"email_signature"`
}

func (r SettingsPatchRequest) ToPatch() entities.SettingsPatch {
	return entities.SettingsPatch{
		Currency:            trimPtr(r.Currency),
		CurrencySymbol:      trimPtr(r.CurrencySymbol),
		TaxRate:             r.TaxRate,
		DefaultValidityDays: r.DefaultValidityDays,
		TermsAndConditions:  r.TermsAndConditions,
		EmailSignature:      r.EmailSignature,
	}
}
