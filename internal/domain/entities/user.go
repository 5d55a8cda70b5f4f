package entities

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	BusinessName string    `json:"businessName"`
	BusinessType string    `json:"businessType"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Logo         string    `json:"logo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OnboardingStep string

const (
	OnboardingStepWelcome              OnboardingStep = "welcome"
	OnboardingStepBusinessInfo         OnboardingStep = "business-info"
	OnboardingStepServiceSelection     OnboardingStep = "service-selection"
	OnboardingStepServiceCustomization OnboardingStep = "service-customization"
	OnboardingStepComplete             OnboardingStep = "complete"
)

func (s OnboardingStep) Valid() bool {
	switch s {
	case OnboardingStepWelcome, OnboardingStepBusinessInfo, OnboardingStepServiceSelection,
		OnboardingStepServiceCustomization, OnboardingStepComplete:
		return true
	}
	return false
}
