package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

var ErrValidation = errors.New("validation failed")

// ValidationError rejects an action before any mutation happens. Message is
// user facing. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// DefaultPhoneRegion is used when no region is configured.
const DefaultPhoneRegion = "BR"

// Validator wraps go-playground/validator with the "phone" rule, which
// accepts numbers libphonenumber considers valid for the configured region.
type Validator struct {
	v *validator.Validate
}

func NewValidator(phoneRegion string) *Validator {
	if strings.TrimSpace(phoneRegion) == "" {
		phoneRegion = DefaultPhoneRegion
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String(), phoneRegion)
	})
	return &Validator{v: v}
}

func IsValidPhone(phone, region string) bool {
	p, err := libphonenumber.Parse(phone, region)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(p)
}

var ruleMessages = map[string]string{
	"required": "é obrigatório",
	"email":    "e-mail inválido",
	"phone":    "telefone inválido",
	"gt":       "deve ser maior que zero",
	"gte":      "não pode ser negativo",
	"lte":      "valor acima do máximo permitido",
	"min":      "valor abaixo do mínimo",
	"oneof":    "valor inválido",
}

// checkAmount rejects negative, non-finite and oversized money values.
func checkAmount(field string, v float64) error {
	if v < 0 {
		return invalid(field, ruleMessages["gte"])
	}
	if !pricing.ValidAmount(v) {
		return invalid(field, ruleMessages["lte"])
	}
	return nil
}

// checkTaxRate is checkAmount for percentages.
func checkTaxRate(field string, v float64) error {
	if v < 0 {
		return invalid(field, ruleMessages["gte"])
	}
	if !pricing.ValidTaxRate(v) {
		return invalid(field, ruleMessages["lte"])
	}
	return nil
}

// Struct validates s and converts the first failure into a ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg, ok := ruleMessages[fe.Tag()]
		if !ok {
			msg = "valor inválido"
		}
		return invalid(fe.Field(), msg)
	}
	return err
}
