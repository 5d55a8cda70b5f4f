package entities

const (
	DefaultCurrency           = "BRL"
	DefaultCurrencySymbol     = "R$"
	DefaultValidityDays       = 30
	DefaultTermsAndConditions = "Orçamento válido por 30 dias. Pagamento em até 3x sem juros."
)

// AppSettings is the process-wide configuration of the business.
// TaxRate is a percentage (10 means 10%).
type AppSettings struct {
	Currency            string  `json:"currency"`
	CurrencySymbol      string  `json:"currencySymbol"`
	TaxRate             float64 `json:"taxRate"`
	DefaultValidityDays int     `json:"defaultValidityDays"`
	TermsAndConditions  string  `json:"termsAndConditions"`
	EmailSignature      string  `json:"emailSignature,omitempty"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		Currency:            DefaultCurrency,
		CurrencySymbol:      DefaultCurrencySymbol,
		TaxRate:             0,
		DefaultValidityDays: DefaultValidityDays,
		TermsAndConditions:  DefaultTermsAndConditions,
	}
}
