package entities

// Snapshot is the persisted subset of the application state. Its JSON form is
// the durable record: exactly user, onboardingComplete, onboardingStep,
// categories, services, customers, estimates and settings.
type Snapshot struct {
	User               *User             `json:"user"`
	OnboardingComplete bool              `json:"onboardingComplete"`
	OnboardingStep     OnboardingStep    `json:"onboardingStep"`
	Categories         []ServiceCategory `json:"categories"`
	Services           []ServiceItem     `json:"services"`
	Customers          []Customer        `json:"customers"`
	Estimates          []Estimate        `json:"estimates"`
	Settings           AppSettings       `json:"settings"`
}

// EmptySnapshot is the state of a freshly installed application.
func EmptySnapshot() Snapshot {
	return Snapshot{
		OnboardingStep: OnboardingStepWelcome,
		Categories:     []ServiceCategory{},
		Services:       []ServiceItem{},
		Customers:      []Customer{},
		Estimates:      []Estimate{},
		Settings:       DefaultSettings(),
	}
}

// Normalize fills collections and settings a partial or older record may
// lack, so a decoded snapshot is always usable.
func (s Snapshot) Normalize() Snapshot {
	if s.Categories == nil {
		s.Categories = []ServiceCategory{}
	}
	if s.Services == nil {
		s.Services = []ServiceItem{}
	}
	if s.Customers == nil {
		s.Customers = []Customer{}
	}
	if s.Estimates == nil {
		s.Estimates = []Estimate{}
	}
	if !s.OnboardingStep.Valid() {
		s.OnboardingStep = OnboardingStepWelcome
	}
	def := DefaultSettings()
	if s.Settings == (AppSettings{}) {
		s.Settings = def
	}
	if s.Settings.Currency == "" {
		s.Settings.Currency = def.Currency
	}
	if s.Settings.CurrencySymbol == "" {
		s.Settings.CurrencySymbol = def.CurrencySymbol
	}
	if s.Settings.DefaultValidityDays <= 0 {
		s.Settings.DefaultValidityDays = def.DefaultValidityDays
	}
	if s.Settings.TaxRate < 0 {
		s.Settings.TaxRate = 0
	}
	return s
}

// Clone deep-copies every collection of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Categories = append([]ServiceCategory{}, s.Categories...)
	out.Services = make([]ServiceItem, len(s.Services))
	for i, v := range s.Services {
		out.Services[i] = v.Clone()
	}
	out.Customers = make([]Customer, len(s.Customers))
	for i, v := range s.Customers {
		out.Customers[i] = v.Clone()
	}
	out.Estimates = make([]Estimate, len(s.Estimates))
	for i, v := range s.Estimates {
		out.Estimates[i] = v.Clone()
	}
	return out
}
