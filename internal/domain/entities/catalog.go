package entities

// ServiceUnit is the billing unit of a catalog service.
type ServiceUnit string

const (
	ServiceUnitHour     ServiceUnit = "hour"
	ServiceUnitSqft     ServiceUnit = "sqft"
	ServiceUnitSqm      ServiceUnit = "sqm"
	ServiceUnitUnit     ServiceUnit = "unit"
	ServiceUnitLinearFt ServiceUnit = "linear_ft"
	ServiceUnitLinearM  ServiceUnit = "linear_m"
	ServiceUnitJob      ServiceUnit = "job"
)

var serviceUnitLabels = map[ServiceUnit]string{
	ServiceUnitHour:     "Hora",
	ServiceUnitSqm:      "m²",
	ServiceUnitSqft:     "ft²",
	ServiceUnitUnit:     "Unidade",
	ServiceUnitLinearFt: "ft linear",
	ServiceUnitLinearM:  "m linear",
	ServiceUnitJob:      "Serviço",
}

func (u ServiceUnit) Valid() bool {
	_, ok := serviceUnitLabels[u]
	return ok
}

// DefaultLabel is the display label offered when a service is created
// without an explicit unit label.
func (u ServiceUnit) DefaultLabel() string {
	return serviceUnitLabels[u]
}

type ServiceCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

// ServiceItem is a priced entry of the catalog. Inactive items stay in the
// catalog but are hidden from estimate pickers.
type ServiceItem struct {
	ID          string      `json:"id"`
	CategoryID  string      `json:"categoryId"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	BasePrice   float64     `json:"basePrice"`
	Unit        ServiceUnit `json:"unit"`
	UnitLabel   string      `json:"unitLabel"`
	MinQuantity *int        `json:"minQuantity,omitempty"`
	MaxQuantity *int        `json:"maxQuantity,omitempty"`
	IsActive    bool        `json:"isActive"`
	Tags        []string    `json:"tags,omitempty"`
}

func (s ServiceItem) Clone() ServiceItem {
	out := s
	out.MinQuantity = cloneInt(s.MinQuantity)
	out.MaxQuantity = cloneInt(s.MaxQuantity)
	out.Tags = cloneStrings(s.Tags)
	return out
}
