package entities

import "time"

// Patch types carry partial updates. A nil field leaves the stored value
// untouched; Apply merges shallowly onto a copy of the record.

type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

func (p CategoryPatch) Apply(c ServiceCategory) ServiceCategory {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Order != nil {
		c.Order = *p.Order
	}
	return c
}

type ServicePatch struct {
	CategoryID  *string      `json:"categoryId,omitempty"`
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	BasePrice   *float64     `json:"basePrice,omitempty"`
	Unit        *ServiceUnit `json:"unit,omitempty"`
	UnitLabel   *string      `json:"unitLabel,omitempty"`
	MinQuantity *int         `json:"minQuantity,omitempty"`
	MaxQuantity *int         `json:"maxQuantity,omitempty"`
	IsActive    *bool        `json:"isActive,omitempty"`
	Tags        *[]string    `json:"tags,omitempty"`
}

func (p ServicePatch) Apply(s ServiceItem) ServiceItem {
	s = s.Clone()
	if p.CategoryID != nil {
		s.CategoryID = *p.CategoryID
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.BasePrice != nil {
		s.BasePrice = *p.BasePrice
	}
	if p.Unit != nil {
		s.Unit = *p.Unit
	}
	if p.UnitLabel != nil {
		s.UnitLabel = *p.UnitLabel
	}
	if p.MinQuantity != nil {
		s.MinQuantity = cloneInt(p.MinQuantity)
	}
	if p.MaxQuantity != nil {
		s.MaxQuantity = cloneInt(p.MaxQuantity)
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	if p.Tags != nil {
		s.Tags = cloneStrings(*p.Tags)
	}
	return s
}

type CustomerPatch struct {
	Name            *string    `json:"name,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Address         *string    `json:"address,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Tags            *[]string  `json:"tags,omitempty"`
	LastContactedAt *time.Time `json:"lastContactedAt,omitempty"`
}

func (p CustomerPatch) Apply(c Customer) Customer {
	c = c.Clone()
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Tags != nil {
		c.Tags = cloneStrings(*p.Tags)
	}
	if p.LastContactedAt != nil {
		c.LastContactedAt = cloneTime(p.LastContactedAt)
	}
	return c
}

// EstimatePatch has no Status field: status only moves through the
// lifecycle transitions.
type EstimatePatch struct {
	CustomerID         *string             `json:"customerId,omitempty"`
	CustomerName       *string             `json:"customerName,omitempty"`
	CustomerEmail      *string             `json:"customerEmail,omitempty"`
	CustomerPhone      *string             `json:"customerPhone,omitempty"`
	CustomerAddress    *string             `json:"customerAddress,omitempty"`
	Title              *string             `json:"title,omitempty"`
	Description        *string             `json:"description,omitempty"`
	LineItems          *[]EstimateLineItem `json:"lineItems,omitempty"`
	Photos             *[]EstimatePhoto    `json:"photos,omitempty"`
	TaxRate            *float64            `json:"taxRate,omitempty"`
	DiscountType       *DiscountType       `json:"discountType,omitempty"`
	DiscountValue      *float64            `json:"discountValue,omitempty"`
	DiscountAmount     *float64            `json:"discountAmount,omitempty"`
	Notes              *string             `json:"notes,omitempty"`
	TermsAndConditions *string             `json:"termsAndConditions,omitempty"`
	ValidUntil         *time.Time          `json:"validUntil,omitempty"`
}

// TouchesTotals reports whether the patch changes an input of the totals.
func (p EstimatePatch) TouchesTotals() bool {
	return p.LineItems != nil || p.TaxRate != nil || p.DiscountAmount != nil
}

func (p EstimatePatch) Apply(e Estimate) Estimate {
	e = e.Clone()
	setString(&e.CustomerID, p.CustomerID)
	setString(&e.CustomerName, p.CustomerName)
	setString(&e.CustomerEmail, p.CustomerEmail)
	setString(&e.CustomerPhone, p.CustomerPhone)
	setString(&e.CustomerAddress, p.CustomerAddress)
	setString(&e.Title, p.Title)
	setString(&e.Description, p.Description)
	setString(&e.Notes, p.Notes)
	setString(&e.TermsAndConditions, p.TermsAndConditions)
	if p.LineItems != nil {
		e.LineItems = append([]EstimateLineItem{}, (*p.LineItems)...)
	}
	if p.Photos != nil {
		e.Photos = append([]EstimatePhoto{}, (*p.Photos)...)
	}
	if p.TaxRate != nil {
		e.TaxRate = cloneFloat(p.TaxRate)
	}
	if p.DiscountType != nil {
		e.DiscountType = *p.DiscountType
	}
	if p.DiscountValue != nil {
		e.DiscountValue = cloneFloat(p.DiscountValue)
	}
	if p.DiscountAmount != nil {
		e.DiscountAmount = cloneFloat(p.DiscountAmount)
	}
	if p.ValidUntil != nil {
		e.ValidUntil = cloneTime(p.ValidUntil)
	}
	return e
}

type SettingsPatch struct {
	Currency            *string  `json:"currency,omitempty"`
	CurrencySymbol      *string  `json:"currencySymbol,omitempty"`
	TaxRate             *float64 `json:"taxRate,omitempty"`
	DefaultValidityDays *int     `json:"defaultValidityDays,omitempty"`
	TermsAndConditions  *string  `json:"termsAndConditions,omitempty"`
	EmailSignature      *string  `json:"emailSignature,omitempty"`
}

func (p SettingsPatch) Apply(s AppSettings) AppSettings {
	setString(&s.Currency, p.Currency)
	setString(&s.CurrencySymbol, p.CurrencySymbol)
	setString(&s.TermsAndConditions, p.TermsAndConditions)
	setString(&s.EmailSignature, p.EmailSignature)
	if p.TaxRate != nil {
		s.TaxRate = *p.TaxRate
	}
	if p.DefaultValidityDays != nil {
		s.DefaultValidityDays = *p.DefaultValidityDays
	}
	return s
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
