// Package templates holds the starter catalogs a business can pick during
// onboarding and expands them into concrete categories and services.
package templates

import (
	_ "embed"
	"fmt"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/identifier"

	"gopkg.in/yaml.v3"
)

const CustomTemplateID = "custom"

//go:embed templates.yaml
var templatesYAML []byte

type CategoryDef struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
	Order       int    `yaml:"order" json:"order"`
}

type ServiceDef struct {
	CategoryIndex int                  `yaml:"categoryIndex" json:"categoryIndex"`
	Name          string               `yaml:"name" json:"name"`
	Description   string               `yaml:"description" json:"description,omitempty"`
	BasePrice     float64              `yaml:"basePrice" json:"basePrice"`
	Unit          entities.ServiceUnit `yaml:"unit" json:"unit"`
	UnitLabel     string               `yaml:"unitLabel" json:"unitLabel"`
	IsActive      bool                 `yaml:"isActive" json:"isActive"`
}

// BusinessTemplate is a read-only starter catalog.
type BusinessTemplate struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Icon        string        `yaml:"icon" json:"icon"`
	Description string        `yaml:"description" json:"description"`
	Categories  []CategoryDef `yaml:"categories" json:"categories"`
	Services    []ServiceDef  `yaml:"services" json:"services"`
}

var builtin []BusinessTemplate

func init() {
	var doc struct {
		Templates []BusinessTemplate `yaml:"templates"`
	}
	if err := yaml.Unmarshal(templatesYAML, &doc); err != nil {
		panic(fmt.Sprintf("templates: invalid embedded catalog: %v", err))
	}
	builtin = doc.Templates
}

// All returns every template in display order.
func All() []BusinessTemplate {
	out := make([]BusinessTemplate, len(builtin))
	for i, t := range builtin {
		out[i] = t.clone()
	}
	return out
}

// Find looks a template up by id.
func Find(id string) (BusinessTemplate, bool) {
	for _, t := range builtin {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return BusinessTemplate{}, false
}

// Expand instantiates the template with fresh ids. Each service's CategoryID
// resolves against the categories generated by this call; an index outside
// the template's category list resolves to "".
func Expand(t BusinessTemplate, newID identifier.Generator) ([]entities.ServiceCategory, []entities.ServiceItem) {
	if newID == nil {
		newID = identifier.New
	}

	categories := make([]entities.ServiceCategory, 0, len(t.Categories))
	for _, c := range t.Categories {
		categories = append(categories, entities.ServiceCategory{
			ID:          newID(),
			Name:        c.Name,
			Description: c.Description,
			Order:       c.Order,
		})
	}

	services := make([]entities.ServiceItem, 0, len(t.Services))
	for _, s := range t.Services {
		categoryID := ""
		if s.CategoryIndex >= 0 && s.CategoryIndex < len(categories) {
			categoryID = categories[s.CategoryIndex].ID
		}
		services = append(services, entities.ServiceItem{
			ID:          newID(),
			CategoryID:  categoryID,
			Name:        s.Name,
			Description: s.Description,
			BasePrice:   s.BasePrice,
			Unit:        s.Unit,
			UnitLabel:   s.UnitLabel,
			IsActive:    s.IsActive,
		})
	}
	return categories, services
}

func (t BusinessTemplate) clone() BusinessTemplate {
	t.Categories = append([]CategoryDef{}, t.Categories...)
	t.Services = append([]ServiceDef{}, t.Services...)
	return t
}
