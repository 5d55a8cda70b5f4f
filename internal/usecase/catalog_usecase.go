package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/search"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

type CategoryInput struct {
	Name        string `validate:"required"`
	Description string
	Icon        string
	Order       *int
}

type ServiceInput struct {
	CategoryID  string
	Name        string `validate:"required"`
	Description string
	BasePrice   float64              `validate:"gt=0,lte=1000000000000"`
	Unit        entities.ServiceUnit `validate:"oneof=hour sqft sqm unit linear_ft linear_m job"`
	UnitLabel   string
	MinQuantity *int `validate:"omitempty,gte=1"`
	MaxQuantity *int `validate:"omitempty,gte=1"`
	IsActive    *bool
	Tags        []string
}

// ServiceFilter narrows ListServices. Query matches name and description.
type ServiceFilter struct {
	Query      string
	CategoryID string
	ActiveOnly bool
}

// ICatalogUseCase manages the service catalog: categories and the services
// priced inside them.
type ICatalogUseCase interface {
	ListCategories(ctx context.Context) ([]entities.ServiceCategory, error)
	GetCategory(ctx context.Context, id string) (entities.ServiceCategory, error)
	CreateCategory(ctx context.Context, in CategoryInput) (entities.ServiceCategory, error)
	UpdateCategory(ctx context.Context, id string, patch entities.CategoryPatch) (entities.ServiceCategory, error)
	DeleteCategory(ctx context.Context, id string) error

	ListServices(ctx context.Context, filter ServiceFilter) ([]entities.ServiceItem, error)
	GetService(ctx context.Context, id string) (entities.ServiceItem, error)
	CreateService(ctx context.Context, in ServiceInput) (entities.ServiceItem, error)
	UpdateService(ctx context.Context, id string, patch entities.ServicePatch) (entities.ServiceItem, error)
	DeleteService(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	store     interfaces.ICatalogStore
	validator *Validator
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(store interfaces.ICatalogStore, v *Validator) *CatalogUseCase {
	return &CatalogUseCase{store: store, validator: v}
}

// ListCategories returns categories by Order, keeping insertion order for
// ties.
func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]entities.ServiceCategory, error) {
	return sortedCategories(u.store.Categories()), nil
}

func sortedCategories(categories []entities.ServiceCategory) []entities.ServiceCategory {
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Order < categories[j].Order })
	return categories
}

func (u *CatalogUseCase) GetCategory(ctx context.Context, id string) (entities.ServiceCategory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceCategory{}, ErrInvalidID
	}
	c, ok := u.store.Category(id)
	if !ok {
		return entities.ServiceCategory{}, ErrCategoryNotFound
	}
	return c, nil
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, in CategoryInput) (entities.ServiceCategory, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := u.validator.Struct(in); err != nil {
		return entities.ServiceCategory{}, err
	}
	order := len(u.store.Categories())
	if in.Order != nil {
		order = *in.Order
	}
	return u.store.AddCategory(entities.ServiceCategory{
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Icon:        strings.TrimSpace(in.Icon),
		Order:       order,
	}), nil
}

func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id string, patch entities.CategoryPatch) (entities.ServiceCategory, error) {
	current, err := u.GetCategory(ctx, id)
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	if strings.TrimSpace(patch.Apply(current).Name) == "" {
		return entities.ServiceCategory{}, invalid("Name", ruleMessages["required"])
	}
	updated := u.store.UpdateCategory(current.ID, patch)
	if updated.ID == "" {
		return entities.ServiceCategory{}, ErrCategoryNotFound
	}
	return updated, nil
}

// DeleteCategory removes the category and every service inside it.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if !u.store.DeleteCategory(id) {
		return ErrCategoryNotFound
	}
	return nil
}

func (u *CatalogUseCase) ListServices(ctx context.Context, filter ServiceFilter) ([]entities.ServiceItem, error) {
	all := u.store.Services()
	out := make([]entities.ServiceItem, 0, len(all))
	for _, s := range all {
		if filter.ActiveOnly && !s.IsActive {
			continue
		}
		if filter.CategoryID != "" && s.CategoryID != filter.CategoryID {
			continue
		}
		if !search.Contains(filter.Query, s.Name, s.Description) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.ServiceItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceItem{}, ErrInvalidID
	}
	s, ok := u.store.Service(id)
	if !ok {
		return entities.ServiceItem{}, ErrServiceNotFound
	}
	return s, nil
}

// CreateService adds a service to an existing category. An empty CategoryID
// picks the first category by order.
func (u *CatalogUseCase) CreateService(ctx context.Context, in ServiceInput) (entities.ServiceItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	if err := u.validator.Struct(in); err != nil {
		return entities.ServiceItem{}, err
	}
	if err := validateQuantityRange(in.MinQuantity, in.MaxQuantity); err != nil {
		return entities.ServiceItem{}, err
	}

	categoryID, err := u.resolveCategory(in.CategoryID)
	if err != nil {
		return entities.ServiceItem{}, err
	}

	label := strings.TrimSpace(in.UnitLabel)
	if label == "" {
		label = in.Unit.DefaultLabel()
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return u.store.AddService(entities.ServiceItem{
		CategoryID:  categoryID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		BasePrice:   in.BasePrice,
		Unit:        in.Unit,
		UnitLabel:   label,
		MinQuantity: in.MinQuantity,
		MaxQuantity: in.MaxQuantity,
		IsActive:    active,
		Tags:        in.Tags,
	}), nil
}

func (u *CatalogUseCase) resolveCategory(id string) (string, error) {
	if id == "" {
		categories := sortedCategories(u.store.Categories())
		if len(categories) == 0 {
			return "", invalid("CategoryID", "crie uma categoria antes de adicionar serviços")
		}
		return categories[0].ID, nil
	}
	if _, ok := u.store.Category(id); !ok {
		return "", invalid("CategoryID", "categoria inexistente")
	}
	return id, nil
}

func validateQuantityRange(min, max *int) error {
	if min != nil && max != nil && *min > *max {
		return invalid("MaxQuantity", "deve ser maior ou igual à quantidade mínima")
	}
	return nil
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, patch entities.ServicePatch) (entities.ServiceItem, error) {
	current, err := u.GetService(ctx, id)
	if err != nil {
		return entities.ServiceItem{}, err
	}
	next := patch.Apply(current)
	if err := u.validator.Struct(ServiceInput{
		Name:        strings.TrimSpace(next.Name),
		BasePrice:   next.BasePrice,
		Unit:        next.Unit,
		MinQuantity: next.MinQuantity,
		MaxQuantity: next.MaxQuantity,
	}); err != nil {
		return entities.ServiceItem{}, err
	}
	if err := validateQuantityRange(next.MinQuantity, next.MaxQuantity); err != nil {
		return entities.ServiceItem{}, err
	}
	if patch.CategoryID != nil && *patch.CategoryID != current.CategoryID {
		if _, ok := u.store.Category(*patch.CategoryID); !ok {
			return entities.ServiceItem{}, invalid("CategoryID", "categoria inexistente")
		}
	}
	if patch.Unit != nil && patch.UnitLabel == nil && *patch.Unit != current.Unit {
		label := patch.Unit.DefaultLabel()
		patch.UnitLabel = &label
	}

	updated := u.store.UpdateService(current.ID, patch)
	if updated.ID == "" {
		return entities.ServiceItem{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if !u.store.DeleteService(id) {
		return ErrServiceNotFound
	}
	return nil
}
