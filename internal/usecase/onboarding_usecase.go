package usecase

import (
	"context"
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/identifier"
	"github.com/Skale-Club/xtimator/internal/domain/templates"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

const DefaultBusinessType = "Serviços"

type BusinessInput struct {
	BusinessName string `validate:"required"`
	BusinessType string
	Phone        string `validate:"omitempty,phone"`
	Email        string `validate:"omitempty,email"`
	Address      string
}

type OnboardingStatus struct {
	Complete bool
	Step     entities.OnboardingStep
	User     *entities.User
}

// TemplateResult is the catalog installed by ApplyTemplate.
type TemplateResult struct {
	Categories []entities.ServiceCategory
	Services   []entities.ServiceItem
}

type IOnboardingUseCase interface {
	Status(ctx context.Context) (OnboardingStatus, error)
	ListTemplates(ctx context.Context) ([]templates.BusinessTemplate, error)
	SetupBusiness(ctx context.Context, in BusinessInput) (entities.User, error)
	ApplyTemplate(ctx context.Context, templateID string) (TemplateResult, error)
	SetStep(ctx context.Context, step entities.OnboardingStep) (OnboardingStatus, error)
}

type onboardingStore interface {
	interfaces.ISettingsStore
	SetCategories(categories []entities.ServiceCategory)
	SetServices(services []entities.ServiceItem)
}

type OnboardingUseCase struct {
	store     onboardingStore
	validator *Validator
	newID     identifier.Generator
}

var _ IOnboardingUseCase = (*OnboardingUseCase)(nil)

func NewOnboardingUseCase(store onboardingStore, v *Validator, newID identifier.Generator) *OnboardingUseCase {
	if newID == nil {
		newID = identifier.New
	}
	return &OnboardingUseCase{store: store, validator: v, newID: newID}
}

func (u *OnboardingUseCase) Status(ctx context.Context) (OnboardingStatus, error) {
	return OnboardingStatus{
		Complete: u.store.OnboardingComplete(),
		Step:     u.store.OnboardingStep(),
		User:     u.store.User(),
	}, nil
}

func (u *OnboardingUseCase) ListTemplates(ctx context.Context) ([]templates.BusinessTemplate, error) {
	return templates.All(), nil
}

// SetupBusiness records the business profile and moves onboarding to
// service selection.
func (u *OnboardingUseCase) SetupBusiness(ctx context.Context, in BusinessInput) (entities.User, error) {
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.BusinessType = strings.TrimSpace(in.BusinessType)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if err := u.validator.Struct(in); err != nil {
		return entities.User{}, err
	}
	if in.BusinessType == "" {
		in.BusinessType = DefaultBusinessType
	}

	user := entities.User{
		Email:        in.Email,
		BusinessName: in.BusinessName,
		BusinessType: in.BusinessType,
		Phone:        in.Phone,
		Address:      strings.TrimSpace(in.Address),
	}
	if current := u.store.User(); current != nil {
		user.ID = current.ID
		user.CreatedAt = current.CreatedAt
		user.Logo = current.Logo
	}
	u.store.SetUser(&user)
	u.store.SetOnboardingStep(entities.OnboardingStepServiceSelection)

	if saved := u.store.User(); saved != nil {
		return *saved, nil
	}
	return user, nil
}

// ApplyTemplate replaces the catalog with the template's categories and
// services and completes onboarding. The custom template leaves the catalog
// empty.
func (u *OnboardingUseCase) ApplyTemplate(ctx context.Context, templateID string) (TemplateResult, error) {
	t, ok := templates.Find(strings.TrimSpace(templateID))
	if !ok {
		return TemplateResult{}, ErrTemplateNotFound
	}
	categories, services := templates.Expand(t, u.newID)
	u.store.SetCategories(categories)
	u.store.SetServices(services)
	u.store.CompleteOnboarding()
	return TemplateResult{Categories: categories, Services: services}, nil
}

func (u *OnboardingUseCase) SetStep(ctx context.Context, step entities.OnboardingStep) (OnboardingStatus, error) {
	if !step.Valid() {
		return OnboardingStatus{}, invalid("Step", ruleMessages["oneof"])
	}
	if step == entities.OnboardingStepComplete {
		u.store.CompleteOnboarding()
	} else {
		u.store.SetOnboardingStep(step)
	}
	return u.Status(ctx)
}
