package interfaces

import (
	"context"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
)

// The store interfaces split the application store by concern so each use
// case depends only on the collections it touches.
//
// Mutations are synchronous and never fail; durability is reported by Flush.
// Updates of an unknown id return a zero entity and deletes return false.

type ICatalogStore interface {
	Categories() []entities.ServiceCategory
	Category(id string) (entities.ServiceCategory, bool)
	AddCategory(c entities.ServiceCategory) entities.ServiceCategory
	UpdateCategory(id string, patch entities.CategoryPatch) entities.ServiceCategory
	DeleteCategory(id string) bool
	SetCategories(categories []entities.ServiceCategory)

	Services() []entities.ServiceItem
	Service(id string) (entities.ServiceItem, bool)
	AddService(s entities.ServiceItem) entities.ServiceItem
	UpdateService(id string, patch entities.ServicePatch) entities.ServiceItem
	DeleteService(id string) bool
	SetServices(services []entities.ServiceItem)
}

type ICustomerStore interface {
	Customers() []entities.Customer
	Customer(id string) (entities.Customer, bool)
	AddCustomer(c entities.Customer) entities.Customer
	UpdateCustomer(id string, patch entities.CustomerPatch) entities.Customer
	DeleteCustomer(id string) bool
}

type IEstimateStore interface {
	Estimates() []entities.Estimate
	Estimate(id string) (entities.Estimate, bool)
	AddEstimate(e entities.Estimate) entities.Estimate
	UpdateEstimate(id string, patch entities.EstimatePatch) entities.Estimate
	DeleteEstimate(id string) bool
	TransitionEstimate(id string, to entities.EstimateStatus) (entities.Estimate, error)
	SetCurrentEstimate(e *entities.Estimate)
	CurrentEstimate() *entities.Estimate
}

type ISettingsStore interface {
	Settings() entities.AppSettings
	SetSettings(s entities.AppSettings)
	UpdateSettings(patch entities.SettingsPatch) entities.AppSettings

	User() *entities.User
	SetUser(u *entities.User)
	OnboardingComplete() bool
	OnboardingStep() entities.OnboardingStep
	SetOnboardingStep(step entities.OnboardingStep)
	CompleteOnboarding()

	Flush(ctx context.Context) error
	ResetStore(ctx context.Context) error
}

// IAppStore is the whole store.
type IAppStore interface {
	ICatalogStore
	ICustomerStore
	IEstimateStore
	ISettingsStore
}
