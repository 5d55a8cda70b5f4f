package usecase

import (
	"context"
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.AppSettings, error)
	Update(ctx context.Context, patch entities.SettingsPatch) (entities.AppSettings, error)
	Flush(ctx context.Context) error
	Reset(ctx context.Context) error
}

type SettingsUseCase struct {
	store interfaces.ISettingsStore
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(store interfaces.ISettingsStore) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.AppSettings, error) {
	return u.store.Settings(), nil
}

func (u *SettingsUseCase) Update(ctx context.Context, patch entities.SettingsPatch) (entities.AppSettings, error) {
	if patch.TaxRate != nil {
		if err := checkTaxRate("TaxRate", *patch.TaxRate); err != nil {
			return entities.AppSettings{}, err
		}
	}
	if patch.DefaultValidityDays != nil && *patch.DefaultValidityDays < 1 {
		return entities.AppSettings{}, invalid("DefaultValidityDays", "deve ser de pelo menos 1 dia")
	}
	if patch.Currency != nil && strings.TrimSpace(*patch.Currency) == "" {
		return entities.AppSettings{}, invalid("Currency", ruleMessages["required"])
	}
	if patch.CurrencySymbol != nil && strings.TrimSpace(*patch.CurrencySymbol) == "" {
		return entities.AppSettings{}, invalid("CurrencySymbol", ruleMessages["required"])
	}
	return u.store.UpdateSettings(patch), nil
}

// Flush waits until the current state is durable.
func (u *SettingsUseCase) Flush(ctx context.Context) error {
	return u.store.Flush(ctx)
}

// Reset wipes every collection and the persisted record.
func (u *SettingsUseCase) Reset(ctx context.Context) error {
	return u.store.ResetStore(ctx)
}
