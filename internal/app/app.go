// Package app assembles the store and use cases shared by the API server and
// the command line.
package app

import (
	"context"
	"fmt"

	"github.com/Skale-Club/xtimator/internal/adapter/persistence/repository"
	"github.com/Skale-Club/xtimator/internal/config"
	"github.com/Skale-Club/xtimator/internal/infrastructure/clock"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	"github.com/Skale-Club/xtimator/internal/store"
	"github.com/Skale-Club/xtimator/internal/usecase"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

type App struct {
	Store *store.Store

	Catalog    usecase.ICatalogUseCase
	Customers  usecase.ICustomerUseCase
	Estimates  usecase.IEstimateUseCase
	Drafts     usecase.IDraftUseCase
	Onboarding usecase.IOnboardingUseCase
	Settings   usecase.ISettingsUseCase

	closeRepo func() error
}

type options struct {
	clock     clock.Clock
	logger    *logrus.Logger
	share     interfaces.IShareTarget
	clipboard interfaces.IClipboard
	repo      interfaces.ISnapshotRepository
}

type Option func(*options)

func WithClock(c clock.Clock) Option { return func(o *options) { o.clock = c } }

func WithLogger(l *logrus.Logger) Option { return func(o *options) { o.logger = l } }

// WithShare sets the share sheet and clipboard used by estimate sharing.
func WithShare(share interfaces.IShareTarget, clipboard interfaces.IClipboard) Option {
	return func(o *options) {
		o.share = share
		o.clipboard = clipboard
	}
}

// WithRepository skips the backend selected by the configuration.
func WithRepository(repo interfaces.ISnapshotRepository) Option {
	return func(o *options) { o.repo = repo }
}

// New opens the configured repository, loads the persisted snapshot and
// builds every use case on top of the store.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	o := options{clock: clock.Real(), logger: logging.GetLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	repo, closeRepo := o.repo, func() error { return nil }
	if repo == nil {
		var err error
		repo, closeRepo, err = repository.NewSnapshotRepository(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("snapshot repository: %w", err)
		}
	}

	st := store.New(repo,
		store.WithClock(o.clock),
		store.WithLogger(o.logger),
		store.WithStorageKey(cfg.StorageKey),
	)
	if err := st.Init(ctx); err != nil {
		_ = closeRepo()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	v := usecase.NewValidator(cfg.PhoneRegion)

	a := &App{
		Store:      st,
		Catalog:    usecase.NewCatalogUseCase(st, v),
		Customers:  usecase.NewCustomerUseCase(st, v),
		Estimates:  usecase.NewEstimateUseCase(st, o.clock, o.share, o.clipboard),
		Onboarding: usecase.NewOnboardingUseCase(st, v, nil),
		Settings:   usecase.NewSettingsUseCase(st),
		Drafts: usecase.NewDraftUseCase(st,
			usecase.WithDraftClock(o.clock),
			usecase.WithAssistantDelay(cfg.AssistantDelay),
			usecase.WithDraftLogger(o.logger),
		),
		closeRepo: closeRepo,
	}

	o.logger.WithFields(logrus.Fields{
		"backend": cfg.StorageBackend,
		"key":     cfg.StorageKey,
	}).Info("[app][bootstrap] store ready")

	return a, nil
}

// Close flushes pending writes and releases the repository.
func (a *App) Close(ctx context.Context) error {
	err := a.Store.Close(ctx)
	if cerr := a.closeRepo(); err == nil {
		err = cerr
	}
	return err
}
