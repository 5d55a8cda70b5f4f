package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Skale-Club/xtimator/internal/adapter/persistence/repository"
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/identifier"
	"github.com/Skale-Club/xtimator/internal/infrastructure/clock"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	"github.com/Skale-Club/xtimator/internal/store"
)

var t0 = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type testApp struct {
	store     *store.Store
	clock     *clock.FakeClock
	validator *Validator
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	fc := clock.Fake(t0)
	s := store.New(repository.NewSnapshotMemoryRepository(),
		store.WithClock(fc),
		store.WithIDGenerator(identifier.Sequence("id")),
		store.WithLogger(logging.Discard()),
	)
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return &testApp{store: s, clock: fc, validator: NewValidator("BR")}
}

func (a *testApp) catalog() *CatalogUseCase { return NewCatalogUseCase(a.store, a.validator) }

func (a *testApp) drafts(delay time.Duration) *DraftUseCase {
	return NewDraftUseCase(a.store,
		WithDraftClock(a.clock),
		WithDraftIDGenerator(identifier.Sequence("d")),
		WithAssistantDelay(delay),
		WithDraftLogger(logging.Discard()),
	)
}

// seedPainting installs one category with two active services priced 25/m²
// and 80/job.
func (a *testApp) seedPainting(t *testing.T) (entities.ServiceItem, entities.ServiceItem) {
	t.Helper()
	ctx := context.Background()
	uc := a.catalog()
	cat, err := uc.CreateCategory(ctx, CategoryInput{Name: "Pintura"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	wall, err := uc.CreateService(ctx, ServiceInput{CategoryID: cat.ID, Name: "Pintura Parede Lisa", BasePrice: 25, Unit: entities.ServiceUnitSqm})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	visit, err := uc.CreateService(ctx, ServiceInput{CategoryID: cat.ID, Name: "Visita Técnica", BasePrice: 80, Unit: entities.ServiceUnitJob})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	return wall, visit
}
