package store

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/identifier"
	"github.com/Skale-Club/xtimator/internal/domain/lifecycle"
	"github.com/Skale-Club/xtimator/internal/infrastructure/clock"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	mock_interfaces "github.com/Skale-Club/xtimator/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newTestStore(t *testing.T, repo *mock_interfaces.MockISnapshotRepository) (*Store, *clock.FakeClock) {
	t.Helper()
	fc := clock.Fake(t0)
	s := New(repo,
		WithClock(fc),
		WithIDGenerator(identifier.Sequence("id")),
		WithLogger(logging.Discard()),
	)
	return s, fc
}

func TestStore_InitWithoutRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), DefaultStorageKey).Return(nil, nil)

	s, _ := newTestStore(t, repo)
	require.NoError(t, s.Init(context.Background()))
	defer s.Close(context.Background())

	st := s.State()
	assert.Nil(t, st.User)
	assert.False(t, st.OnboardingComplete)
	assert.Equal(t, entities.OnboardingStepWelcome, st.OnboardingStep)
	assert.Empty(t, st.Categories)
	assert.Empty(t, st.Estimates)
	assert.Equal(t, entities.DefaultSettings(), st.Settings)
}

func TestStore_InitUndecodableRecordFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), DefaultStorageKey).Return([]byte(`{"categories": "nope"`), nil)

	s, _ := newTestStore(t, repo)
	require.NoError(t, s.Init(context.Background()))
	defer s.Close(context.Background())

	assert.Equal(t, entities.DefaultSettings(), s.Settings())
	assert.Empty(t, s.Categories())
}

func TestStore_InitPartialRecordIsNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), DefaultStorageKey).
		Return([]byte(`{"onboardingComplete":true,"categories":[{"id":"c1","name":"Pintura","order":0}]}`), nil)

	s, _ := newTestStore(t, repo)
	require.NoError(t, s.Init(context.Background()))
	defer s.Close(context.Background())

	assert.True(t, s.OnboardingComplete())
	assert.Len(t, s.Categories(), 1)
	assert.NotNil(t, s.Services())
	assert.Equal(t, entities.DefaultSettings(), s.Settings())
}

func TestStore_InitRepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), DefaultStorageKey).Return(nil, errors.New("disk gone"))

	s, _ := newTestStore(t, repo)
	err := s.Init(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "load", perr.Op)
}

func TestStore_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)

	var saved []byte
	repo.EXPECT().Save(gomock.Any(), DefaultStorageKey, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, data []byte) error {
			saved = append([]byte(nil), data...)
			return nil
		},
	)

	src, fc := newTestStore(t, repo)
	src.SetUser(&entities.User{Email: "ana@example.com", BusinessName: "Ana Pinturas", BusinessType: "Pintura"})
	cat := src.AddCategory(entities.ServiceCategory{Name: "Pintura Interna"})
	svc := src.AddService(entities.ServiceItem{CategoryID: cat.ID, Name: "Pintura Parede Lisa", BasePrice: 25, Unit: entities.ServiceUnitSqm, UnitLabel: "m²", IsActive: true, Tags: []string{"interna"}})
	cust := src.AddCustomer(entities.Customer{Name: "Maria", Phone: "11 98765-4321"})
	fc.Advance(time.Minute)
	until := t0.AddDate(0, 0, 30)
	est := src.AddEstimate(entities.Estimate{
		CustomerID:   cust.ID,
		CustomerName: cust.Name,
		Title:        "Orçamento - Maria",
		TaxRate:      ptr(10.0),
		ValidUntil:   &until,
		LineItems: []entities.EstimateLineItem{
			{ServiceItemID: svc.ID, ServiceName: svc.Name, Quantity: 10, Unit: "m²", UnitPrice: 25},
		},
		Photos: []entities.EstimatePhoto{{ID: "p1", URL: "data:image/png;base64,AAAA", CreatedAt: t0}},
	})
	fc.Advance(time.Minute)
	_, err := src.TransitionEstimate(est.ID, entities.EstimateStatusSent)
	require.NoError(t, err)
	src.CompleteOnboarding()
	src.SetCurrentEstimate(&est)

	require.NoError(t, src.Flush(context.Background()))
	require.NotEmpty(t, saved)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(saved, &fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"user", "onboardingComplete", "onboardingStep", "categories", "services", "customers", "estimates", "settings"}, keys)

	repo.EXPECT().Load(gomock.Any(), DefaultStorageKey).Return(saved, nil)
	dst, _ := newTestStore(t, repo)
	require.NoError(t, dst.Init(context.Background()))
	defer dst.Close(context.Background())

	want, _ := json.Marshal(src.Snapshot())
	got, _ := json.Marshal(dst.Snapshot())
	assert.JSONEq(t, string(want), string(got))

	loaded, ok := dst.Estimate(est.ID)
	require.True(t, ok)
	require.NotNil(t, loaded.SentAt)
	assert.True(t, loaded.SentAt.Equal(t0.Add(2*time.Minute)))
	require.NotNil(t, loaded.ValidUntil)
	assert.True(t, loaded.ValidUntil.Equal(until))
	assert.True(t, loaded.CreatedAt.Equal(t0.Add(time.Minute)))
	assert.True(t, loaded.Photos[0].CreatedAt.Equal(t0))
	assert.Nil(t, dst.CurrentEstimate(), "current estimate is transient")
}

func TestStore_DeleteCategoryCascades(t *testing.T) {
	s, _ := newTestStore(t, nil)

	paint := s.AddCategory(entities.ServiceCategory{Name: "Pintura"})
	clean := s.AddCategory(entities.ServiceCategory{Name: "Limpeza"})
	s.AddService(entities.ServiceItem{CategoryID: paint.ID, Name: "Parede"})
	s.AddService(entities.ServiceItem{CategoryID: clean.ID, Name: "Vidros"})
	s.AddService(entities.ServiceItem{CategoryID: paint.ID, Name: "Teto"})
	s.AddService(entities.ServiceItem{CategoryID: "", Name: "Orphan"})

	assert.True(t, s.DeleteCategory(paint.ID))

	names := []string{}
	for _, svc := range s.Services() {
		assert.NotEqual(t, paint.ID, svc.CategoryID)
		names = append(names, svc.Name)
	}
	assert.Equal(t, []string{"Vidros", "Orphan"}, names)
	assert.Len(t, s.Categories(), 1)

	assert.False(t, s.DeleteCategory("missing"))
	assert.Len(t, s.Services(), 2)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s, _ := newTestStore(t, nil)
	cat := s.AddCategory(entities.ServiceCategory{Name: "Pintura"})
	svc := s.AddService(entities.ServiceItem{CategoryID: cat.ID, Name: "Pintura Porta", BasePrice: 80, UnitLabel: "porta"})
	cust := s.AddCustomer(entities.Customer{Name: "João", Phone: "11 3333-4444", Address: "Rua A, 1"})
	est := s.AddEstimate(entities.Estimate{
		CustomerID:      cust.ID,
		CustomerName:    cust.Name,
		CustomerPhone:   cust.Phone,
		CustomerAddress: cust.Address,
		LineItems:       []entities.EstimateLineItem{{ServiceItemID: svc.ID, ServiceName: svc.Name, Quantity: 2, Unit: "porta", UnitPrice: 80}},
	})

	s.UpdateService(svc.ID, entities.ServicePatch{BasePrice: ptr(95.0), Name: ptr("Porta")})
	s.UpdateCustomer(cust.ID, entities.CustomerPatch{Name: ptr("João Silva")})
	require.True(t, s.DeleteService(svc.ID))
	require.True(t, s.DeleteCustomer(cust.ID))

	got, ok := s.Estimate(est.ID)
	require.True(t, ok)
	assert.Equal(t, est, got)
	assert.Equal(t, "João", got.CustomerName)
	assert.Equal(t, "Pintura Porta", got.LineItems[0].ServiceName)
	assert.Equal(t, 160.0, got.Total)
}

func TestStore_EstimateTotalsAreRecomputed(t *testing.T) {
	s, fc := newTestStore(t, nil)

	est := s.AddEstimate(entities.Estimate{
		Title:     "Orçamento",
		Status:    entities.EstimateStatusAccepted,
		Subtotal:  999,
		Total:     999,
		TaxRate:   ptr(10.0),
		LineItems: []entities.EstimateLineItem{{ServiceName: "Parede", Quantity: 10, UnitPrice: 25, Total: 1}},
	})
	assert.Equal(t, entities.EstimateStatusDraft, est.Status, "new estimates always start as drafts")
	assert.NotEmpty(t, est.LineItems[0].ID)
	assert.Equal(t, 250.0, est.LineItems[0].Total)
	assert.Equal(t, 250.0, est.Subtotal)
	assert.Equal(t, 25.0, est.TaxAmount)
	assert.Equal(t, 275.0, est.Total)
	assert.Equal(t, t0, est.CreatedAt)

	fc.Advance(time.Hour)
	items := append(est.LineItems, entities.EstimateLineItem{ServiceName: "Porta", Quantity: 0, UnitPrice: 80})
	items[0].Quantity = 12
	updated := s.UpdateEstimate(est.ID, entities.EstimatePatch{LineItems: &items, Notes: ptr("2 demãos")})

	assert.Equal(t, 300.0, updated.LineItems[0].Total)
	assert.Equal(t, 1, updated.LineItems[1].Quantity, "quantity floor")
	assert.Equal(t, 80.0, updated.LineItems[1].Total)
	assert.Equal(t, 380.0, updated.Subtotal)
	assert.Equal(t, 38.0, updated.TaxAmount)
	assert.Equal(t, 418.0, updated.Total)
	assert.Equal(t, "2 demãos", updated.Notes)
	assert.Equal(t, t0.Add(time.Hour), updated.UpdatedAt)

	zero := 0.0
	noTax := s.UpdateEstimate(est.ID, entities.EstimatePatch{TaxRate: &zero})
	assert.Equal(t, 0.0, noTax.TaxAmount)
	assert.Equal(t, 380.0, noTax.Total)

	assert.Equal(t, entities.Estimate{}, s.UpdateEstimate("missing", entities.EstimatePatch{Notes: ptr("x")}))
}

func TestStore_TransitionEstimate(t *testing.T) {
	s, fc := newTestStore(t, nil)
	est := s.AddEstimate(entities.Estimate{Title: "Orçamento"})

	_, err := s.TransitionEstimate(est.ID, entities.EstimateStatusAccepted)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	unchanged, _ := s.Estimate(est.ID)
	assert.Equal(t, entities.EstimateStatusDraft, unchanged.Status)

	fc.Advance(time.Minute)
	sent, err := s.TransitionEstimate(est.ID, entities.EstimateStatusSent)
	require.NoError(t, err)
	assert.Equal(t, entities.EstimateStatusSent, sent.Status)
	assert.Equal(t, t0.Add(time.Minute), *sent.SentAt)
	assert.Equal(t, t0.Add(time.Minute), sent.UpdatedAt)

	fc.Advance(time.Minute)
	rejected, err := s.TransitionEstimate(est.ID, entities.EstimateStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, t0.Add(2*time.Minute), *rejected.RespondedAt)

	missing, err := s.TransitionEstimate("missing", entities.EstimateStatusSent)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestStore_Subscribe(t *testing.T) {
	s, _ := newTestStore(t, nil)

	var mu sync.Mutex
	var seen []int
	unsubscribe := s.Subscribe(func(st State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, len(st.Customers))
	})

	s.AddCustomer(entities.Customer{Name: "A"})
	s.AddCustomer(entities.Customer{Name: "B"})
	unsubscribe()
	s.AddCustomer(entities.Customer{Name: "C"})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2}, seen)
}

func TestStore_ListenerMayReadStore(t *testing.T) {
	s, _ := newTestStore(t, nil)
	var count int
	s.Subscribe(func(State) { count = len(s.Categories()) })
	s.AddCategory(entities.ServiceCategory{Name: "X"})
	assert.Equal(t, 1, count)
}

func TestStore_WriteThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), DefaultStorageKey).Return(nil, nil)

	writes := make(chan []byte, 16)
	repo.EXPECT().Save(gomock.Any(), DefaultStorageKey, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, data []byte) error {
			writes <- data
			return nil
		},
	).MinTimes(1)

	s, _ := newTestStore(t, repo)
	require.NoError(t, s.Init(context.Background()))

	s.AddCustomer(entities.Customer{Name: "Maria"})

	select {
	case data := <-writes:
		assert.Contains(t, string(data), "Maria")
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a write-through")
	}
	require.NoError(t, s.Close(context.Background()))
}

func TestStore_FlushFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), DefaultStorageKey, gomock.Any()).Return(errors.New("quota exceeded"))
	repo.EXPECT().Save(gomock.Any(), DefaultStorageKey, gomock.Any()).Return(nil)

	s, _ := newTestStore(t, repo)
	s.AddCustomer(entities.Customer{Name: "Maria"})

	err := s.Flush(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, err, s.LastPersistError())
	assert.Len(t, s.Customers(), 1, "in-memory state survives a failed write")

	require.NoError(t, s.Flush(context.Background()))
	assert.NoError(t, s.LastPersistError())

	// nothing changed since the last successful save
	require.NoError(t, s.Flush(context.Background()))
}

func TestStore_ResetStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), "custom-key").Return(nil)

	fc := clock.Fake(t0)
	s := New(repo, WithClock(fc), WithStorageKey("custom-key"), WithLogger(logging.Discard()))
	s.SetUser(&entities.User{BusinessName: "Ana"})
	s.AddCategory(entities.ServiceCategory{Name: "Pintura"})
	s.UpdateSettings(entities.SettingsPatch{TaxRate: ptr(5.0)})
	s.CompleteOnboarding()
	est := s.AddEstimate(entities.Estimate{})
	s.SetCurrentEstimate(&est)

	require.NoError(t, s.ResetStore(context.Background()))

	st := s.State()
	assert.Nil(t, st.User)
	assert.Nil(t, st.CurrentEstimate)
	assert.False(t, st.OnboardingComplete)
	assert.Empty(t, st.Categories)
	assert.Equal(t, entities.DefaultSettings(), st.Settings)

	// reset state is already durable: no save expected
	require.NoError(t, s.Flush(context.Background()))
}

func TestStore_SettingsAndUser(t *testing.T) {
	s, _ := newTestStore(t, nil)

	updated := s.UpdateSettings(entities.SettingsPatch{TaxRate: ptr(7.5), EmailSignature: ptr("Ana")})
	assert.Equal(t, 7.5, updated.TaxRate)
	assert.Equal(t, "BRL", updated.Currency)

	s.SetSettings(entities.AppSettings{Currency: "USD", CurrencySymbol: "US$", DefaultValidityDays: 15})
	assert.Equal(t, "US$", s.Settings().CurrencySymbol)

	s.SetUser(&entities.User{BusinessName: "Ana"})
	u := s.User()
	require.NotNil(t, u)
	assert.Equal(t, "id-1", u.ID)
	assert.Equal(t, t0, u.CreatedAt)

	u.BusinessName = "changed"
	assert.Equal(t, "Ana", s.User().BusinessName, "readers get copies")

	s.SetOnboardingStep(entities.OnboardingStepServiceSelection)
	assert.Equal(t, entities.OnboardingStepServiceSelection, s.OnboardingStep())
	s.CompleteOnboarding()
	assert.True(t, s.OnboardingComplete())
	assert.Equal(t, entities.OnboardingStepComplete, s.OnboardingStep())
}

func TestStore_ReadersCannotMutateState(t *testing.T) {
	s, _ := newTestStore(t, nil)
	s.AddEstimate(entities.Estimate{LineItems: []entities.EstimateLineItem{{Quantity: 1, UnitPrice: 10}}})

	list := s.Estimates()
	list[0].LineItems[0].Quantity = 99

	again := s.Estimates()
	assert.Equal(t, 1, again[0].LineItems[0].Quantity)
}

func TestStore_OversizedAmountsStayPersistable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), DefaultStorageKey, gomock.Any()).Return(nil)

	s, _ := newTestStore(t, repo)
	est := s.AddEstimate(entities.Estimate{Title: "Orçamento"})

	items := []entities.EstimateLineItem{{ServiceName: "Parede", Quantity: 10, UnitPrice: 1e308}}
	var updated entities.Estimate
	require.NotPanics(t, func() {
		updated = s.UpdateEstimate(est.ID, entities.EstimatePatch{LineItems: &items, TaxRate: ptr(1e308)})
	})
	assert.False(t, math.IsInf(updated.Total, 0))

	s.AddCustomer(entities.Customer{Name: "Maria"})
	require.NoError(t, s.Flush(context.Background()))
}

func TestStore_PanicInsideMutationReleasesLock(t *testing.T) {
	s, _ := newTestStore(t, nil)

	func() {
		defer func() { _ = recover() }()
		s.mutate(true, func() { panic("boom") })
	}()

	read := make(chan int, 1)
	go func() { read <- len(s.Estimates()) }()
	select {
	case n := <-read:
		assert.Equal(t, 0, n)
	case <-time.After(2 * time.Second):
		t.Fatalf("store read blocked after a panicking mutation")
	}
}
