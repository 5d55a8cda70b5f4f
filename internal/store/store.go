// Package store is the single source of truth of the application: catalog,
// customers, estimates, settings, user and onboarding progress.
//
// Every mutation replaces the touched collection with a new slice under the
// write lock, so a reader holding a previous slice never sees a partial
// update. After each mutation subscribers are notified synchronously and a
// write-through of the persisted subset is scheduled on a background
// goroutine. Flush persists synchronously when durability matters.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/identifier"
	"github.com/Skale-Club/xtimator/internal/infrastructure/clock"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const DefaultStorageKey = "xtimator-storage"

// State is what subscribers observe: the persisted snapshot plus the
// transient estimate being edited.
type State struct {
	entities.Snapshot
	CurrentEstimate *entities.Estimate
}

// Listener receives a copy of the state after every mutation.
type Listener func(State)

type Option func(*Store)

func WithClock(c clock.Clock) Option { return func(s *Store) { s.clock = c } }

func WithIDGenerator(g identifier.Generator) Option { return func(s *Store) { s.newID = g } }

func WithLogger(l *logrus.Logger) Option { return func(s *Store) { s.logger = l } }

func WithStorageKey(key string) Option { return func(s *Store) { s.key = key } }

type Store struct {
	repo   interfaces.ISnapshotRepository
	key    string
	clock  clock.Clock
	newID  identifier.Generator
	logger *logrus.Logger

	mu      sync.RWMutex
	data    entities.Snapshot
	current *entities.Estimate
	version uint64

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextLn      int

	persistMu    sync.Mutex
	savedVersion uint64
	lastErr      error

	dirty   chan struct{}
	stop    chan struct{}
	done    chan struct{}
	started bool
	closed  bool
}

var _ interfaces.IAppStore = (*Store)(nil)

// New builds a store holding the default empty state. Call Init to load the
// persisted record and start the write-through.
func New(repo interfaces.ISnapshotRepository, opts ...Option) *Store {
	s := &Store{
		repo:      repo,
		key:       DefaultStorageKey,
		clock:     clock.Real(),
		newID:     identifier.New,
		logger:    logging.GetLogger(),
		data:      entities.EmptySnapshot(),
		listeners: make(map[int]Listener),
		dirty:     make(chan struct{}, 1),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the persisted record and starts the background writer. A
// missing record yields the default state; an undecodable one is logged and
// replaced by defaults. A repository failure is returned and the writer is
// not started, so a transient outage never overwrites good data.
func (s *Store) Init(ctx context.Context) error {
	s.persistMu.Lock()
	raw, err := s.repo.Load(ctx, s.key)
	if err != nil {
		s.persistMu.Unlock()
		perr := &PersistenceError{Op: "load", Key: s.key, Err: err}
		logging.LogError(s.logger, "store", "Init", "[store][init] load failed", nil, perr)
		return perr
	}

	snap := entities.EmptySnapshot()
	if len(raw) > 0 {
		var decoded entities.Snapshot
		if err := json.Unmarshal(raw, &decoded); err != nil {
			s.logger.WithFields(logrus.Fields{"key": s.key, "error": err.Error()}).
				Warn("[store][init] persisted record is not compatible; starting from defaults")
		} else {
			snap = decoded.Normalize()
		}
	}

	s.mu.Lock()
	s.data = snap
	s.current = nil
	s.version++
	s.savedVersion = s.version
	s.mu.Unlock()
	s.persistMu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"key":        s.key,
		"categories": len(snap.Categories),
		"services":   len(snap.Services),
		"customers":  len(snap.Customers),
		"estimates":  len(snap.Estimates),
	}).Info("[store][init] state loaded")

	s.startWriter()
	s.notify()
	return nil
}

func (s *Store) startWriter() {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if s.started || s.closed {
		return
	}
	s.started = true
	go s.writeLoop()
}

func (s *Store) writeLoop() {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			return
		case <-s.dirty:
			if err := s.persist(context.Background()); err != nil {
				logging.LogError(s.logger, "store", "writeLoop", "[store][persist] write-through failed", nil, err)
			}
		}
	}
}

// Flush synchronously writes the persisted subset. It returns a
// *PersistenceError when the repository fails.
func (s *Store) Flush(ctx context.Context) error {
	return s.persist(ctx)
}

// Close stops the background writer and flushes what is left.
func (s *Store) Close(ctx context.Context) error {
	s.persistMu.Lock()
	started := s.started
	s.started = false
	s.closed = true
	s.persistMu.Unlock()

	if started {
		close(s.stop)
		select {
		case <-s.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.Flush(ctx)
}

// LastPersistError returns the error of the most recent save, nil when it
// succeeded.
func (s *Store) LastPersistError() error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	return s.lastErr
}

func (s *Store) persist(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	version := s.version
	if version == s.savedVersion {
		s.mu.RUnlock()
		return nil
	}
	raw, err := json.Marshal(s.data)
	s.mu.RUnlock()
	if err != nil {
		s.lastErr = &PersistenceError{Op: "encode", Key: s.key, Err: err}
		return s.lastErr
	}

	if err := s.repo.Save(ctx, s.key, raw); err != nil {
		s.lastErr = &PersistenceError{Op: "save", Key: s.key, Err: err}
		return s.lastErr
	}
	s.savedVersion = version
	s.lastErr = nil
	return nil
}

// Subscribe registers l and returns a function removing it.
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextLn
	s.nextLn++
	s.listeners[id] = l
	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

// State returns a deep copy of the whole state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Snapshot returns a deep copy of the persisted subset.
func (s *Store) Snapshot() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (s *Store) stateLocked() State {
	st := State{Snapshot: s.data.Clone()}
	if s.current != nil {
		c := s.current.Clone()
		st.CurrentEstimate = &c
	}
	return st
}

// mutate runs fn under the write lock, then notifies listeners and schedules
// a write-through when persisted data changed.
func (s *Store) mutate(persisted bool, fn func()) {
	func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		fn()
		if persisted {
			s.version++
		}
	}()

	if persisted {
		select {
		case s.dirty <- struct{}{}:
		default:
		}
	}
	s.notify()
}

func (s *Store) notify() {
	s.listenersMu.Lock()
	if len(s.listeners) == 0 {
		s.listenersMu.Unlock()
		return
	}
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.listenersMu.Unlock()

	st := s.State()
	for _, l := range ls {
		l(st)
	}
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}

// ResetStore clears every collection and singleton back to the defaults and
// deletes the persisted record. Irreversible.
func (s *Store) ResetStore(ctx context.Context) error {
	err := s.reset(ctx)
	s.notify()
	return err
}

func (s *Store) reset(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.data = entities.EmptySnapshot()
	s.current = nil
	s.version++
	s.savedVersion = s.version
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, s.key); err != nil {
		s.lastErr = &PersistenceError{Op: "delete", Key: s.key, Err: err}
		return s.lastErr
	}
	s.lastErr = nil
	s.logger.WithField("key", s.key).Info("[store][reset] state cleared")
	return nil
}
