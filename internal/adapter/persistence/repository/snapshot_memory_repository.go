package repository

import (
	"context"
	"sync"

	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

// SnapshotMemoryRepository keeps records in process memory. Nothing
// survives a restart.
type SnapshotMemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

var _ interfaces.ISnapshotRepository = (*SnapshotMemoryRepository)(nil)

func NewSnapshotMemoryRepository() *SnapshotMemoryRepository {
	return &SnapshotMemoryRepository{records: make(map[string][]byte)}
}

func (r *SnapshotMemoryRepository) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneBytes(r.records[key]), nil
}

func (r *SnapshotMemoryRepository) Save(_ context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[key] = cloneBytes(data)
	return nil
}

func (r *SnapshotMemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, key)
	return nil
}
