package interfaces

import "context"

// ISnapshotRepository abstracts the durable record holding the persisted
// application state.
//
// The record is opaque JSON owned by the store:
//   - Load returns nil data and a nil error when no record exists yet
//   - Save replaces the whole record
//   - Delete is idempotent

type ISnapshotRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
