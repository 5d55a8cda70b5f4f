package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

// SnapshotFileRepository keeps each record in <dir>/<key>.json. Writes go
// to a temporary file that is renamed over the target, so a crash never
// leaves a half-written record.
type SnapshotFileRepository struct {
	dir string
}

var _ interfaces.ISnapshotRepository = (*SnapshotFileRepository)(nil)

func NewSnapshotFileRepository(dir string) *SnapshotFileRepository {
	return &SnapshotFileRepository{dir: dir}
}

func (r *SnapshotFileRepository) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(r.dir, safe+".json")
}

func (r *SnapshotFileRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (r *SnapshotFileRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path(key))
}

func (r *SnapshotFileRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(r.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
