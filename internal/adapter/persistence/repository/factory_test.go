package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Skale-Club/xtimator/internal/config"
)

func TestNewSnapshotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		repo, closeFn, err := NewSnapshotRepository(ctx, config.Config{StorageBackend: config.BackendFile, StoragePath: t.TempDir()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closeFn()
		if _, ok := repo.(*SnapshotFileRepository); !ok {
			t.Fatalf("expected file repository, got %T", repo)
		}
	})

	t.Run("memory", func(t *testing.T) {
		repo, _, err := NewSnapshotRepository(ctx, config.Config{StorageBackend: config.BackendMemory})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		exerciseSnapshotRepository(t, repo)
	})

	t.Run("sqlite", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "xtimator.db")
		repo, closeFn, err := NewSnapshotRepository(ctx, config.Config{StorageBackend: config.BackendSQLite, SQLiteDSN: dsn})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closeFn()
		exerciseSnapshotRepository(t, repo)
	})

	t.Run("unknown", func(t *testing.T) {
		if _, _, err := NewSnapshotRepository(ctx, config.Config{StorageBackend: "mongo"}); err == nil {
			t.Fatalf("expected error for unknown backend")
		}
	})
}
