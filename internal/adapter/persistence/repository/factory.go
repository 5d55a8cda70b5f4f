package repository

import (
	"context"
	"fmt"

	"github.com/Skale-Club/xtimator/internal/config"
	"github.com/Skale-Club/xtimator/internal/infrastructure/database"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

// NewSnapshotRepository builds the repository selected by cfg.StorageBackend.
// The returned close function releases backend connections.
func NewSnapshotRepository(ctx context.Context, cfg config.Config) (interfaces.ISnapshotRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case "", config.BackendFile:
		return NewSnapshotFileRepository(cfg.StoragePath), noop, nil

	case config.BackendMemory:
		return NewSnapshotMemoryRepository(), noop, nil

	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		repo, err := NewSnapshotSQLRepository(db)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return repo, sqlDB.Close, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return NewSnapshotDynamoRepository(ddb, cfg.SnapshotsTable), noop, nil

	case config.BackendRedis:
		rdb, locker, err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return NewSnapshotRedisRepository(rdb, locker), rdb.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
