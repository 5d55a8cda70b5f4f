package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const snapshotLockTTL = 5 * time.Second

var ErrSnapshotLocked = errors.New("snapshot is being written by another process")

// SnapshotRedisRepository keeps the record under a plain Redis key. Writes
// take a short redislock on "<key>:lock" so two processes sharing the
// record never interleave a save and a delete.
type SnapshotRedisRepository struct {
	rdb    *redis.Client
	locker *redislock.Client
}

var _ interfaces.ISnapshotRepository = (*SnapshotRedisRepository)(nil)

func NewSnapshotRedisRepository(rdb *redis.Client, locker *redislock.Client) *SnapshotRedisRepository {
	if locker == nil {
		locker = redislock.New(rdb)
	}
	return &SnapshotRedisRepository{rdb: rdb, locker: locker}
}

func (r *SnapshotRedisRepository) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *SnapshotRedisRepository) Save(ctx context.Context, key string, data []byte) error {
	return r.withLock(ctx, key, func() error {
		return r.rdb.Set(ctx, key, data, 0).Err()
	})
}

func (r *SnapshotRedisRepository) Delete(ctx context.Context, key string) error {
	return r.withLock(ctx, key, func() error {
		return r.rdb.Del(ctx, key).Err()
	})
}

func (r *SnapshotRedisRepository) withLock(ctx context.Context, key string, fn func() error) error {
	lock, err := r.locker.Obtain(ctx, fmt.Sprintf("%s:lock", key), snapshotLockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 20),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return ErrSnapshotLocked
	}
	if err != nil {
		return err
	}
	defer lock.Release(context.WithoutCancel(ctx))

	return fn()
}
