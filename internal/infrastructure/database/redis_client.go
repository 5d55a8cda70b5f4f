package database

import (
	"context"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client, checks it with PING and builds the lock client
// sharing its pool.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, *redislock.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}
	return rdb, redislock.New(rdb), nil
}
