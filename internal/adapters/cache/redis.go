package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClientName identifies engine connections in CLIENT LIST.
const ClientName = "lifesync-engine"

const pingTimeout = 5 * time.Second

func redisOptions(host, port, password string, dbIndex int) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(host, port),
		ClientName:   ClientName,
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

// NewRedisClient connects and pings within ctx, bounded by pingTimeout. The
// client is closed again when the ping fails.
func NewRedisClient(ctx context.Context, host, port, password string, dbIndex int) (*redis.Client, error) {
	opts := redisOptions(host, port, password, dbIndex)
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
