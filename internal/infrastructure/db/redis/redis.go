package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Config carries the connection settings for the policy cache backend.
type Config struct {
	Addr     string
	Password string
	DB       int
	// PingTimeout bounds the startup connectivity check. Zero means the
	// default of 5s.
	PingTimeout time.Duration
}

// Connect opens a Redis client for the policy cache and verifies the server
// is reachable before returning it. The client is closed on ping failure so
// callers never hold a half-open connection.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
