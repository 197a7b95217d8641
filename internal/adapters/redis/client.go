package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"lettrix/internal/config"
)

// Client wraps a Redis client with configuration.
type Client struct {
	native redis.UniversalClient
}

// NewClient creates a new Redis client with the given configuration.
// Supports single-node, cluster mode, and sentinel (failover) configurations.
func NewClient(cfg config.RedisConfig) (*Client, error) {
	var rdb redis.UniversalClient

	switch {
	case cfg.ClusterMode:
		rdb = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        []string{cfg.Addr},
			Password:     cfg.Password,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			PoolSize:     cfg.PoolSize,
			MinIdleConns: cfg.MinIdleConns,
		})
	case len(cfg.SentinelAddrs) > 0:
		rdb = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    cfg.MasterName,
			SentinelAddrs: cfg.SentinelAddrs,
			Password:      cfg.Password,
			DB:            cfg.DB,
			DialTimeout:   cfg.DialTimeout,
			ReadTimeout:   cfg.ReadTimeout,
			WriteTimeout:  cfg.WriteTimeout,
			PoolSize:      cfg.PoolSize,
			MinIdleConns:  cfg.MinIdleConns,
		})
	default:
		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			PoolSize:     cfg.PoolSize,
			MinIdleConns: cfg.MinIdleConns,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Client{native: rdb}, nil
}

// NewFromNative wraps an existing client. Used by tests.
func NewFromNative(rdb redis.UniversalClient) *Client {
	return &Client{native: rdb}
}

// Native returns the underlying redis.UniversalClient for advanced operations.
func (c *Client) Native() redis.UniversalClient {
	return c.native
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.native.Close()
}

// ttlOrZero converts a duration to milliseconds for script arguments.
func ttlOrZero(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return d.Milliseconds()
}
