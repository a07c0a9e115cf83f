package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/config"
)

// Redis wraps the go-redis client used by the row cache.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// Cached is a read-through row cache in front of another fetcher. Cache
// failures degrade to the wrapped fetcher; they never fail a fetch on their
// own.
type Cached struct {
	next   RowFetcher
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached wraps a fetcher with a Redis cache.
func NewCached(next RowFetcher, r *Redis, ttl time.Duration, logger *zap.Logger) *Cached {
	return &Cached{next: next, client: r.Client, ttl: ttl, logger: logger}
}

// FetchRows serves rows from cache when present, falling back to the wrapped
// fetcher and repopulating on miss.
func (c *Cached) FetchRows(ctx context.Context, table string) ([]map[string]any, error) {
	key := "rows:" + table

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var rows []map[string]any
		if jsonErr := json.Unmarshal(raw, &rows); jsonErr == nil {
			return rows, nil
		}
		c.logger.Warn("discarding malformed cache entry", zap.String("table", table))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("row cache read failed", zap.String("table", table), zap.Error(err))
	}

	rows, err := c.next.FetchRows(ctx, table)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(rows); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			c.logger.Warn("row cache write failed", zap.String("table", table), zap.Error(setErr))
		}
	}
	return rows, nil
}
