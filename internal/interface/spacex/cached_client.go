package spacex

import (
	"context"
	"encoding/json"
	"time"

	"launchtrack-service/internal/domain/repository"
	"launchtrack-service/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// CachedClient wraps a SpaceX repository with a Redis fetch cache so that
// closely spaced sync cycles reuse the upstream payloads. Cache failures
// fall through to the live client and never fail a fetch.
type CachedClient struct {
	client repository.SpaceXRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedClient creates a new cached SpaceX client
func NewCachedClient(client repository.SpaceXRepository, rdb *redis.Client, ttl time.Duration, logger logger.Logger) *CachedClient {
	return &CachedClient{
		client: client,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// FetchLaunches fetches all launches, preferring the cache
func (c *CachedClient) FetchLaunches(ctx context.Context) ([]interface{}, error) {
	return c.fetch(ctx, "launches", c.client.FetchLaunches)
}

// FetchRockets fetches all rockets, preferring the cache
func (c *CachedClient) FetchRockets(ctx context.Context) ([]interface{}, error) {
	return c.fetch(ctx, "rockets", c.client.FetchRockets)
}

// FetchLaunchpads fetches all launchpads, preferring the cache
func (c *CachedClient) FetchLaunchpads(ctx context.Context) ([]interface{}, error) {
	return c.fetch(ctx, "launchpads", c.client.FetchLaunchpads)
}

func (c *CachedClient) fetch(ctx context.Context, resource string, live func(context.Context) ([]interface{}, error)) ([]interface{}, error) {
	key := "spacex:fetch:" + resource

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var records []interface{}
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			c.logger.Debug("Fetch cache hit", "resource", resource)
			return records, nil
		}
		// Undecodable cache entry, drop it and refetch.
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		c.logger.Warn("Fetch cache read failed", "resource", resource, "error", err)
	}

	records, err := live(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("Fetch cache write failed", "resource", resource, "error", err)
		}
	}
	return records, nil
}
