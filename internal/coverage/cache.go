package coverage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/logger"
)

const coverageKeyPrefix = "compliancemap:coverage:"

// CachedService decorates a Service with redis memoization of synthesized
// coverage results. Keys carry the mapping version, so a mapping replace
// naturally invalidates every cached entry without explicit flushing.
// Redis failures degrade to pass-through computation.
type CachedService struct {
	Service

	source Source
	client *redis.Client
	ttl    time.Duration
}

// NewCachedService wraps inner with a redis-backed coverage cache. The
// source is consulted for the mapping version used in cache keys.
func NewCachedService(inner Service, source Source, client *redis.Client, ttl time.Duration) *CachedService {
	return &CachedService{Service: inner, source: source, client: client, ttl: ttl}
}

// NewRedisClient creates a redis client from a URL and verifies the
// connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

// Coverage serves from the cache when possible and memoizes misses.
func (c *CachedService) Coverage(ctx context.Context,
	framework domain.FrameworkID,
	geom Geometry) (Coverage, error) {
	key, ok := c.coverageKey(ctx, framework, geom)
	if ok {
		raw, err := c.client.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var cached Coverage
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			logger.Warn(ctx, "discarding undecodable cached coverage", zap.String("key", key))
		case !errors.Is(err, redis.Nil):
			logger.Warn(ctx, "coverage cache read failed", zap.Error(err))
		}
	}

	result, err := c.Service.Coverage(ctx, framework, geom)
	if err != nil {
		return Coverage{}, err
	}

	if ok {
		if raw, err := json.Marshal(result); err == nil {
			if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
				logger.Warn(ctx, "coverage cache write failed", zap.Error(err))
			}
		}
	}

	return result, nil
}

// coverageKey builds the cache key for a coverage request. The mapping
// version is part of the key; when it cannot be determined, caching is
// skipped for this request.
func (c *CachedService) coverageKey(ctx context.Context,
	framework domain.FrameworkID,
	geom Geometry) (string, bool) {
	version, err := c.source.MappingVersion(ctx)
	if err != nil {
		logger.Warn(ctx, "could not resolve mapping version, skipping cache", zap.Error(err))

		return "", false
	}

	key := fmt.Sprintf("%s%s:%s:%g,%g,%g",
		coverageKeyPrefix, version, framework, geom.Center.X, geom.Center.Y, geom.OuterRadius)

	return key, true
}
