package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
	"github.com/mecsphere/appo/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// CachedRepository wraps a repository with Redis caching for the hot
// get-one path. Cache failures degrade to the inner repository and never
// surface to callers.
type CachedRepository struct {
	repo   uc.Repository
	client Interface
	ttl    time.Duration
}

// Interface defines the minimal Redis interface needed for caching
type Interface interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewCachedRepository creates a new cached repository
func NewCachedRepository(repo uc.Repository, client Interface, ttl time.Duration) uc.Repository {
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &CachedRepository{
		repo:   repo,
		client: client,
		ttl:    ttl,
	}
}

func (c *CachedRepository) cacheKey(tenantID, appInstanceID string) string {
	return fmt.Sprintf("appo:instinfo:%s:%s", tenantID, appInstanceID)
}

// GetInstanceInfo retrieves a record, serving from Redis when possible
func (c *CachedRepository) GetInstanceInfo(ctx context.Context, tenantID, appInstanceID string) (*instanceinfo.AppInstanceInfo, error) {
	log := logger.FromContext(ctx)
	key := c.cacheKey(tenantID, appInstanceID)
	cached := c.client.Get(ctx, key)
	if cached.Err() == nil {
		var info instanceinfo.AppInstanceInfo
		if unmarshalErr := json.Unmarshal([]byte(cached.Val()), &info); unmarshalErr == nil {
			log.Debug("Instance info cache hit", "cache_key", key)
			return &info, nil
		}
	}
	info, err := c.repo.GetInstanceInfo(ctx, tenantID, appInstanceID)
	if err != nil {
		return nil, err
	}
	if data, marshalErr := json.Marshal(info); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			log.Warn("Failed to cache instance info", "cache_key", key, "error", setErr)
		}
	}
	return info, nil
}

// ListInstanceInfos delegates to the inner repository; the list is not
// cached because any mutation within the tenant would invalidate it.
func (c *CachedRepository) ListInstanceInfos(ctx context.Context, tenantID string) ([]*instanceinfo.AppInstanceInfo, error) {
	return c.repo.ListInstanceInfos(ctx, tenantID)
}

// CreateInstanceInfo delegates and primes the cache for the new record
func (c *CachedRepository) CreateInstanceInfo(ctx context.Context, info *instanceinfo.AppInstanceInfo) error {
	if err := c.repo.CreateInstanceInfo(ctx, info); err != nil {
		return err
	}
	c.invalidate(ctx, info.TenantID, info.AppInstanceID)
	return nil
}

// UpdateInstanceInfo delegates and invalidates the cached record
func (c *CachedRepository) UpdateInstanceInfo(ctx context.Context, info *instanceinfo.AppInstanceInfo) (*instanceinfo.AppInstanceInfo, error) {
	updated, err := c.repo.UpdateInstanceInfo(ctx, info)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, info.TenantID, info.AppInstanceID)
	return updated, nil
}

// DeleteInstanceInfo delegates and invalidates the cached record
func (c *CachedRepository) DeleteInstanceInfo(ctx context.Context, tenantID, appInstanceID string) error {
	if err := c.repo.DeleteInstanceInfo(ctx, tenantID, appInstanceID); err != nil {
		return err
	}
	c.invalidate(ctx, tenantID, appInstanceID)
	return nil
}

func (c *CachedRepository) invalidate(ctx context.Context, tenantID, appInstanceID string) {
	key := c.cacheKey(tenantID, appInstanceID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.FromContext(ctx).Warn("Failed to invalidate instance info cache", "cache_key", key, "error", err)
	}
}
