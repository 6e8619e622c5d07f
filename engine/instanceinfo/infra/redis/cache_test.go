package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mecsphere/appo/engine/instanceinfo"
	redisrepo "github.com/mecsphere/appo/engine/instanceinfo/infra/redis"
	"github.com/mecsphere/appo/engine/instanceinfo/testutil"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tenantID   = "18db0283-3c67-4042-a708-a8e4c9ad60a2"
	instanceID = "71c5de0a-3b2c-4c15-9d8b-5f6e3e1b2a4c"
)

func setupCache(t *testing.T) (*testutil.InMemoryRepo, uc.Repository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	inner := testutil.NewInMemoryRepo()
	return inner, redisrepo.NewCachedRepository(inner, client, time.Minute)
}

func seed(t *testing.T, repo uc.Repository) {
	t.Helper()
	err := repo.CreateInstanceInfo(context.Background(), &instanceinfo.AppInstanceInfo{
		TenantID:      tenantID,
		AppInstanceID: instanceID,
		AppName:       "positioning-service",
	})
	require.NoError(t, err)
}

func TestCachedRepository_GetInstanceInfo(t *testing.T) {
	t.Run("Should serve repeated reads from the cache", func(t *testing.T) {
		inner, cached := setupCache(t)
		seed(t, cached)
		ctx := context.Background()
		_, err := cached.GetInstanceInfo(ctx, tenantID, instanceID)
		require.NoError(t, err)
		callsAfterFirst := inner.Calls()
		got, err := cached.GetInstanceInfo(ctx, tenantID, instanceID)
		require.NoError(t, err)
		assert.Equal(t, "positioning-service", got.AppName)
		assert.Equal(t, callsAfterFirst, inner.Calls(), "second read must not hit the inner repository")
	})
	t.Run("Should pass through not-found from the inner repository", func(t *testing.T) {
		_, cached := setupCache(t)
		_, err := cached.GetInstanceInfo(context.Background(), tenantID, instanceID)
		assert.ErrorIs(t, err, uc.ErrInstanceNotFound)
	})
}

func TestCachedRepository_Invalidation(t *testing.T) {
	t.Run("Should serve fresh data after an update", func(t *testing.T) {
		_, cached := setupCache(t)
		seed(t, cached)
		ctx := context.Background()
		_, err := cached.GetInstanceInfo(ctx, tenantID, instanceID)
		require.NoError(t, err)
		_, err = cached.UpdateInstanceInfo(ctx, &instanceinfo.AppInstanceInfo{
			TenantID:      tenantID,
			AppInstanceID: instanceID,
			AppName:       "positioning-service-v2",
		})
		require.NoError(t, err)
		got, err := cached.GetInstanceInfo(ctx, tenantID, instanceID)
		require.NoError(t, err)
		assert.Equal(t, "positioning-service-v2", got.AppName)
	})
	t.Run("Should not serve a deleted record from the cache", func(t *testing.T) {
		_, cached := setupCache(t)
		seed(t, cached)
		ctx := context.Background()
		_, err := cached.GetInstanceInfo(ctx, tenantID, instanceID)
		require.NoError(t, err)
		require.NoError(t, cached.DeleteInstanceInfo(ctx, tenantID, instanceID))
		_, err = cached.GetInstanceInfo(ctx, tenantID, instanceID)
		assert.ErrorIs(t, err, uc.ErrInstanceNotFound)
	})
}

func TestCachedRepository_ListInstanceInfos(t *testing.T) {
	t.Run("Should always delegate list to the inner repository", func(t *testing.T) {
		inner, cached := setupCache(t)
		seed(t, cached)
		ctx := context.Background()
		before := inner.Calls()
		infos, err := cached.ListInstanceInfos(ctx, tenantID)
		require.NoError(t, err)
		assert.Len(t, infos, 1)
		assert.Equal(t, before+1, inner.Calls())
	})
}
