package uc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/mecsphere/appo/engine/instanceinfo/testutil"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTenantID   = "18db0283-3c67-4042-a708-a8e4c9ad60a2"
	testInstanceID = "71c5de0a-3b2c-4c15-9d8b-5f6e3e1b2a4c"
)

func seedInstance(t *testing.T, repo *testutil.InMemoryRepo) *instanceinfo.AppInstanceInfo {
	t.Helper()
	info := &instanceinfo.AppInstanceInfo{
		TenantID:          testTenantID,
		AppInstanceID:     testInstanceID,
		AppName:           "positioning-service",
		AppPackageID:      "pkg-001",
		OperationalStatus: "Instantiated",
	}
	created, err := uc.NewCreateInstance(repo, info).Execute(context.Background())
	require.NoError(t, err)
	return created
}

func TestCreateInstance(t *testing.T) {
	t.Run("Should create a record and stamp timestamps", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		created := seedInstance(t, repo)
		assert.False(t, created.CreateTime.IsZero())
		assert.Equal(t, created.CreateTime, created.UpdateTime)
	})
	t.Run("Should surface ErrInstanceExists unchanged on duplicate key", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		info := seedInstance(t, repo)
		_, err := uc.NewCreateInstance(repo, info).Execute(context.Background())
		assert.ErrorIs(t, err, uc.ErrInstanceExists)
	})
}

func TestGetInstance(t *testing.T) {
	t.Run("Should return the stored record", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		seedInstance(t, repo)
		got, err := uc.NewGetInstance(repo, testTenantID, testInstanceID).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "positioning-service", got.AppName)
	})
	t.Run("Should surface ErrInstanceNotFound unchanged", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		_, err := uc.NewGetInstance(repo, testTenantID, testInstanceID).Execute(context.Background())
		assert.ErrorIs(t, err, uc.ErrInstanceNotFound)
	})
	t.Run("Should wrap unexpected repository failures", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		repoErr := errors.New("connection reset")
		repo.SetError(repoErr)
		_, err := uc.NewGetInstance(repo, testTenantID, testInstanceID).Execute(context.Background())
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestListInstances(t *testing.T) {
	t.Run("Should list only records of the tenant", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		seedInstance(t, repo)
		other := &instanceinfo.AppInstanceInfo{
			TenantID:      "99db0283-3c67-4042-a708-a8e4c9ad60a2",
			AppInstanceID: testInstanceID,
		}
		_, err := uc.NewCreateInstance(repo, other).Execute(context.Background())
		require.NoError(t, err)
		infos, err := uc.NewListInstances(repo, testTenantID).Execute(context.Background())
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, testTenantID, infos[0].TenantID)
	})
	t.Run("Should return empty result for unknown tenant", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		infos, err := uc.NewListInstances(repo, testTenantID).Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, infos)
	})
}

func TestUpdateInstance(t *testing.T) {
	t.Run("Should force the path instance id over the body value", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		seedInstance(t, repo)
		body := &instanceinfo.AppInstanceInfo{
			TenantID:      testTenantID,
			AppInstanceID: "deadbeef-0000-0000-0000-000000000000",
			AppName:       "positioning-service-v2",
		}
		updated, err := uc.NewUpdateInstance(repo, testInstanceID, body).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testInstanceID, updated.AppInstanceID)
		assert.Equal(t, "positioning-service-v2", updated.AppName)
	})
	t.Run("Should surface ErrInstanceNotFound unchanged", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		body := &instanceinfo.AppInstanceInfo{TenantID: testTenantID}
		_, err := uc.NewUpdateInstance(repo, testInstanceID, body).Execute(context.Background())
		assert.ErrorIs(t, err, uc.ErrInstanceNotFound)
	})
}

func TestDeleteInstance(t *testing.T) {
	t.Run("Should delete an existing record", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		seedInstance(t, repo)
		err := uc.NewDeleteInstance(repo, testTenantID, testInstanceID).Execute(context.Background())
		require.NoError(t, err)
		_, err = uc.NewGetInstance(repo, testTenantID, testInstanceID).Execute(context.Background())
		assert.ErrorIs(t, err, uc.ErrInstanceNotFound)
	})
	t.Run("Should surface ErrInstanceNotFound unchanged", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		err := uc.NewDeleteInstance(repo, testTenantID, testInstanceID).Execute(context.Background())
		assert.ErrorIs(t, err, uc.ErrInstanceNotFound)
	})
}
