package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secdesk/internal/domain/dataset"
	"secdesk/internal/shared/errors"
	"secdesk/internal/shared/logger"
)

func TestDatasetRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDatasetRepository(db, logger.NewLogger())
	ctx := context.Background()

	ds, err := dataset.NewDataset("firewall-logs-2026", "alice")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, ds))
	assert.NotZero(t, ds.ID())

	found, err := repo.GetByID(ctx, ds.ID())
	require.NoError(t, err)
	assert.Equal(t, "firewall-logs-2026", found.Name())
	assert.Equal(t, "alice", found.Owner())
}

func TestDatasetRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDatasetRepository(db, logger.NewLogger())
	ctx := context.Background()

	ds, err := dataset.NewDataset("proxy-logs", "alice")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ds))

	require.NoError(t, ds.Rename("proxy-logs-archived"))
	require.NoError(t, ds.TransferOwnership("bob"))
	require.NoError(t, repo.Update(ctx, ds))

	found, err := repo.GetByID(ctx, ds.ID())
	require.NoError(t, err)
	assert.Equal(t, "proxy-logs-archived", found.Name())
	assert.Equal(t, "bob", found.Owner())
}

func TestDatasetRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDatasetRepository(db, logger.NewLogger())
	ctx := context.Background()

	ds, err := dataset.NewDataset("dns-queries", "carol")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ds))

	require.NoError(t, repo.Delete(ctx, ds.ID()))

	_, err = repo.GetByID(ctx, ds.ID())
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, ds.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDatasetRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDatasetRepository(db, logger.NewLogger())
	ctx := context.Background()

	first, err := dataset.NewDataset("alpha", "alice")
	require.NoError(t, err)
	second, err := dataset.NewDataset("beta", "bob")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	datasets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	assert.Equal(t, "alpha", datasets[0].Name())
	assert.Equal(t, "beta", datasets[1].Name())
}
