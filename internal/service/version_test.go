package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub-admin-api/internal/repository"
)

func TestCompareVersions(t *testing.T) {
	svc := NewVersionService(repository.NewFixtureCatalog(1))
	require.NotNil(t, svc)
	ctx := context.Background()

	diff, err := svc.Compare(ctx, "v5", "v6")
	require.NoError(t, err)

	assert.Equal(t, "v5", diff.CurrentVersion)
	assert.Equal(t, "v6", diff.TargetVersion)
	assert.Equal(t, []string{"PZ001"}, diff.Removed)
	assert.Equal(t, []string{"PZ004"}, diff.Added)
	assert.Equal(t, 1, diff.ChangedCount)
}

func TestCompareIsAntisymmetric(t *testing.T) {
	svc := NewVersionService(repository.NewFixtureCatalog(1))
	ctx := context.Background()

	forward, err := svc.Compare(ctx, "v5", "v6")
	require.NoError(t, err)
	backward, err := svc.Compare(ctx, "v6", "v5")
	require.NoError(t, err)

	assert.Equal(t, forward.Removed, backward.Added)
	assert.Equal(t, forward.Added, backward.Removed)
	assert.Equal(t, forward.ChangedCount, backward.ChangedCount)
}

func TestCompareSameVersionIsEmpty(t *testing.T) {
	svc := NewVersionService(repository.NewFixtureCatalog(1))

	diff, err := svc.Compare(context.Background(), "v6", "v6")
	require.NoError(t, err)

	assert.Empty(t, diff.Removed)
	assert.Empty(t, diff.Added)
	assert.Zero(t, diff.ChangedCount)
}

func TestCompareUnknownVersion(t *testing.T) {
	svc := NewVersionService(repository.NewFixtureCatalog(1))
	ctx := context.Background()

	_, err := svc.Compare(ctx, "v99", "v6")
	assert.ErrorIs(t, err, ErrUnknownVersion)

	_, err = svc.Compare(ctx, "v5", "v99")
	assert.ErrorIs(t, err, ErrUnknownVersion)
}
