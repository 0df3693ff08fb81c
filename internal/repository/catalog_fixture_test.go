package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureCatalog_FindByCode(t *testing.T) {
	catalog := NewFixtureCatalog(1)
	ctx := context.Background()

	item, err := catalog.FindInventoryItem(ctx, "ITM001")
	require.NoError(t, err)
	assert.Equal(t, "Mozzarella cheese block", item.Description)

	_, err = catalog.FindInventoryItem(ctx, "ITM999")
	assert.ErrorIs(t, err, ErrNotFound)

	sc, err := catalog.FindSizeCode(ctx, "MED")
	require.NoError(t, err)
	assert.Contains(t, sc.Description, "Medium")

	top, err := catalog.FindExtraTopping(ctx, "TOP001")
	require.NoError(t, err)
	assert.Equal(t, "Extra cheese", top.Description)
}

func TestFixtureCatalog_FindRecipeRows(t *testing.T) {
	catalog := NewFixtureCatalog(1)
	ctx := context.Background()

	rows, err := catalog.FindRecipeRows(ctx, "PZ002")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	versions := make(map[string]bool)
	for _, row := range rows {
		assert.Equal(t, "PZ002", row.ProductCode)
		versions[row.VersionID] = true
	}
	assert.Equal(t, map[string]bool{"v4": true, "v5": true, "v6": true}, versions,
		"lookup spans every version the product appears in")

	_, err = catalog.FindRecipeRows(ctx, "PZ999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFixtureCatalog_SearchIsCaseInsensitive(t *testing.T) {
	catalog := NewFixtureCatalog(1)
	ctx := context.Background()

	items, err := catalog.SearchInventoryItems(ctx, "CHEESE")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ITM001", items[0].Code)

	rows, err := catalog.SearchRecipeRows(ctx, "margherita")
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Equal(t, "PZ001", row.ProductCode)
	}

	none, err := catalog.SearchSizeCodes(ctx, "jumbo")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFixtureCatalog_Versions(t *testing.T) {
	catalog := NewFixtureCatalog(1)
	ctx := context.Background()

	versions, err := catalog.Versions(ctx)
	require.NoError(t, err)
	assert.Len(t, versions, 3)

	ok, err := catalog.HasVersion(ctx, "v5")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = catalog.HasVersion(ctx, "v99")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = catalog.RecipeRowsForVersion(ctx, "v99")
	assert.ErrorIs(t, err, ErrNotFound)

	rows, err := catalog.RecipeRowsForVersion(ctx, "v6")
	require.NoError(t, err)
	products := make(map[string]bool)
	for _, row := range rows {
		products[row.ProductCode] = true
	}
	assert.Equal(t, map[string]bool{"PZ002": true, "PZ003": true, "PZ004": true}, products)
}

func TestFixtureCatalog_StoreGenerationIsDeterministic(t *testing.T) {
	first := NewFixtureCatalog(42)
	second := NewFixtureCatalog(42)
	different := NewFixtureCatalog(7)
	ctx := context.Background()

	a, err := first.StoresForVersion(ctx, "v5")
	require.NoError(t, err)
	b, err := second.StoresForVersion(ctx, "v5")
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must yield the same store set")

	c, err := different.StoresForVersion(ctx, "v5")
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "a different seed should shuffle the store set")

	_, err = first.StoresForVersion(ctx, "v99")
	assert.ErrorIs(t, err, ErrNotFound)
}
