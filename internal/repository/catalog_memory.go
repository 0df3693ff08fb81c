package repository

import (
	"context"
	"fmt"
	"strings"

	"recipehub-admin-api/internal/model"
)

// catalogData is the full master-data set a catalog backend loads at
// process start. After construction nothing mutates it.
type catalogData struct {
	recipeRows    []model.RecipeRow
	sizeCodes     []model.SizeCode
	inventory     []model.InventoryItem
	toppings      []model.ExtraTopping
	versions      []model.Version
	versionStores map[string][]model.Store
}

// MemoryCatalog implements CatalogRepository over an immutable in-memory
// data set. All catalog backends (fixture, SQLite, PostgreSQL, MySQL) load
// into one of these; only the load step differs.
type MemoryCatalog struct {
	source string
	data   catalogData

	inventoryByCode map[string]int
	sizeByCode      map[string]int
	toppingByCode   map[string]int
	rowsByVersion   map[string][]model.RecipeRow
	rowsByProduct   map[string][]model.RecipeRow
	versionSet      map[string]struct{}
}

// Verify interface compliance
var _ CatalogRepository = (*MemoryCatalog)(nil)

func newMemoryCatalog(source string, data catalogData) *MemoryCatalog {
	c := &MemoryCatalog{
		source:          source,
		data:            data,
		inventoryByCode: make(map[string]int, len(data.inventory)),
		sizeByCode:      make(map[string]int, len(data.sizeCodes)),
		toppingByCode:   make(map[string]int, len(data.toppings)),
		rowsByVersion:   make(map[string][]model.RecipeRow),
		rowsByProduct:   make(map[string][]model.RecipeRow),
		versionSet:      make(map[string]struct{}, len(data.versions)),
	}
	for i, item := range data.inventory {
		c.inventoryByCode[item.Code] = i
	}
	for i, sc := range data.sizeCodes {
		c.sizeByCode[sc.Code] = i
	}
	for i, t := range data.toppings {
		// A topping code can repeat per size; keep the first row as the
		// canonical lookup result.
		if _, ok := c.toppingByCode[t.Code]; !ok {
			c.toppingByCode[t.Code] = i
		}
	}
	for _, row := range data.recipeRows {
		c.rowsByVersion[row.VersionID] = append(c.rowsByVersion[row.VersionID], row)
		c.rowsByProduct[row.ProductCode] = append(c.rowsByProduct[row.ProductCode], row)
	}
	for _, v := range data.versions {
		c.versionSet[v.ID] = struct{}{}
	}
	return c
}

// SourceType names the backend the catalog was loaded from.
func (c *MemoryCatalog) SourceType() string { return c.source }

// FindInventoryItem returns the inventory item with the exact code.
func (c *MemoryCatalog) FindInventoryItem(ctx context.Context, code string) (*model.InventoryItem, error) {
	i, ok := c.inventoryByCode[code]
	if !ok {
		return nil, fmt.Errorf("inventory item %s: %w", code, ErrNotFound)
	}
	item := c.data.inventory[i]
	return &item, nil
}

// FindSizeCode returns the size code with the exact code.
func (c *MemoryCatalog) FindSizeCode(ctx context.Context, code string) (*model.SizeCode, error) {
	i, ok := c.sizeByCode[code]
	if !ok {
		return nil, fmt.Errorf("size code %s: %w", code, ErrNotFound)
	}
	sc := c.data.sizeCodes[i]
	return &sc, nil
}

// FindExtraTopping returns the extra topping with the exact code.
func (c *MemoryCatalog) FindExtraTopping(ctx context.Context, code string) (*model.ExtraTopping, error) {
	i, ok := c.toppingByCode[code]
	if !ok {
		return nil, fmt.Errorf("extra topping %s: %w", code, ErrNotFound)
	}
	t := c.data.toppings[i]
	return &t, nil
}

// FindRecipeRows returns every recipe row for the exact product code, across
// all versions it appears in.
func (c *MemoryCatalog) FindRecipeRows(ctx context.Context, productCode string) ([]model.RecipeRow, error) {
	rows, ok := c.rowsByProduct[productCode]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", productCode, ErrNotFound)
	}
	return append([]model.RecipeRow(nil), rows...), nil
}

// matches reports whether any of the fields contains term,
// case-insensitively.
func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// SearchInventoryItems returns items whose code or description contains
// term. Results are recomputed on every call.
func (c *MemoryCatalog) SearchInventoryItems(ctx context.Context, term string) ([]model.InventoryItem, error) {
	out := make([]model.InventoryItem, 0)
	for _, item := range c.data.inventory {
		if matches(term, item.Code, item.Description) {
			out = append(out, item)
		}
	}
	return out, nil
}

// SearchSizeCodes returns size codes whose code or description contains term.
func (c *MemoryCatalog) SearchSizeCodes(ctx context.Context, term string) ([]model.SizeCode, error) {
	out := make([]model.SizeCode, 0)
	for _, sc := range c.data.sizeCodes {
		if matches(term, sc.Code, sc.Description) {
			out = append(out, sc)
		}
	}
	return out, nil
}

// SearchExtraToppings returns toppings whose code or description contains term.
func (c *MemoryCatalog) SearchExtraToppings(ctx context.Context, term string) ([]model.ExtraTopping, error) {
	out := make([]model.ExtraTopping, 0)
	for _, t := range c.data.toppings {
		if matches(term, t.Code, t.Description) {
			out = append(out, t)
		}
	}
	return out, nil
}

// SearchRecipeRows returns recipe rows whose product code or description
// contains term.
func (c *MemoryCatalog) SearchRecipeRows(ctx context.Context, term string) ([]model.RecipeRow, error) {
	out := make([]model.RecipeRow, 0)
	for _, row := range c.data.recipeRows {
		if matches(term, row.ProductCode, row.ProductDescription) {
			out = append(out, row)
		}
	}
	return out, nil
}

// Versions returns all known recipe versions.
func (c *MemoryCatalog) Versions(ctx context.Context) ([]model.Version, error) {
	return append([]model.Version(nil), c.data.versions...), nil
}

// HasVersion reports whether the version exists in the catalog.
func (c *MemoryCatalog) HasVersion(ctx context.Context, versionID string) (bool, error) {
	_, ok := c.versionSet[versionID]
	return ok, nil
}

// RecipeRowsForVersion returns every recipe row belonging to a version.
func (c *MemoryCatalog) RecipeRowsForVersion(ctx context.Context, versionID string) ([]model.RecipeRow, error) {
	if _, ok := c.versionSet[versionID]; !ok {
		return nil, fmt.Errorf("version %s: %w", versionID, ErrNotFound)
	}
	return append([]model.RecipeRow(nil), c.rowsByVersion[versionID]...), nil
}

// StoresForVersion returns the store set a version is deployed to.
func (c *MemoryCatalog) StoresForVersion(ctx context.Context, versionID string) ([]model.Store, error) {
	if _, ok := c.versionSet[versionID]; !ok {
		return nil, fmt.Errorf("version %s: %w", versionID, ErrNotFound)
	}
	return append([]model.Store(nil), c.data.versionStores[versionID]...), nil
}
