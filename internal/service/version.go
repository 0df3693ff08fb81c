package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"recipehub-admin-api/internal/model"
	"recipehub-admin-api/internal/repository"
)

// VersionService computes recipe differences between catalog versions for
// rollback and extend confirmation screens.
type VersionService struct {
	catalog repository.CatalogRepository
}

// NewVersionService creates a new version service.
// Returns nil if catalog is nil (required dependency).
func NewVersionService(catalog repository.CatalogRepository) *VersionService {
	if catalog == nil {
		return nil
	}
	return &VersionService{catalog: catalog}
}

// VersionDiff is the product-level difference between two versions.
type VersionDiff struct {
	CurrentVersion string   `json:"current_version"`
	TargetVersion  string   `json:"target_version"`
	Removed        []string `json:"removed"`
	Added          []string `json:"added"`
	ChangedCount   int      `json:"changed_count"`
}

// Compare returns the products present in current but not target (removed),
// present in target but not current (added), and the count of products in
// both whose recipe content differs. It reads the live catalog mapping on
// every call and has no side effects; swapping the arguments swaps removed
// and added.
func (s *VersionService) Compare(ctx context.Context, currentID, targetID string) (*VersionDiff, error) {
	currentRows, err := s.catalog.RecipeRowsForVersion(ctx, currentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVersion, currentID)
		}
		return nil, err
	}
	targetRows, err := s.catalog.RecipeRowsForVersion(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVersion, targetID)
		}
		return nil, err
	}

	current := groupByProduct(currentRows)
	target := groupByProduct(targetRows)

	diff := &VersionDiff{
		CurrentVersion: currentID,
		TargetVersion:  targetID,
		Removed:        []string{},
		Added:          []string{},
	}

	for product, rows := range current {
		targetProductRows, ok := target[product]
		if !ok {
			diff.Removed = append(diff.Removed, product)
			continue
		}
		if !sameRecipe(rows, targetProductRows) {
			diff.ChangedCount++
		}
	}
	for product := range target {
		if _, ok := current[product]; !ok {
			diff.Added = append(diff.Added, product)
		}
	}

	sort.Strings(diff.Removed)
	sort.Strings(diff.Added)
	return diff, nil
}

// groupByProduct keys each product's recipe content by a normalized
// ingredient line, so two versions of a product compare by content
// regardless of row order.
func groupByProduct(rows []model.RecipeRow) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	for _, row := range rows {
		set, ok := out[row.ProductCode]
		if !ok {
			set = make(map[string]struct{})
			out[row.ProductCode] = set
		}
		key := fmt.Sprintf("%s|%s|%g", row.InventoryCode, row.SizeCode, row.Grammage)
		set[key] = struct{}{}
	}
	return out
}

func sameRecipe(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}
