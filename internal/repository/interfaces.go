package repository

import (
	"context"
	"errors"

	"recipehub-admin-api/internal/model"
)

// ErrNotFound is returned by lookups with no matching record.
var ErrNotFound = errors.New("not found")

// RequestRepository owns the process-wide request table. Implementations
// must preserve insertion order for List and must assign identifiers and
// insert atomically so two concurrent submissions can never share an ID.
type RequestRepository interface {
	// Submit assigns the next free identifier to req, inserts it, and
	// returns the stored record. ID allocation and insert happen inside a
	// single critical section.
	Submit(ctx context.Context, req *model.Request) (*model.Request, error)

	// Get returns a copy of the request with the given identifier.
	Get(ctx context.Context, id string) (*model.Request, error)

	// List returns copies of all requests in insertion order.
	List(ctx context.Context) ([]model.Request, error)

	// Transition applies mutate to the stored request under the write lock
	// and returns the updated copy. When mutate returns an error the stored
	// request is left unchanged.
	Transition(ctx context.Context, id string, mutate func(*model.Request) error) (*model.Request, error)

	// CountByState returns the number of requests per workflow state.
	CountByState(ctx context.Context) (map[model.State]int, error)
}

// CatalogRepository is the read-only master-data provider. Backends load the
// catalog once at process start; every method serves from immutable
// in-memory data, so none of them require locking. Search results are
// recomputed on every call, never cached.
type CatalogRepository interface {
	FindInventoryItem(ctx context.Context, code string) (*model.InventoryItem, error)
	FindSizeCode(ctx context.Context, code string) (*model.SizeCode, error)
	FindExtraTopping(ctx context.Context, code string) (*model.ExtraTopping, error)

	// FindRecipeRows returns every recipe row for the exact product code,
	// across all versions it appears in.
	FindRecipeRows(ctx context.Context, productCode string) ([]model.RecipeRow, error)

	SearchInventoryItems(ctx context.Context, term string) ([]model.InventoryItem, error)
	SearchSizeCodes(ctx context.Context, term string) ([]model.SizeCode, error)
	SearchExtraToppings(ctx context.Context, term string) ([]model.ExtraTopping, error)
	SearchRecipeRows(ctx context.Context, term string) ([]model.RecipeRow, error)

	// Versions returns all known recipe versions.
	Versions(ctx context.Context) ([]model.Version, error)

	// HasVersion reports whether the version exists in the catalog.
	HasVersion(ctx context.Context, versionID string) (bool, error)

	// RecipeRowsForVersion returns every recipe row belonging to a version.
	RecipeRowsForVersion(ctx context.Context, versionID string) ([]model.RecipeRow, error)

	// StoresForVersion returns the store set a version is deployed to.
	StoresForVersion(ctx context.Context, versionID string) ([]model.Store, error)

	// SourceType names the backend the catalog was loaded from.
	SourceType() string
}
