package model

// RecipeRow is one ingredient line of a product's recipe within a version.
// References to inventory and size codes are by value; lookups resolve them
// against the catalog, nothing owns anything across entities.
type RecipeRow struct {
	ProductCode        string  `json:"product_code"`
	ProductDescription string  `json:"product_description"`
	VersionID          string  `json:"version_id"`
	InventoryCode      string  `json:"inventory_code"`
	SizeCode           string  `json:"size_code"`
	Grammage           float64 `json:"grammage"`
}

// SizeCode is a named product size (e.g. regular, medium, large crusts).
type SizeCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// InventoryItem is a stocked ingredient referenced by recipe rows.
type InventoryItem struct {
	Code          string `json:"code"`
	Description   string `json:"description"`
	UnitOfMeasure string `json:"unit_of_measure"`
	Category      string `json:"category"`
}

// ExtraTopping is an add-on topping with its per-size grammage.
type ExtraTopping struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	SizeCode    string  `json:"size_code"`
	Grammage    float64 `json:"grammage"`
}

// Store is a deployment target for a recipe version.
type Store struct {
	ID       string `json:"store_id"`
	City     string `json:"city"`
	Locality string `json:"locality"`
}

// Version is a named snapshot of product recipes mapped to a store set.
type Version struct {
	ID          string `json:"version_id"`
	Description string `json:"description"`
}
