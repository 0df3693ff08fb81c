package repository

import (
	"fmt"
	"log"
	"math/rand"

	"recipehub-admin-api/internal/model"
)

// NewFixtureCatalog builds the built-in master-data catalog. This is the
// default catalog source: a fixed set of recipes, size codes, inventory
// items and toppings, plus a store population generated from storeSeed so
// the same seed always yields the same store-to-version assignment.
func NewFixtureCatalog(storeSeed int64) *MemoryCatalog {
	data := fixtureData()
	data.versionStores = generateStores(storeSeed, data.versions)

	total := 0
	for _, stores := range data.versionStores {
		total += len(stores)
	}
	log.Printf("[FixtureCatalog] Loaded %d recipe rows, %d inventory items, %d stores (seed=%d)",
		len(data.recipeRows), len(data.inventory), total, storeSeed)

	return newMemoryCatalog("fixture", data)
}

func fixtureData() catalogData {
	return catalogData{
		sizeCodes: []model.SizeCode{
			{Code: "REG", Description: "Regular 7 inch hand tossed"},
			{Code: "MED", Description: "Medium 10 inch hand tossed"},
			{Code: "LRG", Description: "Large 13 inch hand tossed"},
			{Code: "THN", Description: "Thin crust 10 inch"},
		},
		inventory: []model.InventoryItem{
			{Code: "ITM001", Description: "Mozzarella cheese block", UnitOfMeasure: "GM", Category: "Dairy"},
			{Code: "ITM002", Description: "Pizza sauce classic", UnitOfMeasure: "GM", Category: "Sauce"},
			{Code: "ITM003", Description: "Dough ball regular", UnitOfMeasure: "EA", Category: "Dough"},
			{Code: "ITM004", Description: "Pepperoni slices", UnitOfMeasure: "GM", Category: "Meat"},
			{Code: "ITM005", Description: "Onion diced", UnitOfMeasure: "GM", Category: "Vegetable"},
			{Code: "ITM006", Description: "Capsicum diced", UnitOfMeasure: "GM", Category: "Vegetable"},
			{Code: "ITM007", Description: "Paneer cubes", UnitOfMeasure: "GM", Category: "Dairy"},
			{Code: "ITM008", Description: "Oregano seasoning sachet", UnitOfMeasure: "EA", Category: "Seasoning"},
		},
		toppings: []model.ExtraTopping{
			{Code: "TOP001", Description: "Extra cheese", SizeCode: "REG", Grammage: 40},
			{Code: "TOP001", Description: "Extra cheese", SizeCode: "MED", Grammage: 60},
			{Code: "TOP001", Description: "Extra cheese", SizeCode: "LRG", Grammage: 90},
			{Code: "TOP002", Description: "Extra pepperoni", SizeCode: "MED", Grammage: 35},
			{Code: "TOP003", Description: "Extra paneer", SizeCode: "MED", Grammage: 50},
		},
		versions: []model.Version{
			{ID: "v4", Description: "Baseline menu"},
			{ID: "v5", Description: "Cheese grammage rationalization"},
			{ID: "v6", Description: "New year menu refresh"},
		},
		recipeRows: []model.RecipeRow{
			// v4: baseline, two products
			{ProductCode: "PZ001", ProductDescription: "Margherita", VersionID: "v4", InventoryCode: "ITM003", SizeCode: "REG", Grammage: 1},
			{ProductCode: "PZ001", ProductDescription: "Margherita", VersionID: "v4", InventoryCode: "ITM001", SizeCode: "REG", Grammage: 70},
			{ProductCode: "PZ001", ProductDescription: "Margherita", VersionID: "v4", InventoryCode: "ITM002", SizeCode: "REG", Grammage: 45},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v4", InventoryCode: "ITM003", SizeCode: "MED", Grammage: 1},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v4", InventoryCode: "ITM001", SizeCode: "MED", Grammage: 80},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v4", InventoryCode: "ITM005", SizeCode: "MED", Grammage: 30},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v4", InventoryCode: "ITM006", SizeCode: "MED", Grammage: 30},

			// v5: adds Pepperoni, trims Margherita cheese
			{ProductCode: "PZ001", ProductDescription: "Margherita", VersionID: "v5", InventoryCode: "ITM003", SizeCode: "REG", Grammage: 1},
			{ProductCode: "PZ001", ProductDescription: "Margherita", VersionID: "v5", InventoryCode: "ITM001", SizeCode: "REG", Grammage: 65},
			{ProductCode: "PZ001", ProductDescription: "Margherita", VersionID: "v5", InventoryCode: "ITM002", SizeCode: "REG", Grammage: 45},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v5", InventoryCode: "ITM003", SizeCode: "MED", Grammage: 1},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v5", InventoryCode: "ITM001", SizeCode: "MED", Grammage: 80},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v5", InventoryCode: "ITM005", SizeCode: "MED", Grammage: 30},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v5", InventoryCode: "ITM006", SizeCode: "MED", Grammage: 30},
			{ProductCode: "PZ003", ProductDescription: "Pepperoni", VersionID: "v5", InventoryCode: "ITM003", SizeCode: "MED", Grammage: 1},
			{ProductCode: "PZ003", ProductDescription: "Pepperoni", VersionID: "v5", InventoryCode: "ITM001", SizeCode: "MED", Grammage: 75},
			{ProductCode: "PZ003", ProductDescription: "Pepperoni", VersionID: "v5", InventoryCode: "ITM004", SizeCode: "MED", Grammage: 55},

			// v6: drops Margherita, adds Peppy Paneer, bumps Pepperoni meat
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v6", InventoryCode: "ITM003", SizeCode: "MED", Grammage: 1},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v6", InventoryCode: "ITM001", SizeCode: "MED", Grammage: 80},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v6", InventoryCode: "ITM005", SizeCode: "MED", Grammage: 30},
			{ProductCode: "PZ002", ProductDescription: "Farmhouse", VersionID: "v6", InventoryCode: "ITM006", SizeCode: "MED", Grammage: 30},
			{ProductCode: "PZ003", ProductDescription: "Pepperoni", VersionID: "v6", InventoryCode: "ITM003", SizeCode: "MED", Grammage: 1},
			{ProductCode: "PZ003", ProductDescription: "Pepperoni", VersionID: "v6", InventoryCode: "ITM001", SizeCode: "MED", Grammage: 75},
			{ProductCode: "PZ003", ProductDescription: "Pepperoni", VersionID: "v6", InventoryCode: "ITM004", SizeCode: "MED", Grammage: 65},
			{ProductCode: "PZ004", ProductDescription: "Peppy Paneer", VersionID: "v6", InventoryCode: "ITM003", SizeCode: "MED", Grammage: 1},
			{ProductCode: "PZ004", ProductDescription: "Peppy Paneer", VersionID: "v6", InventoryCode: "ITM001", SizeCode: "MED", Grammage: 70},
			{ProductCode: "PZ004", ProductDescription: "Peppy Paneer", VersionID: "v6", InventoryCode: "ITM007", SizeCode: "MED", Grammage: 60},
		},
	}
}

var storeCities = []struct {
	city       string
	localities []string
}{
	{"Bengaluru", []string{"Koramangala", "Indiranagar", "Whitefield", "Jayanagar"}},
	{"Mumbai", []string{"Andheri", "Bandra", "Powai", "Dadar"}},
	{"Delhi", []string{"Saket", "Dwarka", "Rohini", "Karol Bagh"}},
	{"Hyderabad", []string{"Gachibowli", "Banjara Hills", "Kukatpally"}},
	{"Pune", []string{"Kothrud", "Viman Nagar", "Hinjewadi"}},
}

// generateStores produces a deterministic store population and assigns each
// store to one version. The same seed always yields the same assignment.
func generateStores(seed int64, versions []model.Version) map[string][]model.Store {
	rng := rand.New(rand.NewSource(seed))
	out := make(map[string][]model.Store, len(versions))
	if len(versions) == 0 {
		return out
	}

	const storeCount = 42
	for i := 0; i < storeCount; i++ {
		c := storeCities[rng.Intn(len(storeCities))]
		store := model.Store{
			ID:       fmt.Sprintf("ST%03d", i+1),
			City:     c.city,
			Locality: c.localities[rng.Intn(len(c.localities))],
		}
		v := versions[rng.Intn(len(versions))].ID
		out[v] = append(out[v], store)
	}
	return out
}
