package repository

import (
	"context"
	"database/sql"
	"fmt"

	"recipehub-admin-api/internal/model"
)

// loadCatalogData reads the full master-data set out of a SQL database. All
// queries are plain parameterless SELECTs, so the loader is shared by the
// SQLite, PostgreSQL and MySQL backends. The catalog is read exactly once at
// process start; the connection is closed right after loading.
func loadCatalogData(ctx context.Context, db *sql.DB) (catalogData, error) {
	var data catalogData
	data.versionStores = make(map[string][]model.Store)

	rows, err := db.QueryContext(ctx, `SELECT product_code, product_description, version_id, inventory_code, size_code, grammage FROM recipe_rows`)
	if err != nil {
		return data, fmt.Errorf("failed to load recipe rows: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var row model.RecipeRow
		if err := rows.Scan(&row.ProductCode, &row.ProductDescription, &row.VersionID, &row.InventoryCode, &row.SizeCode, &row.Grammage); err != nil {
			return data, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		data.recipeRows = append(data.recipeRows, row)
	}
	if err := rows.Err(); err != nil {
		return data, err
	}

	scRows, err := db.QueryContext(ctx, `SELECT code, description FROM size_codes`)
	if err != nil {
		return data, fmt.Errorf("failed to load size codes: %w", err)
	}
	defer scRows.Close()
	for scRows.Next() {
		var sc model.SizeCode
		if err := scRows.Scan(&sc.Code, &sc.Description); err != nil {
			return data, fmt.Errorf("failed to scan size code: %w", err)
		}
		data.sizeCodes = append(data.sizeCodes, sc)
	}
	if err := scRows.Err(); err != nil {
		return data, err
	}

	invRows, err := db.QueryContext(ctx, `SELECT code, description, unit_of_measure, category FROM inventory_items`)
	if err != nil {
		return data, fmt.Errorf("failed to load inventory items: %w", err)
	}
	defer invRows.Close()
	for invRows.Next() {
		var item model.InventoryItem
		if err := invRows.Scan(&item.Code, &item.Description, &item.UnitOfMeasure, &item.Category); err != nil {
			return data, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		data.inventory = append(data.inventory, item)
	}
	if err := invRows.Err(); err != nil {
		return data, err
	}

	topRows, err := db.QueryContext(ctx, `SELECT code, description, size_code, grammage FROM extra_toppings`)
	if err != nil {
		return data, fmt.Errorf("failed to load extra toppings: %w", err)
	}
	defer topRows.Close()
	for topRows.Next() {
		var t model.ExtraTopping
		if err := topRows.Scan(&t.Code, &t.Description, &t.SizeCode, &t.Grammage); err != nil {
			return data, fmt.Errorf("failed to scan extra topping: %w", err)
		}
		data.toppings = append(data.toppings, t)
	}
	if err := topRows.Err(); err != nil {
		return data, err
	}

	verRows, err := db.QueryContext(ctx, `SELECT version_id, description FROM versions`)
	if err != nil {
		return data, fmt.Errorf("failed to load versions: %w", err)
	}
	defer verRows.Close()
	for verRows.Next() {
		var v model.Version
		if err := verRows.Scan(&v.ID, &v.Description); err != nil {
			return data, fmt.Errorf("failed to scan version: %w", err)
		}
		data.versions = append(data.versions, v)
	}
	if err := verRows.Err(); err != nil {
		return data, err
	}

	storeRows, err := db.QueryContext(ctx, `SELECT store_id, city, locality, version_id FROM stores`)
	if err != nil {
		return data, fmt.Errorf("failed to load stores: %w", err)
	}
	defer storeRows.Close()
	for storeRows.Next() {
		var s model.Store
		var versionID string
		if err := storeRows.Scan(&s.ID, &s.City, &s.Locality, &versionID); err != nil {
			return data, fmt.Errorf("failed to scan store: %w", err)
		}
		data.versionStores[versionID] = append(data.versionStores[versionID], s)
	}
	if err := storeRows.Err(); err != nil {
		return data, err
	}

	return data, nil
}
