package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// NewSQLiteCatalog loads the master-data catalog from a SQLite file. The
// file is opened read-only, read in full, and closed; everything afterwards
// is served from memory.
func NewSQLiteCatalog(dbPath string) (*MemoryCatalog, error) {
	dsn := fmt.Sprintf("%s?mode=ro&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	data, err := loadCatalogData(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from SQLite: %w", err)
	}

	log.Printf("[SQLiteCatalog] Loaded %d recipe rows, %d inventory items, %d versions from %s",
		len(data.recipeRows), len(data.inventory), len(data.versions), dbPath)
	return newMemoryCatalog("sqlite", data), nil
}
