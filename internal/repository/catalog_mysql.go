package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// NewMySQLCatalog loads the master-data catalog from MySQL, for deployments
// where the chain's master data lives in its MySQL instance.
// dsn format: "user:password@tcp(host:port)/dbname?parseTime=true"
// The connection is used for the one-shot load and then closed.
func NewMySQLCatalog(dsn string) (*MemoryCatalog, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	data, err := loadCatalogData(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from MySQL: %w", err)
	}

	log.Printf("[MySQLCatalog] Loaded %d recipe rows, %d inventory items, %d versions",
		len(data.recipeRows), len(data.inventory), len(data.versions))
	return newMemoryCatalog("mysql", data), nil
}
