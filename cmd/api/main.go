package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"recipehub-admin-api/internal/config"
	"recipehub-admin-api/internal/handler"
	"recipehub-admin-api/internal/repository"
	"recipehub-admin-api/internal/router"
	"recipehub-admin-api/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting RecipeHub Admin API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize catalog repository based on config
	var catalogRepo repository.CatalogRepository
	switch cfg.Catalog.Source {
	case "sqlite":
		sqliteCatalog, err := repository.NewSQLiteCatalog(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("Failed to load SQLite catalog: %v", err)
		}
		catalogRepo = sqliteCatalog
		log.Println("SQLite catalog loaded")
	case "postgres", "postgresql":
		pgCatalog, err := repository.NewPostgresCatalog(cfg.Catalog.PostgresDSN())
		if err != nil {
			log.Fatalf("Failed to load PostgreSQL catalog: %v", err)
		}
		catalogRepo = pgCatalog
		log.Println("PostgreSQL catalog loaded")
	case "mysql":
		myCatalog, err := repository.NewMySQLCatalog(cfg.Catalog.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to load MySQL catalog: %v", err)
		}
		catalogRepo = myCatalog
		log.Println("MySQL catalog loaded")
	default: // fixture
		catalogRepo = repository.NewFixtureCatalog(cfg.Catalog.StoreSeed)
		log.Println("Fixture catalog loaded")
	}

	// The request table is a single in-process collection; identifier
	// allocation and insert share one critical section inside it.
	requestRepo := repository.NewMemoryRequestRepository()

	// Initialize services
	requestService := service.NewRequestService(requestRepo, catalogRepo)
	versionService := service.NewVersionService(catalogRepo)

	// Initialize handlers
	healthHandler := handler.New()
	requestHandler := handler.NewRequestHandler(requestService, cfg.Requests.PageSize)
	catalogHandler := handler.NewCatalogHandler(catalogRepo)
	versionHandler := handler.NewVersionHandler(versionService, catalogRepo)
	adminHandler := handler.NewAdminHandler(requestService, catalogRepo.SourceType())

	// Create router
	r := router.New(router.Config{
		Handler:        healthHandler,
		RequestHandler: requestHandler,
		CatalogHandler: catalogHandler,
		VersionHandler: versionHandler,
		AdminHandler:   adminHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
