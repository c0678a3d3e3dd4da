package main

import (
	"context"
	"log"

	api "bookstore-backend/cmd/api"
	authRepo "bookstore-backend/internal/auth/repository"
	authUsecase "bookstore-backend/internal/auth/usecase"
	cartRepo "bookstore-backend/internal/cart/repository"
	cartUsecase "bookstore-backend/internal/cart/usecase"
	catalogUsecase "bookstore-backend/internal/catalog/usecase"
	"bookstore-backend/internal/storage"
	"bookstore-backend/pkg/config"
	"bookstore-backend/pkg/database"
	"bookstore-backend/pkg/googlebooks"
	"bookstore-backend/pkg/openlibrary"
	"bookstore-backend/pkg/sse"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize storage
	var store storage.Store
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := db.AutoMigrate(&storage.Record{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		store = storage.NewGormStore(db)
	} else {
		log.Printf("[WARN] DATABASE_URL not configured, using in-memory storage")
		store = storage.NewMemoryStore()
	}

	// Initialize SSE Manager
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Initialize provider clients
	openLibraryClient := openlibrary.NewClient(cfg.OpenLibraryBaseURL, cfg.OpenLibraryCovers, cfg.PlaceholderImage)
	googleBooksClient, err := googlebooks.NewClient(context.Background(), cfg.GoogleBooksBaseURL, cfg.PlaceholderImage)
	if err != nil {
		log.Fatal("Failed to initialize Google Books client:", err)
	}

	// Initialize repositories (dependency injection)
	userDirectory := authRepo.NewUserDirectoryRepository(store)
	sessionRepository := authRepo.NewSessionRepository(store)
	pkceRepository := authRepo.NewPKCERepository(store)
	cartRepository := cartRepo.NewCartRepository(store)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userDirectory, sessionRepository, pkceRepository, cfg)
	cartUsecaseInstance := cartUsecase.NewCartUsecase(cartRepository, sseManager, cfg.WhatsAppHost, cfg.WhatsAppPhone)
	catalogUsecaseInstance := catalogUsecase.NewCatalogUsecase(openLibraryClient, googleBooksClient, cfg.CatalogPageSize, cfg.DefaultSearchQuery, cfg.FeaturedQuery)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, cartUsecaseInstance, catalogUsecaseInstance, sseManager, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
