package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	FrontendURL string

	// Visitor cookie signing
	VisitorSecret string

	// Google OAuth2 (Authorization Code + PKCE)
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	GoogleAuthURL      string
	GoogleTokenURL     string
	GoogleUserinfoURL  string

	// Catalog providers
	OpenLibraryBaseURL string
	OpenLibraryCovers  string
	GoogleBooksBaseURL string
	PlaceholderImage   string
	CatalogPageSize    int
	DefaultSearchQuery string
	FeaturedQuery      string

	// Checkout hand-off
	WhatsAppPhone string
	WhatsAppHost  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	pageSize := 20
	if v := os.Getenv("CATALOG_PAGE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		VisitorSecret:      getEnv("VISITOR_SECRET", "change-me-in-production"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:8080/api/auth/google/callback"),
		GoogleAuthURL:      getEnv("GOOGLE_AUTH_URL", ""),
		GoogleTokenURL:     getEnv("GOOGLE_TOKEN_URL", ""),
		GoogleUserinfoURL:  getEnv("GOOGLE_USERINFO_URL", ""),
		OpenLibraryBaseURL: getEnv("OPENLIBRARY_BASE_URL", "https://openlibrary.org"),
		OpenLibraryCovers:  getEnv("OPENLIBRARY_COVERS_URL", "https://covers.openlibrary.org"),
		GoogleBooksBaseURL: getEnv("GOOGLE_BOOKS_BASE_URL", ""),
		PlaceholderImage:   getEnv("PLACEHOLDER_IMAGE", "/placeholder.svg"),
		CatalogPageSize:    pageSize,
		DefaultSearchQuery: getEnv("DEFAULT_SEARCH_QUERY", "Programação"),
		FeaturedQuery:      getEnv("FEATURED_QUERY", "Batman"),
		WhatsAppPhone:      getEnv("WHATSAPP_PHONE", "55048999331865"),
		WhatsAppHost:       getEnv("WHATSAPP_HOST", "https://wa.me"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
