package api

import (
	"net/http"

	authDelivery "bookstore-backend/internal/auth/delivery"
	authUsecase "bookstore-backend/internal/auth/usecase"
	cartDelivery "bookstore-backend/internal/cart/delivery"
	cartUsecase "bookstore-backend/internal/cart/usecase"
	catalogDelivery "bookstore-backend/internal/catalog/delivery"
	catalogUsecase "bookstore-backend/internal/catalog/usecase"
	"bookstore-backend/pkg/config"
	"bookstore-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, cartUc cartUsecase.CartUsecase, catalogUc catalogUsecase.CatalogUsecase, sseManager *sse.Manager, cfg *config.Config) {
	authHandler := authDelivery.NewAuthHandler(authUc, cfg.FrontendURL)
	cartHandler := cartDelivery.NewCartHandler(cartUc, sseManager)
	catalogHandler := catalogDelivery.NewCatalogHandler(catalogUc)

	r.Use(authDelivery.VisitorMiddleware(cfg.VisitorSecret))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
			auth.GET("/google/start", authHandler.GoogleStart)
			auth.GET("/google/callback", authHandler.GoogleCallback)
		}

		// Cart routes
		cart := api.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
			cart.POST("/checkout", cartHandler.Checkout)
			cart.GET("/events", cartHandler.Events)
		}

		// Catalog routes
		catalog := api.Group("/catalog")
		{
			catalog.GET("", catalogHandler.Search)
			catalog.GET("/featured", catalogHandler.Featured)
		}
		api.GET("/books/:id", catalogHandler.GetBook)
	}
}
