package api

import (
	"net/http"

	authUsecase "bookstore-backend/internal/auth/usecase"
	cartUsecase "bookstore-backend/internal/cart/usecase"
	catalogUsecase "bookstore-backend/internal/catalog/usecase"
	"bookstore-backend/pkg/config"
	"bookstore-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	cartUsecase    cartUsecase.CartUsecase
	catalogUsecase catalogUsecase.CatalogUsecase
	sseManager     *sse.Manager
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, cartUc cartUsecase.CartUsecase, catalogUc catalogUsecase.CatalogUsecase, sseManager *sse.Manager, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		cartUsecase:    cartUc,
		catalogUsecase: catalogUc,
		sseManager:     sseManager,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.cartUsecase, h.catalogUsecase, h.sseManager, h.config)

	return r.Run(addr)
}
