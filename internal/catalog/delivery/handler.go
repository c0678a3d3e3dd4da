package delivery

import (
	"log"
	"net/http"
	"strconv"

	catalogdomain "bookstore-backend/internal/catalog/domain"
	catalogdto "bookstore-backend/internal/catalog/dto"
	"bookstore-backend/internal/catalog/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// Search proxies the listing page. Provider failures degrade to an empty
// listing with a single page instead of an error response.
func (h *CatalogHandler) Search(c *gin.Context) {
	page := 1
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed > 0 {
		page = parsed
	}

	sortMode := c.DefaultQuery("sort", catalogdomain.SortRelevance)

	result, err := h.catalogUsecase.Search(c.Request.Context(), c.Query("q"), page, sortMode)
	if err != nil {
		log.Printf("[WARN] catalog search failed: %v", err)
		c.JSON(http.StatusOK, catalogdto.SearchResponse{
			Products:   []catalogdomain.Product{},
			Total:      0,
			Page:       page,
			TotalPages: 1,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) Featured(c *gin.Context) {
	products, err := h.catalogUsecase.Featured(c.Request.Context())
	if err != nil {
		log.Printf("[WARN] featured lookup failed: %v", err)
		products = []catalogdomain.Product{}
	}
	c.JSON(http.StatusOK, catalogdto.FeaturedResponse{Products: products})
}

func (h *CatalogHandler) GetBook(c *gin.Context) {
	result, err := h.catalogUsecase.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[WARN] book lookup failed: %v", err)
		c.JSON(http.StatusOK, catalogdto.BookResponse{Book: nil, Related: []catalogdomain.Product{}})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}
