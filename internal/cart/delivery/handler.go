package delivery

import (
	"errors"
	"net/http"

	cartdomain "bookstore-backend/internal/cart/domain"
	cartdto "bookstore-backend/internal/cart/dto"
	"bookstore-backend/internal/cart/usecase"
	"bookstore-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartUsecase usecase.CartUsecase
	sseManager  *sse.Manager
}

func NewCartHandler(cartUsecase usecase.CartUsecase, sseManager *sse.Manager) *CartHandler {
	return &CartHandler{
		cartUsecase: cartUsecase,
		sseManager:  sseManager,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartUsecase.Get(c.GetString("visitorID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartdto.CartResponse{Items: cart})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req cartdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.cartUsecase.AddItem(c.GetString("visitorID"), cartdomain.CartItem{
		ID:    req.ID,
		Name:  req.Name,
		Image: req.Image,
		Price: req.Price,
		Qty:   req.Qty,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartdto.CartResponse{Items: cart})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.cartUsecase.RemoveItem(c.GetString("visitorID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartdto.CartResponse{Items: cart})
}

func (h *CartHandler) Checkout(c *gin.Context) {
	var req cartdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, link, err := h.cartUsecase.Checkout(c.GetString("visitorID"), cartdomain.DeliveryInfo{
		Logradouro:      req.Logradouro,
		Numero:          req.Numero,
		Complemento:     req.Complemento,
		Bairro:          req.Bairro,
		Cidade:          req.Cidade,
		UF:              req.UF,
		CEP:             req.CEP,
		PontoReferencia: req.PontoReferencia,
		CodigoCidade:    req.CodigoCidade,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartdto.CheckoutResponse{Message: message, URL: link})
}

// Events streams cartUpdated notifications for the visitor's other views.
func (h *CartHandler) Events(c *gin.Context) {
	h.sseManager.ServeHTTP(c, c.GetString("visitorID"))
}
