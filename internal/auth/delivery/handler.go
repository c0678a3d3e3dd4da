package delivery

import (
	"errors"
	"log"
	"net/http"

	authdto "bookstore-backend/internal/auth/dto"
	"bookstore-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	frontendURL string
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		frontendURL: frontendURL,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authUsecase.Register(c.GetString("visitorID"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, authdto.SessionResponse{User: session})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authUsecase.Login(c.GetString("visitorID"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, authdto.SessionResponse{User: session})
}

// Me returns the active session; a null user means anonymous.
func (h *AuthHandler) Me(c *gin.Context) {
	session, err := h.authUsecase.Me(c.GetString("visitorID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, authdto.SessionResponse{User: session})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.GetString("visitorID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GoogleStart begins the Authorization Code + PKCE flow by redirecting the
// browser to the authorization endpoint.
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	authURL, err := h.authUsecase.StartGoogleLogin(c.GetString("visitorID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback finishes the flow. Success and failure both land back on
// the storefront; failures are logged, never retried.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	_, err := h.authUsecase.CompleteGoogleLogin(
		c.Request.Context(),
		c.GetString("visitorID"),
		c.Query("code"),
		c.Query("state"),
	)
	if err != nil {
		log.Printf("[WARN] google callback failed: %v", err)
	}
	c.Redirect(http.StatusFound, h.frontendURL)
}
