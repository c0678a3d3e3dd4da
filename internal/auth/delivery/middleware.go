package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const visitorCookie = "bs_visitor"

// Cookie lives as long as a browser profile would keep local storage.
const visitorCookieMaxAge = 10 * 365 * 24 * 3600

// VisitorMiddleware assigns every request a visitor ID carried in a signed
// cookie. The ID only names the visitor's storage namespace; it makes no
// claim about who the user is and grants nothing beyond the visitor's own
// records.
func VisitorMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := ""
		if raw, err := c.Cookie(visitorCookie); err == nil {
			visitorID, err = parseVisitorToken(raw, secret)
			if err != nil {
				visitorID = ""
			}
		}

		if visitorID == "" {
			visitorID = uuid.New().String()
			token, err := signVisitorToken(visitorID, secret)
			if err != nil {
				log.Printf("[ERROR] failed to sign visitor token: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				return
			}
			c.SetCookie(visitorCookie, token, visitorCookieMaxAge, "/", "", false, true)
		}

		c.Set("visitorID", visitorID)
		c.Next()
	}
}

func signVisitorToken(visitorID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"visitor_id": visitorID,
	})
	return token.SignedString([]byte(secret))
}

func parseVisitorToken(raw, secret string) (string, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid visitor token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	visitorID, ok := claims["visitor_id"].(string)
	if !ok || visitorID == "" {
		return "", errors.New("invalid token claims")
	}
	return visitorID, nil
}
