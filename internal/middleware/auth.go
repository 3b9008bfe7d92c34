package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dmoura-dev/barber-booking-api/internal/config"
)

const (
	ContextUserID       = "userID"
	ContextUserName     = "userName"
	ContextAdminID      = "adminID"
	ContextBarbershopID = "barbershopID"
)

func parseToken(c *gin.Context, secret string) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
		return nil, false
	}

	return claims, true
}

// AuthMiddleware valida a sessão de um cliente logado. O ID é opaco: o
// provedor de identidade é externo, aqui só atribuímos a reserva a ele.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, cfg.JWTSecret)
		if !ok {
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		name, _ := claims["name"].(string)

		c.Set(ContextUserID, sub)
		c.Set(ContextUserName, name)

		c.Next()
	}
}

// AdminMiddleware valida o token emitido pelo login administrativo
func AdminMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, cfg.JWTSecret)
		if !ok {
			return
		}

		adminID, ok1 := claims["adminId"].(string)
		barbershopID, ok2 := claims["barbershopId"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Set(ContextBarbershopID, barbershopID)

		c.Next()
	}
}
