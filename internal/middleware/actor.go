package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rmacedo/registros-api/internal/models"
)

const actingUserKey = "actingUser"

// envelope mirrors the response wrapper used by the handlers package,
// which this package cannot import without a cycle.
type envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// Claims represents the JWT claims structure
type Claims struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// Actor returns a middleware that resolves the acting user from an
// optional bearer token. Requests without a token proceed anonymously
// (records are then stamped without an actor); a token that is present
// but malformed or expired is rejected.
func Actor(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Message: "formato do header Authorization inválido",
			})
			return
		}

		claims, err := validateToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Message: err.Error(),
			})
			return
		}

		c.Set(actingUserKey, claims.FullName)
		c.Set("userID", claims.UserID)
		c.Next()
	}
}

// validateToken parses and validates a JWT token string
func validateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inválido")
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token expirado")
		}
		return nil, errors.New("token inválido")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token inválido")
	}

	return claims, nil
}

// ActingUser returns the audit actor for the current request.
func ActingUser(c *gin.Context) models.Actor {
	if v, exists := c.Get(actingUserKey); exists {
		if name, ok := v.(string); ok && name != "" {
			return models.NamedActor(name)
		}
	}
	return models.Anonymous()
}

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get("userID")
	if !exists {
		return 0
	}
	return userID.(uint)
}
