package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID   = "auth_user_id"
	ContextUsername = "auth_username"
	ContextRole     = "auth_role"

	tokenTTL = 12 * time.Hour
)

var ErrMissingSecret = errors.New("JWT_SECRET not set")

// SignAccessToken issues an HS256 token carrying the user's id, username and
// role.
func SignAccessToken(user entities.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// AuthRequired validates the Bearer token and loads the claims into the gin
// context under the Context* keys.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "authentication required")
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server configuration error"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid token claims")
			return
		}
		sub, _ := claims["sub"].(string)
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		if sub == "" || !entities.Role(role).Valid() {
			abortUnauthorized(c, "invalid token claims")
			return
		}

		c.Set(ContextUserID, sub)
		c.Set(ContextUsername, username)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireRoles guards an endpoint behind AuthRequired for the given roles.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// ActorFromContext reads the claims AuthRequired stored. Zero value when the
// request is unauthenticated.
func ActorFromContext(c *gin.Context) usecase.Actor {
	return usecase.Actor{
		UserID:   c.GetString(ContextUserID),
		Username: c.GetString(ContextUsername),
		Role:     entities.Role(c.GetString(ContextRole)),
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
