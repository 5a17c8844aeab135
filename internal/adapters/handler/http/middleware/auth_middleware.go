package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
	ContextUserIDKey    = "userID"
)

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// bearerToken extracts the token from "Bearer <token>". The scheme is case
// sensitive and the token must be non-empty.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || scheme != bearerScheme {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthMiddleware rejects requests without a valid token for an existing user
// and stores the user's id in the gin context.
func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			unauthorized(c, "authorization header required")
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			unauthorized(c, "invalid authorization header format")
			return
		}

		userID, err := tokenService.ValidateToken(token)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user stored by AuthMiddleware.
func GetUserID(c *gin.Context) (domain.ID, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(domain.ID)
	if !ok || id.IsZero() {
		return "", false
	}
	return id, true
}
