package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/pkg/auth"
)

// AuthMiddleware validates the bearer token and rejects blacklisted tokens.
// On success the user's identity from the claims is stored on the context.
func AuthMiddleware(jwtManager *auth.JWTManager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "authorization header required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "invalid authorization header format",
			})
			return
		}
		tokenString := parts[1]

		// Logged-out tokens are blacklisted until expiry
		exists, err := rdb.Exists(context.Background(), "blacklist:"+tokenString).Result()
		if err == nil && exists > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "token has been revoked",
			})
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "invalid or expired token",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("archetype", claims.Archetype)
		c.Set("token", tokenString)
		c.Next()
	}
}
