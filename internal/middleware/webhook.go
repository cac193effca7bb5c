package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taruapp/api-taru/internal/model"
)

// WebhookAuthMiddleware authenticates webhook callers via the shared secret
// in the x-webhook-secret header. Requests with a missing or wrong secret
// are rejected before any body processing.
func WebhookAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("x-webhook-secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "invalid webhook secret",
			})
			return
		}
		c.Next()
	}
}
