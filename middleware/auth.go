package middleware

import (
	"strings"

	"faq-assistant/helper"
	"faq-assistant/services"

	"github.com/gin-gonic/gin"
)

// TokenValidator parses a bearer token into its claims.
type TokenValidator interface {
	Validate(token string) (*services.Claims, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller identity on the context.
func AuthMiddleware(tokens TokenValidator, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			h.SendUnauthorizedError(c, "Authorization header required", h.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			h.SendUnauthorizedError(c, "Bearer token required", h.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(tokenString))
		if err != nil {
			h.SendUnauthorizedError(c, "Invalid token: "+err.Error(), h.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set(helper.ContextUserID, claims.UserID)
		c.Set(helper.ContextUsername, claims.Username)

		c.Next()
	}
}
