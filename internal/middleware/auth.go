package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"herotech/internal/model"
	"herotech/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth on success
const (
	ContextClaimsKey = "authClaims"
	ContextEmailKey  = "authEmail"
)

// Auth guards a route with bearer token verification. A request with no
// Authorization header at all gets 401; a present but rejected credential
// gets 403. The header is split on whitespace and the second field is the
// token; a header with no scheme prefix is treated as the token itself and
// left to fail verification on its own.
func Auth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Unauthorized access!", ""))
			return
		}

		token := header
		if fields := strings.Fields(header); len(fields) >= 2 {
			token = fields[1]
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			slog.Debug("bearer token rejected", "reason", err.Error(), "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, model.NewErrorResponse("Unauthorized access!", ""))
			return
		}

		c.Set(ContextClaimsKey, claims)
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextEmailKey, email)
		}
		c.Next()
	}
}
