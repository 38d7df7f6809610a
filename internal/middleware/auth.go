package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sportsinventory/internal/pkg/jwt"
	"sportsinventory/internal/pkg/logger"
	"sportsinventory/internal/pkg/response"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// JWTAuth requires a valid bearer token and stores the operator and role
// in the gin context.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("operator", claims.Subject)
		c.Set("role", claims.Role)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx).WithField("operator", claims.Subject)
		c.Request = c.Request.WithContext(logger.ToContext(ctx, log))

		c.Next()
	}
}
