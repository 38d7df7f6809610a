package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"sportsinventory/internal/pkg/jwt"
	"sportsinventory/internal/pkg/response"
)

// RequireRole ensures that the authenticated operator has one of the roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !slices.Contains(roles, role) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(jwt.RoleAdmin)
}

// StaffOnly admits clerks and admins.
func StaffOnly() gin.HandlerFunc {
	return RequireRole(jwt.RoleClerk, jwt.RoleAdmin)
}
