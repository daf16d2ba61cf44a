package middleware

import (
	"net/http"
	"strings"

	"github.com/booklyhq/support-be/utils"
	"github.com/gin-gonic/gin"
)

const adminContextKey = "admin"

// AdminAuth guards the mutating admin routes with a bearer JWT.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header is required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := utils.ParseAdminToken(parts[1], secret)
		if err != nil || claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid admin token",
			})
			return
		}

		c.Set(adminContextKey, claims)
		c.Next()
	}
}
