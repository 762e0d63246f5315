package middleware

import (
	"net/http"

	"campushub/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates event mutations to administrators.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin privileges required",
			})
			return
		}
		c.Next()
	}
}
