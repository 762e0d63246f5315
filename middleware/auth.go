package middleware

import (
	"net/http"
	"strings"

	"campushub/services/user"
	"campushub/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by FirebaseAuthMiddleware.
const (
	ContextUID  = "uid"
	ContextRole = "role"
)

// FirebaseAuthMiddleware verifies the Firebase ID token in the
// Authorization header and resolves the caller's role from the user store.
// Authentication itself lives entirely in the identity provider; requests
// are rejected before any side effect when the token is missing or invalid.
func FirebaseAuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUID, token.UID)
		c.Set(ContextRole, userSvc.GetRole(c.Request.Context(), token.UID))
		c.Next()
	}
}
