package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campushub/middleware"
	"campushub/models"
	"campushub/services/user"
)

// UserHandler exposes the app-level profile surface; accounts themselves
// live in the identity provider.
type UserHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// SaveProfileHandler handles POST /api/users/profile. Called by the client
// after signup/login to mirror the account into the user store.
func (h *UserHandler) SaveProfileHandler(c *gin.Context) {
	var body struct {
		Email      string `json:"email" binding:"required,email"`
		Department string `json:"department"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	uid := c.GetString(middleware.ContextUID)
	err := h.Svc.SaveProfile(c.Request.Context(), models.User{
		UID:        uid,
		Email:      body.Email,
		Department: body.Department,
		Role:       models.RoleStudent,
	})
	if err != nil {
		h.Logger.Error("SaveProfile: failed to save profile", zap.String("userId", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Svc.GetAllUsers(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetAllUsers: failed to fetch users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
