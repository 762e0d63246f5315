package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	reminderRepo "campushub/database/repository/reminder"
	"campushub/middleware"
	"campushub/services/reminder"
)

// ReminderHandler exposes the student reminder CRUD surface. All operations
// act on the authenticated caller's own reminders.
type ReminderHandler struct {
	Svc    reminder.ReminderService
	Logger *zap.Logger
}

func NewReminderHandler(svc reminder.ReminderService, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{Svc: svc, Logger: logger}
}

// CreateReminderHandler handles POST /api/reminders.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	var body struct {
		EventID      string `json:"eventId" binding:"required"`
		ReminderTime string `json:"reminderTime"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	uid := c.GetString(middleware.ContextUID)
	id, err := h.Svc.CreateReminder(c.Request.Context(), uid, body.EventID, body.ReminderTime)
	if err != nil {
		if errors.Is(err, reminderRepo.ErrDuplicateReminder) {
			c.JSON(http.StatusConflict, gin.H{"error": "reminder already exists for this event"})
			return
		}
		h.Logger.Error("CreateReminder: failed to create reminder",
			zap.String("userId", uid), zap.String("eventId", body.EventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reminder"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateReminderHandler handles PUT /api/reminders/:id.
func (h *ReminderHandler) UpdateReminderHandler(c *gin.Context) {
	reminderID := c.Param("id")

	var body struct {
		ReminderTime string `json:"reminderTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	uid := c.GetString(middleware.ContextUID)
	if err := h.Svc.UpdateReminder(c.Request.Context(), uid, reminderID, body.ReminderTime); err != nil {
		h.respondMutationError(c, "UpdateReminder", reminderID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteReminderHandler handles DELETE /api/reminders/:id.
func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	reminderID := c.Param("id")
	uid := c.GetString(middleware.ContextUID)

	if err := h.Svc.RemoveReminder(c.Request.Context(), uid, reminderID); err != nil {
		h.respondMutationError(c, "DeleteReminder", reminderID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListRemindersHandler handles GET /api/reminders.
func (h *ReminderHandler) ListRemindersHandler(c *gin.Context) {
	uid := c.GetString(middleware.ContextUID)
	reminders, err := h.Svc.ListByUser(c.Request.Context(), uid)
	if err != nil {
		h.Logger.Error("ListReminders: failed to fetch reminders", zap.String("userId", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reminders"})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func (h *ReminderHandler) respondMutationError(c *gin.Context, op, reminderID string, err error) {
	switch {
	case errors.Is(err, reminder.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "reminder belongs to another user"})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
	default:
		h.Logger.Error(op+": failed", zap.String("reminderId", reminderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reminder operation failed"})
	}
}
