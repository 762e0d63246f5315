package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"campushub/middleware"
	"campushub/models"
	"campushub/services/event"
)

// EventHandler exposes the admin event CRUD surface and the listings
// students browse.
type EventHandler struct {
	Svc    event.EventService
	Logger *zap.Logger
}

func NewEventHandler(svc event.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type eventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Department  string    `json:"department"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	FBLink      string    `json:"fbLink"`
}

// eventView decorates the stored record with the upcoming badge the client
// renders on event cards.
type eventView struct {
	models.Event
	Upcoming bool `json:"upcoming"`
}

// CreateEventHandler handles POST /api/events.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var body eventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Error("CreateEvent: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	id, err := h.Svc.CreateEvent(c.Request.Context(), models.Event{
		Title:       body.Title,
		Description: body.Description,
		Department:  body.Department,
		Date:        body.Date,
		Time:        body.Time,
		Location:    body.Location,
		FBLink:      body.FBLink,
		CreatedBy:   c.GetString(middleware.ContextUID),
	})
	if err != nil {
		if errors.Is(err, event.ErrMissingDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("CreateEvent: failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateEventHandler handles PUT /api/events/:id.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	eventID := c.Param("id")

	var body struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Department  *string    `json:"department"`
		Date        *time.Time `json:"date"`
		Time        *string    `json:"time"`
		Location    *string    `json:"location"`
		FBLink      *string    `json:"fbLink"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Department != nil {
		updates["department"] = *body.Department
	}
	if body.Date != nil {
		updates["date"] = *body.Date
	}
	if body.Time != nil {
		updates["time"] = *body.Time
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}
	if body.FBLink != nil {
		updates["fbLink"] = *body.FBLink
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	if err := h.Svc.UpdateEvent(c.Request.Context(), eventID, updates); err != nil {
		switch {
		case errors.Is(err, event.ErrMissingDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": event.ErrMissingDate.Error()})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		default:
			h.Logger.Error("UpdateEvent: failed to update event", zap.String("eventId", eventID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteEventHandler handles DELETE /api/events/:id. Reminders referencing
// the event are left for the daily cleanup sweep.
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	eventID := c.Param("id")

	if err := h.Svc.DeleteEvent(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		h.Logger.Error("DeleteEvent: failed to delete event", zap.String("eventId", eventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAllEventsHandler handles GET /api/events.
func (h *EventHandler) GetAllEventsHandler(c *gin.Context) {
	events, err := h.Svc.GetAllEvents(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetAllEvents: failed to fetch events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, toEventViews(events))
}

// GetEventsByDepartmentHandler handles GET /api/events/department/:department.
func (h *EventHandler) GetEventsByDepartmentHandler(c *gin.Context) {
	department := c.Param("department")
	events, err := h.Svc.GetEventsByDepartment(c.Request.Context(), department)
	if err != nil {
		h.Logger.Error("GetEventsByDepartment: failed to fetch events",
			zap.String("department", department), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, toEventViews(events))
}

func toEventViews(events []models.Event) []eventView {
	now := time.Now()
	views := make([]eventView, len(events))
	for i, ev := range events {
		views[i] = eventView{Event: ev, Upcoming: event.IsUpcoming(ev.Date, now)}
	}
	return views
}
