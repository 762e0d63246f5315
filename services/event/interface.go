package event

import (
	"context"

	eventRepo "campushub/database/repository/event"
	"campushub/models"
)

// EventService defines the admin-facing event operations plus the listings
// students browse.
type EventService interface {
	CreateEvent(ctx context.Context, event models.Event) (string, error)
	UpdateEvent(ctx context.Context, eventID string, updates map[string]interface{}) error
	DeleteEvent(ctx context.Context, eventID string) error
	GetEventByID(ctx context.Context, eventID string) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	GetEventsByDepartment(ctx context.Context, department string) ([]models.Event, error)
}

// DefaultEventService is the production implementation.
type DefaultEventService struct {
	Repo eventRepo.EventRepository
}
