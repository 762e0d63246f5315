package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campushub/models"
)

// ErrMissingDate rejects event creation without a start instant; date is the
// authoritative field all reminder math depends on.
var ErrMissingDate = errors.New("event date is required")

func (s *DefaultEventService) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	if event.Date.IsZero() {
		return "", ErrMissingDate
	}
	if event.Title == "" {
		return "", errors.New("event title is required")
	}

	id, err := s.Repo.Create(ctx, event)
	if err != nil {
		return "", fmt.Errorf("CreateEvent: %w", err)
	}
	return id, nil
}

func (s *DefaultEventService) UpdateEvent(ctx context.Context, eventID string, updates map[string]interface{}) error {
	// A date update must not null out the instant.
	if raw, ok := updates["date"]; ok {
		d, ok := raw.(time.Time)
		if !ok || d.IsZero() {
			return ErrMissingDate
		}
	}
	if err := s.Repo.Update(ctx, eventID, updates); err != nil {
		return fmt.Errorf("UpdateEvent %s: %w", eventID, err)
	}
	return nil
}

func (s *DefaultEventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.Repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("DeleteEvent %s: %w", eventID, err)
	}
	return nil
}

func (s *DefaultEventService) GetEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	return s.Repo.GetByID(ctx, eventID)
}

func (s *DefaultEventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultEventService) GetEventsByDepartment(ctx context.Context, department string) ([]models.Event, error) {
	return s.Repo.GetByDepartment(ctx, department)
}

// IsUpcoming reports whether the event starts today or tomorrow, matching
// the badge the client shows on event cards.
func IsUpcoming(eventDate, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, now.Location())
	diff := day.Sub(today)
	return diff >= 0 && diff <= 24*time.Hour
}
