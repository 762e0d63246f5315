package reminder

import (
	"context"
	"errors"
	"fmt"

	"campushub/models"
)

// ErrNotOwner rejects mutations on a reminder the caller does not own.
var ErrNotOwner = errors.New("reminder belongs to another user")

// defaultOffset matches the client's dropdown default.
const defaultOffset = "1 day"

// CreateReminder stores a reminder for the caller. The offset string is
// accepted verbatim: an unrecognized value still dispatches, with the
// documented 60-minute fallback. The event reference is soft; the cleanup
// sweep reaps reminders whose event disappears.
func (s *DefaultReminderService) CreateReminder(ctx context.Context, userID, eventID, reminderTime string) (string, error) {
	if eventID == "" {
		return "", errors.New("event id is required")
	}
	if reminderTime == "" {
		reminderTime = defaultOffset
	}

	id, err := s.Repo.Create(ctx, models.Reminder{
		UserID:       userID,
		EventID:      eventID,
		ReminderTime: reminderTime,
	})
	if err != nil {
		return "", fmt.Errorf("CreateReminder for user %s event %s: %w", userID, eventID, err)
	}
	return id, nil
}

func (s *DefaultReminderService) UpdateReminder(ctx context.Context, userID, reminderID, reminderTime string) error {
	rem, err := s.Repo.GetByID(ctx, reminderID)
	if err != nil {
		return fmt.Errorf("UpdateReminder %s: %w", reminderID, err)
	}
	if rem.UserID != userID {
		return ErrNotOwner
	}
	if reminderTime == "" {
		reminderTime = defaultOffset
	}
	if err := s.Repo.UpdateOffset(ctx, reminderID, reminderTime); err != nil {
		return fmt.Errorf("UpdateReminder %s: %w", reminderID, err)
	}
	return nil
}

func (s *DefaultReminderService) RemoveReminder(ctx context.Context, userID, reminderID string) error {
	rem, err := s.Repo.GetByID(ctx, reminderID)
	if err != nil {
		return fmt.Errorf("RemoveReminder %s: %w", reminderID, err)
	}
	if rem.UserID != userID {
		return ErrNotOwner
	}
	if err := s.Repo.Delete(ctx, reminderID); err != nil {
		return fmt.Errorf("RemoveReminder %s: %w", reminderID, err)
	}
	return nil
}

func (s *DefaultReminderService) ListByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	return s.Repo.GetByUser(ctx, userID)
}
