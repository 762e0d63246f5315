package reminder

import (
	"context"
	"time"

	eventRepo "campushub/database/repository/event"
	reminderRepo "campushub/database/repository/reminder"
	userRepo "campushub/database/repository/user"
	"campushub/models"
	"campushub/services/notification"
)

// dispatchWindow is the matching tolerance around a reminder's target fire
// time; it equals the scheduler's polling cadence.
const dispatchWindow = time.Minute

// nowFunc is swapped in tests for deterministic time.
var nowFunc = time.Now

// ReminderService defines the student-facing reminder operations. The
// scheduled dispatch and cleanup cycles live on the same implementation but
// are invoked by the worker, not the HTTP surface.
type ReminderService interface {
	CreateReminder(ctx context.Context, userID, eventID, reminderTime string) (string, error)
	UpdateReminder(ctx context.Context, userID, reminderID, reminderTime string) error
	RemoveReminder(ctx context.Context, userID, reminderID string) error
	ListByUser(ctx context.Context, userID string) ([]models.Reminder, error)
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo     reminderRepo.ReminderRepository
	Events   eventRepo.EventRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
	Marker   DispatchMarker
}
