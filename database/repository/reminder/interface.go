package reminderRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"campushub/database"
	"campushub/models"
)

// ErrDuplicateReminder is returned when a (userId, eventId) pair already has
// a reminder on file. Uniqueness is enforced by a compound index so a race
// between two clients cannot slip a duplicate past the pre-check.
var ErrDuplicateReminder = errors.New("reminder already exists for this user and event")

// ReminderRepository is the reminder store.
type ReminderRepository interface {
	Create(ctx context.Context, reminder models.Reminder) (string, error)
	UpdateOffset(ctx context.Context, reminderID, reminderTime string) error
	Delete(ctx context.Context, reminderID string) error
	GetByID(ctx context.Context, reminderID string) (*models.Reminder, error)
	GetByUser(ctx context.Context, userID string) ([]models.Reminder, error)
	GetAll(ctx context.Context) ([]models.Reminder, error)
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo constructs a new MongoDB ReminderRepository.
func NewMongoReminderRepo() ReminderRepository {
	repo := &mongoReminderRepo{
		coll: database.DB().Collection("reminders"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create reminder indexes: %v\n", err)
	}
	return repo
}
