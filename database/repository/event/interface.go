package eventRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"campushub/database"
	"campushub/models"
)

// EventRepository is the event store: insert/update/delete plus the ordered
// listings the client browses.
type EventRepository interface {
	Create(ctx context.Context, event models.Event) (string, error)
	Update(ctx context.Context, eventID string, updates map[string]interface{}) error
	Delete(ctx context.Context, eventID string) error
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByDepartment(ctx context.Context, department string) ([]models.Event, error)
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	repo := &mongoEventRepo{
		coll: database.DB().Collection("events"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create event indexes: %v\n", err)
	}
	return repo
}
