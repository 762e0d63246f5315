package userRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"campushub/database"
	"campushub/models"
)

// UserRepository stores the app-level view of identity-provider accounts:
// role, department and the opportunistically-registered device token.
type UserRepository interface {
	GetByID(ctx context.Context, uid string) (*models.User, error)
	Upsert(ctx context.Context, user models.User) error
	SetFCMToken(ctx context.Context, uid, token string) error
	GetAll(ctx context.Context) ([]models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	repo := &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}
