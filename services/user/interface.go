package user

import (
	"context"

	userRepo "campushub/database/repository/user"
	"campushub/models"
)

// UserService defines business logic for app-level user records. Accounts
// themselves live in the identity provider; this service only manages the
// role/department/device-token view the reminder pipeline reads.
type UserService interface {
	// GetUserByID retrieves a user record by its provider uid.
	GetUserByID(ctx context.Context, uid string) (*models.User, error)
	// GetRole resolves the caller's role; students by default when no
	// record exists yet.
	GetRole(ctx context.Context, uid string) string
	// SaveProfile upserts the caller's profile fields. Role is never
	// elevated through this path.
	SaveProfile(ctx context.Context, user models.User) error
	// RegisterFCMToken upserts the caller's device token.
	RegisterFCMToken(ctx context.Context, uid, token string) error
	// GetAllUsers lists user records (admin view).
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
