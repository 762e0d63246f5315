package user

import (
	"context"
	"errors"
	"fmt"

	"campushub/models"
)

// ErrEmptyToken rejects token registration without a token value.
var ErrEmptyToken = errors.New("device token is required")

func (s *DefaultUserService) GetUserByID(ctx context.Context, uid string) (*models.User, error) {
	return s.Repo.GetByID(ctx, uid)
}

func (s *DefaultUserService) GetRole(ctx context.Context, uid string) string {
	u, err := s.Repo.GetByID(ctx, uid)
	if err != nil || u.Role == "" {
		return models.RoleStudent
	}
	return u.Role
}

func (s *DefaultUserService) SaveProfile(ctx context.Context, user models.User) error {
	existing, err := s.Repo.GetByID(ctx, user.UID)
	if err == nil {
		// Preserve server-assigned role and the registered token.
		user.Role = existing.Role
		if user.FCMToken == "" {
			user.FCMToken = existing.FCMToken
		}
	} else if user.Role != models.RoleStudent {
		user.Role = models.RoleStudent
	}

	if err := s.Repo.Upsert(ctx, user); err != nil {
		return fmt.Errorf("SaveProfile %s: %w", user.UID, err)
	}
	return nil
}

func (s *DefaultUserService) RegisterFCMToken(ctx context.Context, uid, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.Repo.SetFCMToken(ctx, uid, token); err != nil {
		return fmt.Errorf("RegisterFCMToken %s: %w", uid, err)
	}
	return nil
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}
