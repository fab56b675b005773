package services

import (
	"context"
	"fmt"
	"time"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/user"
)

// UserService manages user accounts.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetUser returns one user by ID.
func (s *UserService) GetUser(ctx context.Context, userID int) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return u, nil
}

// GetOrCreateByEmail finds a user by email, creating the account on
// first sight.
func (s *UserService) GetOrCreateByEmail(ctx context.Context, username, email string) (*ent.User, error) {
	if email == "" {
		return nil, NewValidationError("email", "required")
	}

	u, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err == nil {
		return u, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	if username == "" {
		username = email
	}
	u, err = s.client.User.Create().
		SetUsername(username).
		SetEmail(email).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race: re-read the winner
			return s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}
