package user

import (
	"context"
	"errors"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// Repository defines the interface for account data operations.
// Emails are matched case-insensitively.
type Repository interface {
	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// Save creates a new user; fails with ErrUserExists on a duplicate email
	Save(ctx context.Context, u *entities.User) error

	// Update overwrites an existing user's record
	Update(ctx context.Context, u *entities.User) error
}
