package ports

import (
	"context"

	"github.com/washline/laundry-system/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// FindByUsername retrieves a user by username regardless of role.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameAndRole retrieves a user matching both username and role.
	// A user registered under one role is invisible when queried with another.
	FindByUsernameAndRole(ctx context.Context, username, role string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
