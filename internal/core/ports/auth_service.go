package ports

import (
	"context"

	"github.com/washline/laundry-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password, role string) (string, *domain.User, error)
}
