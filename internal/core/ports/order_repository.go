package ports

import (
	"context"
	"time"

	"github.com/washline/laundry-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
// Every listing returns orders sorted by created_at descending.
type OrderRepository interface {
	// Create inserts the order and fills in its generated id.
	Create(ctx context.Context, o *domain.Order) error
	// FindByCustomer returns the orders whose customer field equals userID.
	// A malformed or unknown id yields an empty slice, not an error.
	FindByCustomer(ctx context.Context, userID string) ([]*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
	// FindByStatus matches status case-sensitively; an unknown value yields
	// an empty slice.
	FindByStatus(ctx context.Context, status string) ([]*domain.Order, error)
	// UpdateStatus sets the new status, appends a history entry, and returns
	// the updated order. Returns domain.ErrOrderNotFound when id is unknown.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, ts time.Time) (*domain.Order, error)
	// AssignRider sets the rider field unconditionally and returns the
	// updated order, or domain.ErrOrderNotFound when id is unknown.
	AssignRider(ctx context.Context, id, riderID string) (*domain.Order, error)
}
