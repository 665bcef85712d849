package ports

import (
	"context"

	"github.com/washline/laundry-system/internal/core/domain"
)

// CreateOrderInput carries all data needed to place a new order.
// UserID is not validated against the users collection and WashType is a
// free-form string.
type CreateOrderInput struct {
	UserID       string
	Clothes      string
	WashType     string
	ReturnTime   string
	CustomerName string
	Username     string // fallback display name when CustomerName is empty
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	// Create persists a new order. Status is always initialised to Pending
	// regardless of caller input.
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	ListByCustomer(ctx context.Context, userID string) ([]*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.Order, error)
	// UpdateStatus validates the status against the five-value enum and
	// persists it. No transition ordering is enforced.
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
	// AssignRider sets the order's rider. When id matches no order it
	// returns (nil, nil) and the caller wraps the null in a success
	// envelope, matching the published contract.
	AssignRider(ctx context.Context, id, riderID string) (*domain.Order, error)
}
