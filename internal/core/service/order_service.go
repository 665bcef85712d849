package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/washline/laundry-system/internal/core/domain"
	"github.com/washline/laundry-system/internal/core/ports"
)

// EventQueue is the interface the service uses to hand audit events to the
// background dispatcher.
type EventQueue interface {
	Enqueue(event domain.OrderEvent)
}

type OrderService struct {
	repo   ports.OrderRepository
	events EventQueue
	log    zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, events EventQueue, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, events: events, log: log}
}

// Create persists a new order. Status is always Pending on creation no
// matter what the caller supplied, and the display name falls back to the
// request username when absent.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	name := input.CustomerName
	if name == "" {
		name = input.Username
	}

	now := time.Now().UTC()
	order := &domain.Order{
		Customer:     input.UserID,
		CustomerName: name,
		Clothes:      input.Clothes,
		WashType:     input.WashType,
		ReturnTime:   input.ReturnTime,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusPending, Timestamp: now},
		},
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("customer", input.UserID).Msg("failed to create order")
		return nil, err
	}

	s.log.Info().Str("order_id", order.ID).Str("customer", order.Customer).Str("wash_type", order.WashType).Msg("order created")
	return order, nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.FindByCustomer(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) ListByStatus(ctx context.Context, status string) ([]*domain.Order, error) {
	return s.repo.FindByStatus(ctx, status)
}

// UpdateStatus sets a new status after validating it against the enum.
// Any recognised value may follow any other; no transition ordering is
// enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	order, err := s.repo.UpdateStatus(ctx, id, next, now)
	if err != nil {
		return nil, err
	}

	s.events.Enqueue(domain.OrderEvent{
		OrderID:   order.ID,
		Kind:      domain.EventStatusChanged,
		Status:    next,
		Timestamp: now,
	})

	s.log.Info().Str("order_id", order.ID).Str("status", status).Msg("order status updated")
	return order, nil
}

// AssignRider sets the order's rider unconditionally: no check that riderID
// belongs to a user with the rider role and no check of the current status.
func (s *OrderService) AssignRider(ctx context.Context, id, riderID string) (*domain.Order, error) {
	order, err := s.repo.AssignRider(ctx, id, riderID)
	if err != nil {
		// TODO: return 404 when the id matches no order; clients currently
		// get a success envelope with a null order.
		if errors.Is(err, domain.ErrOrderNotFound) {
			s.log.Warn().Str("order_id", id).Msg("rider assigned to unknown order id")
			return nil, nil
		}
		return nil, err
	}

	s.events.Enqueue(domain.OrderEvent{
		OrderID:   order.ID,
		Kind:      domain.EventRiderAssigned,
		Rider:     riderID,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("order_id", order.ID).Str("rider", riderID).Msg("rider assigned")
	return order, nil
}
