package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/washline/laundry-system/internal/core/domain"
	"github.com/washline/laundry-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// stubOrderRepo lists newest first like the created_at index does.
type stubOrderRepo struct {
	byID      map[string]*domain.Order
	ids       []string // insertion order, oldest first
	nextID    int
	createErr error
	findErr   error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[string]*domain.Order), nextID: 1}
}

func cloneOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.StatusHistory = append([]domain.StatusHistoryEntry(nil), o.StatusHistory...)
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	o.ID = fmt.Sprintf("order_%d", r.nextID)
	r.nextID++
	r.byID[o.ID] = cloneOrder(o)
	r.ids = append(r.ids, o.ID)
	return nil
}

// list walks the orders newest first, keeping only those match accepts.
func (r *stubOrderRepo) list(match func(*domain.Order) bool) ([]*domain.Order, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*domain.Order, 0)
	for i := len(r.ids) - 1; i >= 0; i-- {
		if o := r.byID[r.ids[i]]; match(o) {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindByCustomer(_ context.Context, userID string) ([]*domain.Order, error) {
	return r.list(func(o *domain.Order) bool { return o.Customer == userID })
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]*domain.Order, error) {
	return r.list(func(o *domain.Order) bool { return true })
}

func (r *stubOrderRepo) FindByStatus(_ context.Context, status string) ([]*domain.Order, error) {
	return r.list(func(o *domain.Order) bool { return string(o.Status) == status })
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus, ts time.Time) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, domain.StatusHistoryEntry{Status: status, Timestamp: ts})
	return cloneOrder(o), nil
}

func (r *stubOrderRepo) AssignRider(_ context.Context, id, riderID string) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Rider = &riderID
	return cloneOrder(o), nil
}

type captureQueue struct {
	events []domain.OrderEvent
}

func (q *captureQueue) Enqueue(event domain.OrderEvent) {
	q.events = append(q.events, event)
}

func newOrderSvc(repo *stubOrderRepo, q *captureQueue) *OrderService {
	return NewOrderService(repo, q, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestOrderService_Create_AlwaysPending(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderSvc(repo, &captureQueue{})

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:     "user_1",
		Clothes:    "3 shirts",
		WashType:   "dry clean",
		ReturnTime: "tomorrow 6pm",
		Username:   "alice",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("expected Pending, got %s", order.Status)
	}
	if order.ID == "" {
		t.Fatalf("expected generated id")
	}
	if order.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
	if len(order.StatusHistory) != 1 || order.StatusHistory[0].Status != domain.StatusPending {
		t.Fatalf("expected history seeded with Pending, got %+v", order.StatusHistory)
	}
}

func TestOrderService_Create_CustomerNameFallback(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderSvc(repo, &captureQueue{})

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:     "user_1",
		Clothes:    "bedding",
		WashType:   "wash and fold",
		ReturnTime: "friday",
		Username:   "alice",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.CustomerName != "alice" {
		t.Fatalf("expected fallback to username, got %q", order.CustomerName)
	}

	order, err = svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:       "user_1",
		Clothes:      "bedding",
		WashType:     "wash and fold",
		ReturnTime:   "friday",
		CustomerName: "Alice W.",
		Username:     "alice",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.CustomerName != "Alice W." {
		t.Fatalf("expected explicit customerName to win, got %q", order.CustomerName)
	}
}

func TestOrderService_UpdateStatus_InvalidValue(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderSvc(repo, &captureQueue{})

	order, _ := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "user_1", Clothes: "socks", WashType: "standard", ReturnTime: "monday",
	})

	if _, err := svc.UpdateStatus(context.Background(), order.ID, "Folded"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	// Stored status must be untouched.
	if stored := repo.byID[order.ID]; stored.Status != domain.StatusPending {
		t.Fatalf("expected stored status unchanged, got %s", stored.Status)
	}
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderSvc(repo, &captureQueue{})

	if _, err := svc.UpdateStatus(context.Background(), "missing", string(domain.StatusWashing)); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	repo := newStubOrderRepo()
	q := &captureQueue{}
	svc := newOrderSvc(repo, q)

	order, _ := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "user_1", Clothes: "suit", WashType: "dry clean", ReturnTime: "monday",
	})

	// Any recognised value may follow any other; Delivered straight from
	// Pending is allowed.
	updated, err := svc.UpdateStatus(context.Background(), order.ID, string(domain.StatusDelivered))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusDelivered {
		t.Fatalf("expected Delivered, got %s", updated.Status)
	}
	if len(updated.StatusHistory) != 2 {
		t.Fatalf("expected history entry appended, got %d entries", len(updated.StatusHistory))
	}

	if len(q.events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(q.events))
	}
	ev := q.events[0]
	if ev.Kind != domain.EventStatusChanged || ev.OrderID != order.ID || ev.Status != domain.StatusDelivered {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
}

func TestOrderService_AssignRider_Success(t *testing.T) {
	repo := newStubOrderRepo()
	q := &captureQueue{}
	svc := newOrderSvc(repo, q)

	order, _ := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "user_1", Clothes: "towels", WashType: "standard", ReturnTime: "tuesday",
	})

	updated, err := svc.AssignRider(context.Background(), order.ID, "rider_9")
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if updated.Rider == nil || *updated.Rider != "rider_9" {
		t.Fatalf("expected rider set, got %v", updated.Rider)
	}

	if len(q.events) != 1 || q.events[0].Kind != domain.EventRiderAssigned {
		t.Fatalf("expected rider_assigned audit event, got %+v", q.events)
	}
}

func TestOrderService_AssignRider_UnknownOrder(t *testing.T) {
	repo := newStubOrderRepo()
	q := &captureQueue{}
	svc := newOrderSvc(repo, q)

	// Unknown ids yield a nil order and no error: the handler wraps the
	// null in a success envelope per the published contract.
	order, err := svc.AssignRider(context.Background(), "missing", "rider_9")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil order, got %+v", order)
	}
	if len(q.events) != 0 {
		t.Fatalf("expected no audit event for unknown order")
	}
}

func TestOrderService_ListAll_NewestFirst(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderSvc(repo, &captureQueue{})

	var created []string
	for _, clothes := range []string{"shirts", "towels", "bedding"} {
		order, err := svc.Create(context.Background(), ports.CreateOrderInput{
			UserID: "user_1", Clothes: clothes, WashType: "standard", ReturnTime: "monday",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		created = append(created, order.ID)
	}

	orders, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != len(created) {
		t.Fatalf("expected %d orders, got %d", len(created), len(orders))
	}
	// The later of two orders created in sequence comes first.
	for i, o := range orders {
		if want := created[len(created)-1-i]; o.ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, o.ID)
		}
	}
}

func TestOrderService_ListByStatus_PassThrough(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderSvc(repo, &captureQueue{})

	_, _ = svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "user_1", Clothes: "shirts", WashType: "standard", ReturnTime: "monday",
	})

	orders, err := svc.ListByStatus(context.Background(), "Pending")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	// An unrecognised status is an empty list, not an error.
	orders, err = svc.ListByStatus(context.Background(), "Shipped")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty list, got %d", len(orders))
	}
}
