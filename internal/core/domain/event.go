package domain

import "time"

// Kinds of order lifecycle events written to the audit trail.
const (
	EventStatusChanged = "status_changed"
	EventRiderAssigned = "rider_assigned"
)

// OrderEvent is an audit record of a mutation applied to an order.
type OrderEvent struct {
	OrderID   string
	Kind      string
	Status    OrderStatus // set for status_changed
	Rider     string      // set for rider_assigned
	Timestamp time.Time
}
