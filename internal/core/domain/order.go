package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a laundry order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPickedUp  OrderStatus = "Picked Up"
	StatusWashing   OrderStatus = "Washing"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
)

// Statuses lists every recognised order status. Matching is case-sensitive.
var Statuses = []OrderStatus{
	StatusPending,
	StatusPickedUp,
	StatusWashing,
	StatusReady,
	StatusDelivered,
}

// Valid reports whether s is one of the five recognised statuses.
// There is deliberately no transition graph: any status may follow any
// other, only membership in the enum is checked.
func (s OrderStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

var ErrInvalidStatus = errors.New("invalid order status")
var ErrInvalidRole = errors.New("role must be user, laundryman or rider")
var ErrOrderNotFound = errors.New("order not found")
var ErrUserExists = errors.New("username already taken")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username, password or role")
var ErrTooManyLoginAttempts = errors.New("too many failed login attempts, try again later")

// StatusHistoryEntry records a single status applied to an order.
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order is the core aggregate: one laundry request tracked from intake to
// delivery. Customer and Rider are weak references by User id — neither is
// validated against the users collection.
type Order struct {
	ID            string               `json:"id"`
	Customer      string               `json:"customer"`
	CustomerName  string               `json:"customerName"`
	Clothes       string               `json:"clothes"`
	WashType      string               `json:"washType"`
	ReturnTime    string               `json:"returnTime"`
	Status        OrderStatus          `json:"status"`
	Rider         *string              `json:"rider"`
	CreatedAt     time.Time            `json:"createdAt"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory,omitempty"`
}
