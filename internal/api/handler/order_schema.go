package handler

import (
	"time"
)

// errorResponse is the envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// messageResponse is the envelope for operations that return no payload.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=user laundryman rider"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

// loginResponse intentionally carries no password material.
type loginResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type meResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// --- Orders ---

// createOrderRequest deliberately has no status field: orders always start
// Pending, whatever the caller sends. WashType is free-form.
type createOrderRequest struct {
	UserID       string `json:"userId"     validate:"required"`
	Clothes      string `json:"clothes"    validate:"required"`
	WashType     string `json:"washType"   validate:"required"`
	ReturnTime   string `json:"returnTime" validate:"required"`
	CustomerName string `json:"customerName"`
	Username     string `json:"username"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignRiderRequest struct {
	RiderID string `json:"riderId" validate:"required"`
}

type statusHistoryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type orderResponse struct {
	ID            string                  `json:"id"`
	Customer      string                  `json:"customer"`
	CustomerName  string                  `json:"customerName"`
	Clothes       string                  `json:"clothes"`
	WashType      string                  `json:"washType"`
	ReturnTime    string                  `json:"returnTime"`
	Status        string                  `json:"status"`
	Rider         *string                 `json:"rider"`
	CreatedAt     time.Time               `json:"createdAt"`
	StatusHistory []statusHistoryResponse `json:"statusHistory,omitempty"`
}

type orderEnvelope struct {
	Success bool           `json:"success"`
	Order   *orderResponse `json:"order"`
}

type ordersEnvelope struct {
	Success bool            `json:"success"`
	Orders  []orderResponse `json:"orders"`
}
