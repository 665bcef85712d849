package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/washline/laundry-system/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"throttled login", domain.ErrTooManyLoginAttempts, http.StatusTooManyRequests},
		{"unknown order", domain.ErrOrderNotFound, http.StatusNotFound},
		{"unknown user", domain.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if resp.Success {
				t.Fatalf("expected success=false")
			}
			if resp.Message != tc.err.Error() {
				t.Fatalf("expected message %q, got %q", tc.err.Error(), resp.Message)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update order"), domain.ErrOrderNotFound)
	code, _ := render(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped ErrOrderNotFound, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, resp := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if resp.Message != "invalid payload" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	// Storage failures surface their raw text in the envelope.
	code, resp := render(t, errors.New("server selection timeout"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Message != "server selection timeout" {
		t.Fatalf("expected raw error text, got %q", resp.Message)
	}
}
