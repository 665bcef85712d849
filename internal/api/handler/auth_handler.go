package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/washline/laundry-system/internal/api/metrics"
	"github.com/washline/laundry-system/internal/core/domain"
	"github.com/washline/laundry-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account. The response carries only a success
// flag — no user id and no password material; callers log in afterwards to
// obtain the id.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Username, password and role"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Success: true, Message: "registration successful"})
}

// Login authenticates a user presenting username, password and role
// together; a user registered under one role cannot log in with another.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrTooManyLoginAttempts) {
			metrics.LoginFailuresTotal.Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success:  true,
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Token:    token,
	})
}

// Me returns the identity claims of the authenticated caller.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, _ := c.Get("sub").(string)
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)

	return c.JSON(http.StatusOK, meResponse{
		Success:  true,
		ID:       id,
		Username: username,
		Role:     role,
	})
}
