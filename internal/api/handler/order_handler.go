package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/washline/laundry-system/internal/api/metrics"
	"github.com/washline/laundry-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create places a new order. The order always starts in Pending; the caller
// cannot set a status, and neither userId nor washType are validated beyond
// presence.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderEnvelope
// @Failure      400   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:       req.UserID,
		Clothes:      req.Clothes,
		WashType:     req.WashType,
		ReturnTime:   req.ReturnTime,
		CustomerName: req.CustomerName,
		Username:     req.Username,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	metrics.OrdersCreatedTotal.WithLabelValues(order.WashType).Inc()
	return c.JSON(http.StatusCreated, orderEnvelope{Success: true, Order: toOrderResponse(order)})
}

// ListByUser returns the orders whose customer field equals the path id,
// newest first. Unknown or malformed ids yield an empty list.
//
// @Summary      List orders for a user
// @Tags         orders
// @Produce      json
// @Param        userId  path      string  true  "Customer user id"
// @Success      200     {object}  ordersEnvelope
// @Failure      500     {object}  errorResponse
// @Router       /orders/user/{userId} [get]
func (h *OrderHandler) ListByUser(c echo.Context) error {
	orders, err := h.service.ListByCustomer(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrdersEnvelope(orders))
}

// ListAll returns every order, newest first. Intended for the laundryman
// and rider dashboards; no role check is applied here.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  ordersEnvelope
// @Failure      500  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrdersEnvelope(orders))
}

// ListByStatus returns orders matching the path status exactly
// (case-sensitive), newest first. An unrecognised status yields an empty
// list, not an error.
//
// @Summary      List orders by status
// @Tags         orders
// @Produce      json
// @Param        status  path      string  true  "Order status (e.g. Washing, or Picked%20Up)"
// @Success      200     {object}  ordersEnvelope
// @Failure      500     {object}  errorResponse
// @Router       /orders/status/{status} [get]
func (h *OrderHandler) ListByStatus(c echo.Context) error {
	status := c.Param("status")
	// Path params arrive percent-encoded; "Picked Up" is a valid status.
	if decoded, err := url.PathUnescape(status); err == nil {
		status = decoded
	}

	orders, err := h.service.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrdersEnvelope(orders))
}

// UpdateStatus sets a new status on an order. The value must be one of the
// five recognised statuses, but no transition ordering is enforced.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Order id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  orderEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, orderEnvelope{Success: true, Order: toOrderResponse(order)})
}

// AssignRider sets the order's rider field unconditionally. When the id
// matches no order the envelope still reports success with a null order.
//
// @Summary      Assign a rider to an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order id"
// @Param        body  body      assignRiderRequest  true  "Rider user id"
// @Success      200   {object}  orderEnvelope
// @Failure      400   {object}  errorResponse
// @Router       /orders/{id}/rider [put]
func (h *OrderHandler) AssignRider(c echo.Context) error {
	var req assignRiderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.AssignRider(c.Request().Context(), c.Param("id"), req.RiderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result := "assigned"
	if order == nil {
		result = "missing"
	}
	metrics.RiderAssignmentsTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, orderEnvelope{Success: true, Order: toOrderResponse(order)})
}
