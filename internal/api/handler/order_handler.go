package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jgmedellin/coffee-shop-api/internal/api/metrics"
	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
	"github.com/jgmedellin/coffee-shop-api/internal/core/ports"
)

const defaultListSize = 10

// OrderHandler handles HTTP requests for the order workflow.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func toOrderResponse(o *domain.Order) orderResponse {
	names := make([]string, 0, len(o.Products))
	for _, line := range o.Products {
		names = append(names, line.Name)
	}
	return orderResponse{
		OrderID:       o.ID,
		CustomerEmail: o.CustomerEmail,
		Products:      names,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
	}
}

// Create places a new order. USER-only per the policy table.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  Envelope{data=orderResponse}
// @Failure      400   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		CustomerEmail: req.CustomerEmail,
		ItemRefs:      req.OrderItems,
		TotalAmount:   req.TotalAmount,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "Order created successfully.", toOrderResponse(order))
}

// GetMine returns the caller's own order ids.
//
// @Summary      Get own order history
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=[]orderIDItem}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/orders/history [get]
func (h *OrderHandler) GetMine(c echo.Context) error {
	email, _ := caller(c)

	ids, err := h.service.GetMine(c.Request().Context(), email)
	if err != nil {
		return err
	}

	out := make([]orderIDItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, orderIDItem{OrderID: id})
	}
	return respond(c, http.StatusOK, "Orders retrieved successfully.", out)
}

// GetAll lists orders with an optional owner filter and size cap.
//
// @Summary      Get all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        size   query     int     false  "Maximum entries (default 10, <=0 unlimited)"
// @Param        email  query     string  false  "Filter by owner email"
// @Success      200    {object}  Envelope{data=[]orderSummary}
// @Failure      404    {object}  Envelope
// @Router       /api/v1/orders [get]
func (h *OrderHandler) GetAll(c echo.Context) error {
	size := defaultListSize
	if s := c.QueryParam("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid size parameter")
		}
		size = parsed
	}

	orders, err := h.service.GetAll(c.Request().Context(), size, c.QueryParam("email"))
	if err != nil {
		return err
	}

	out := make([]orderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderSummary{OrderID: o.ID, CustomerEmail: o.CustomerEmail})
	}
	return respond(c, http.StatusOK, "Orders retrieved successfully.", out)
}

// GetOne returns a single order, owner-or-elevated.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  Envelope{data=orderResponse}
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOne(c echo.Context) error {
	email, role := caller(c)

	order, err := h.service.GetOne(c.Request().Context(), c.Param("id"), email, role)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order retrieved successfully.", toOrderResponse(order))
}

// Update overwrites an order's status and, optionally, its product list.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "New status, optional new items"
// @Success      200   {object}  Envelope{data=orderResponse}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/v1/orders/{id} [patch]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.OrderStatus), req.OrderItems)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order updated successfully.", toOrderResponse(order))
}

// Delete removes an order. SUPER-only per the policy table.
//
// @Summary      Delete an order
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
