package handler

import (
	ordersapp "github.com/bazaarmind/console/internal/application/orders"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *ordersapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *ordersapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes on the given group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.POST("", h.Create)
	orders.POST("/submit", h.Submit)
	orders.GET("", h.List)
	orders.GET("/:id", h.GetByID)
	orders.PATCH("/:id/status", h.UpdateStatus)
}

type orderListQuery struct {
	ShopID string `form:"shop_id" binding:"required,uuid"`
	ordersapp.OrderListFilter
}

// Create places an order from explicit product references. Prices are
// resolved server-side from the catalog, never taken from the request.
func (h *OrderHandler) Create(c *gin.Context) {
	var req ordersapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Submit places an order from a composed draft submission. The quoted
// total is advisory; line prices are re-resolved before persisting.
func (h *OrderHandler) Submit(c *gin.Context) {
	var sub ordersapp.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.CreateFromSubmission(c.Request.Context(), &sub)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns a shop's orders, newest first, optionally filtered by
// status and channel
func (h *OrderHandler) List(c *gin.Context) {
	var query orderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shopID, err := uuid.Parse(query.ShopID)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	resp, err := h.orderService.List(c.Request.Context(), shopID, query.OrderListFilter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByID returns a single order with its line items
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateStatus sets the order's workflow status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req ordersapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
