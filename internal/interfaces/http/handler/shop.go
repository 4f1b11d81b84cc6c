package handler

import (
	shopsapp "github.com/bazaarmind/console/internal/application/shops"
	"github.com/gin-gonic/gin"
)

// ShopHandler handles shop-related API endpoints
type ShopHandler struct {
	BaseHandler
	shopService *shopsapp.ShopService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopService *shopsapp.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// RegisterRoutes registers shop routes on the given group
func (h *ShopHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shops := rg.Group("/shops")
	shops.POST("", h.Create)
	shops.GET("", h.List)
	shops.GET("/:id", h.GetByID)
	shops.PUT("/:id", h.Update)
	shops.DELETE("/:id", h.Delete)

	types := rg.Group("/shop-types")
	types.GET("", h.ShopTypes)
	types.GET("/:type/template", h.Template)
}

// Create registers a new shop. The attribute template for the shop type
// is snapshotted onto the shop at this point.
func (h *ShopHandler) Create(c *gin.Context) {
	var req shopsapp.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.shopService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns all registered shops
func (h *ShopHandler) List(c *gin.Context) {
	resp, err := h.shopService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByID returns a single shop
func (h *ShopHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	resp, err := h.shopService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update replaces the shop's contact details
func (h *ShopHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	var req shopsapp.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.shopService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a shop
func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	if err := h.shopService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ShopTypes lists the known shop types with their template summaries
func (h *ShopHandler) ShopTypes(c *gin.Context) {
	h.Success(c, h.shopService.ShopTypes())
}

// Template returns the current registry template for a shop type.
// Unknown types resolve to the generic template rather than an error.
func (h *ShopHandler) Template(c *gin.Context) {
	shopType := c.Param("type")
	h.Success(c, h.shopService.TemplateByType(shopType))
}
