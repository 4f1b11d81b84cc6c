package handler

import (
	sessionapp "github.com/bazaarmind/console/internal/application/session"
	shopsapp "github.com/bazaarmind/console/internal/application/shops"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler exposes the shop list and current-shop selection
type SessionHandler struct {
	BaseHandler
	manager *sessionapp.Manager
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(manager *sessionapp.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// RegisterRoutes registers session routes on the given group
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	session := rg.Group("/session")
	session.GET("", h.Get)
	session.POST("/refresh", h.Refresh)
	session.PUT("/current", h.Select)
}

// SelectShopRequest selects the current shop. A nil or empty shop_id
// clears the in-memory selection without touching the persisted one.
type SelectShopRequest struct {
	ShopID *string `json:"shop_id" binding:"omitempty,uuid"`
}

// SessionResponse is the session state as rendered to clients
type SessionResponse struct {
	Shops   []shopsapp.ShopResponse `json:"shops"`
	Current *shopsapp.ShopResponse  `json:"current"`
	Loading bool                    `json:"loading"`
}

func toSessionResponse(snap sessionapp.Snapshot) SessionResponse {
	resp := SessionResponse{
		Shops:   make([]shopsapp.ShopResponse, 0, len(snap.Shops)),
		Loading: snap.Loading,
	}
	for i := range snap.Shops {
		resp.Shops = append(resp.Shops, shopsapp.ToShopResponse(&snap.Shops[i]))
	}
	if snap.Current != nil {
		current := shopsapp.ToShopResponse(snap.Current)
		resp.Current = &current
	}
	return resp
}

// Get returns the session snapshot
func (h *SessionHandler) Get(c *gin.Context) {
	h.Success(c, toSessionResponse(h.manager.Snapshot()))
}

// Refresh reloads the shop list and re-establishes the selection
func (h *SessionHandler) Refresh(c *gin.Context) {
	if err := h.manager.Refresh(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toSessionResponse(h.manager.Snapshot()))
}

// Select changes the current shop selection
func (h *SessionHandler) Select(c *gin.Context) {
	var req SelectShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if req.ShopID == nil || *req.ShopID == "" {
		h.manager.Select(c.Request.Context(), nil)
		h.Success(c, toSessionResponse(h.manager.Snapshot()))
		return
	}

	id, err := uuid.Parse(*req.ShopID)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	sh, ok := h.manager.ShopByID(id)
	if !ok {
		h.NotFound(c, "Shop is not in the current session")
		return
	}

	h.manager.Select(c.Request.Context(), sh)
	h.Success(c, toSessionResponse(h.manager.Snapshot()))
}
