package handler

import (
	chatapp "github.com/bazaarmind/console/internal/application/chat"
	"github.com/gin-gonic/gin"
)

// ChatHandler handles the WhatsApp-style chat simulation endpoint
type ChatHandler struct {
	BaseHandler
	chatService *chatapp.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *chatapp.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterRoutes registers chat routes on the given group
func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chat := rg.Group("/chat")
	chat.POST("/simulate", h.Simulate)
	chat.POST("/webhook", h.Webhook)
}

// Simulate processes one inbound customer message. A confirmation word
// places the pending order; anything else is parsed into a new pending
// session and answered with a confirmation preview.
func (h *ChatHandler) Simulate(c *gin.Context) {
	var msg chatapp.IncomingMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reply, err := h.chatService.Handle(c.Request.Context(), msg)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reply)
}

// Webhook accepts provider-delivered messages addressed to a shop's
// whatsapp number and runs them through the same conversation flow.
func (h *ChatHandler) Webhook(c *gin.Context) {
	var msg chatapp.WebhookMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reply, err := h.chatService.HandleWebhook(c.Request.Context(), msg)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reply)
}
