package chat

import (
	"github.com/google/uuid"

	"github.com/bazaarmind/console/internal/domain/chat"
)

// Message statuses returned by the chat flow
const (
	StatusAwaitingConfirmation = "awaiting_confirmation"
	StatusOrderCreated         = "order_created"
	StatusNoPendingOrder       = "no_pending_order"
	StatusNoItems              = "no_items"
)

// IncomingMessage is one customer chat message addressed to a shop
type IncomingMessage struct {
	ShopID        uuid.UUID `json:"shop_id" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required,min=1,max=20"`
	Message       string    `json:"message" binding:"required,min=1"`
}

// WebhookMessage is one inbound message as delivered by a WhatsApp
// provider webhook. To carries the shop-side number the customer wrote to.
type WebhookMessage struct {
	To   string `json:"to" binding:"required,min=1,max=20"`
	From string `json:"from" binding:"required,min=1,max=20"`
	Body string `json:"body" binding:"required,min=1"`
}

// Reply is the outcome of handling one chat message. Parsed is only set
// when the message was treated as a new order rather than a confirmation.
type Reply struct {
	Status  string            `json:"status"`
	Message string            `json:"reply_preview"`
	OrderID *uuid.UUID        `json:"order_id,omitempty"`
	Parsed  *chat.ParsedOrder `json:"parsed,omitempty"`
}
