package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bazaarmind/console/internal/domain/order"
)

// OrderItemRequest references one product and a quantity to order
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents a request to record a new order
type CreateOrderRequest struct {
	ShopID        uuid.UUID          `json:"shop_id" binding:"required"`
	CustomerName  string             `json:"customer_name" binding:"max=100"`
	CustomerPhone string             `json:"customer_phone" binding:"max=20"`
	Notes         string             `json:"notes" binding:"max=2000"`
	Channel       string             `json:"channel" binding:"omitempty,oneof=manual whatsapp app"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest carries the replacement status string
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,min=1,max=20"`
}

// OrderListFilter represents filter options for a shop's order list
type OrderListFilter struct {
	Status  string `form:"status"`
	Channel string `form:"channel"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// OrderItemResponse is one priced line of an order
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	ShopID        uuid.UUID           `json:"shop_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Status        string              `json:"status"`
	Channel       string              `json:"channel"`
	Notes         string              `json:"notes"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}
	return OrderResponse{
		ID:            o.ID,
		ShopID:        o.ShopID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		Channel:       o.Channel,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
