package shops

import (
	"time"

	"github.com/google/uuid"

	"github.com/bazaarmind/console/internal/domain/schema"
	"github.com/bazaarmind/console/internal/domain/shop"
)

// CreateShopRequest represents a request to register a new shop
type CreateShopRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=200"`
	ShopType       string `json:"shop_type" binding:"required,min=1,max=50"`
	Phone          string `json:"phone" binding:"required,phone"`
	OwnerName      string `json:"owner_name" binding:"max=200"`
	Address        string `json:"address" binding:"max=500"`
	City           string `json:"city" binding:"max=100"`
	Email          string `json:"email" binding:"omitempty,email"`
	WhatsAppNumber string `json:"whatsapp_number" binding:"omitempty,phone"`
}

// UpdateShopRequest represents a full-replacement update of shop details
type UpdateShopRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=200"`
	OwnerName      string `json:"owner_name" binding:"max=200"`
	Address        string `json:"address" binding:"max=500"`
	City           string `json:"city" binding:"max=100"`
	Email          string `json:"email" binding:"omitempty,email"`
	WhatsAppNumber string `json:"whatsapp_number" binding:"omitempty,phone"`
}

// ShopResponse represents a shop in API responses
type ShopResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	ShopType       string          `json:"shop_type"`
	Phone          string          `json:"phone"`
	OwnerName      string          `json:"owner_name"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	Email          string          `json:"email"`
	WhatsAppNumber string          `json:"whatsapp_number"`
	Active         bool            `json:"active"`
	Template       schema.Template `json:"template"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ShopTypesResponse lists the registered shop types, flat and grouped
// by category, for type pickers
type ShopTypesResponse struct {
	Types      []schema.ShopTypeInfo            `json:"types"`
	Categories map[string][]schema.ShopTypeInfo `json:"categories"`
}

// ToShopResponse converts a domain Shop to ShopResponse
func ToShopResponse(s *shop.Shop) ShopResponse {
	return ShopResponse{
		ID:             s.ID,
		Name:           s.Name,
		ShopType:       s.ShopType,
		Phone:          s.Phone,
		OwnerName:      s.OwnerName,
		Address:        s.Address,
		City:           s.City,
		Email:          s.Email,
		WhatsAppNumber: s.WhatsAppNumber,
		Active:         s.Active,
		Template:       s.Template,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
