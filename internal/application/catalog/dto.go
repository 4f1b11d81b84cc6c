package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bazaarmind/console/internal/domain/catalog"
)

// CreateProductRequest represents a request to add a product to a shop's catalog
type CreateProductRequest struct {
	ShopID        uuid.UUID         `json:"shop_id" binding:"required"`
	Name          string            `json:"name" binding:"required,min=1,max=200"`
	Price         decimal.Decimal   `json:"price"`
	Stock         int               `json:"stock" binding:"min=0"`
	Unit          string            `json:"unit" binding:"max=20"`
	LowStockAlert *int              `json:"low_stock_alert"`
	Attributes    map[string]string `json:"attributes"`
	Description   string            `json:"description" binding:"max=2000"`
}

// UpdateProductRequest represents a full-field product update
type UpdateProductRequest struct {
	Name          string            `json:"name" binding:"required,min=1,max=200"`
	Price         decimal.Decimal   `json:"price"`
	Unit          string            `json:"unit" binding:"max=20"`
	LowStockAlert *int              `json:"low_stock_alert"`
	Attributes    map[string]string `json:"attributes"`
	Description   string            `json:"description" binding:"max=2000"`
	Active        *bool             `json:"active"`
}

// AdjustStockRequest represents a relative stock adjustment
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductListFilter represents filter options for a shop's product list
type ProductListFilter struct {
	ActiveOnly bool `form:"active_only"`
	LowStock   bool `form:"low_stock"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID         `json:"id"`
	ShopID        uuid.UUID         `json:"shop_id"`
	Name          string            `json:"name"`
	Price         decimal.Decimal   `json:"price"`
	Stock         int               `json:"stock"`
	Unit          string            `json:"unit"`
	LowStockAlert int               `json:"low_stock_alert"`
	IsLowStock    bool              `json:"is_low_stock"`
	Attributes    map[string]string `json:"attributes"`
	Description   string            `json:"description"`
	Active        bool              `json:"active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// StockAdjustmentResponse reports a stock change
type StockAdjustmentResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	PreviousStock int       `json:"previous_stock"`
	Stock         int       `json:"stock"`
	IsLowStock    bool      `json:"is_low_stock"`
}

// ToProductResponse converts a domain Product to ProductResponse.
// IsLowStock is derived at conversion time, never read from storage.
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		ShopID:        p.ShopID,
		Name:          p.Name,
		Price:         p.Price,
		Stock:         p.Stock,
		Unit:          p.Unit,
		LowStockAlert: p.LowStockAlert,
		IsLowStock:    p.IsLowStock(),
		Attributes:    p.Attributes,
		Description:   p.Description,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
