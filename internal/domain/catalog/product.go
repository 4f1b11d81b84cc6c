package catalog

import (
	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item belonging to one shop.
// Core fields are fixed-shape; the Attributes bag carries the
// template-driven dynamic fields.
type Product struct {
	shared.BaseEntity
	ShopID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock         int             `gorm:"not null;default:0"`
	Unit          string          `gorm:"type:varchar(20);not null"`
	LowStockAlert int             `gorm:"not null;default:0"`
	Attributes    AttributeMap    `gorm:"type:jsonb"`
	Description   string          `gorm:"type:text"`
	Active        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product for a shop
func NewProduct(shopID uuid.UUID, name string, price decimal.Decimal, stock int, unit string) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if unit == "" {
		unit = "piece"
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		ShopID:     shopID,
		Name:       name,
		Price:      price,
		Stock:      stock,
		Unit:       unit,
		Attributes: AttributeMap{},
		Active:     true,
	}, nil
}

// Update replaces the product's basic information
func (p *Product) Update(name string, price decimal.Decimal, unit, description string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Name = name
	p.Price = price
	if unit != "" {
		p.Unit = unit
	}
	p.Description = description
	p.Touch()

	return nil
}

// SetAttributes replaces the dynamic attribute bag
func (p *Product) SetAttributes(attrs AttributeMap) {
	if attrs == nil {
		attrs = AttributeMap{}
	}
	p.Attributes = attrs
	p.Touch()
}

// SetStock replaces the stock level
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.Stock = stock
	p.Touch()
	return nil
}

// AdjustStock adds delta to the stock level, negative for reductions.
// Stock never goes below zero.
func (p *Product) AdjustStock(delta int) error {
	next := p.Stock + delta
	if next < 0 {
		return shared.ErrInsufficientStock
	}
	p.Stock = next
	p.Touch()
	return nil
}

// SetLowStockAlert sets the alert threshold
func (p *Product) SetLowStockAlert(threshold int) error {
	if threshold < 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Low stock alert cannot be negative")
	}
	p.LowStockAlert = threshold
	p.Touch()
	return nil
}

// SetActive toggles whether the product is sellable
func (p *Product) SetActive(active bool) {
	p.Active = active
	p.Touch()
}

// IsLowStock reports the derived low-stock condition. It is recomputed on
// every read and never stored.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockAlert
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
