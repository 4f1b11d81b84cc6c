package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows product listings
type ListFilter struct {
	ActiveOnly bool
	LowStock   bool
}

// Repository defines persistence operations for products
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByShop(ctx context.Context, shopID uuid.UUID, filter ListFilter) ([]Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByShop(ctx context.Context, shopID uuid.UUID) error
}
