package order

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows order listings for a shop
type ListFilter struct {
	Status  string
	Channel string
	Limit   int
}

// Repository defines persistence operations for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByShop(ctx context.Context, shopID uuid.UUID, filter ListFilter) ([]Order, error)
	Save(ctx context.Context, order *Order) error
}
