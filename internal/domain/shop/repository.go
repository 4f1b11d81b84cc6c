package shop

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for shops
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)
	FindAll(ctx context.Context) ([]Shop, error)
	FindByWhatsAppOrPhone(ctx context.Context, number string) (*Shop, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Save(ctx context.Context, shop *Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
}
