package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/bazaarmind/console/internal/domain/shop"
)

// GormShopRepository implements shop.Repository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByID finds a shop by its ID
func (r *GormShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	var sh shop.Shop
	if err := r.db.WithContext(ctx).First(&sh, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sh, nil
}

// FindAll returns all shops, oldest registration first
func (r *GormShopRepository) FindAll(ctx context.Context) ([]shop.Shop, error) {
	var shops []shop.Shop
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindByWhatsAppOrPhone resolves the shop an inbound chat message is
// addressed to, preferring the dedicated WhatsApp number.
func (r *GormShopRepository) FindByWhatsAppOrPhone(ctx context.Context, number string) (*shop.Shop, error) {
	var sh shop.Shop
	err := r.db.WithContext(ctx).Where("whats_app_number = ?", number).First(&sh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = r.db.WithContext(ctx).Where("phone = ?", number).First(&sh).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sh, nil
}

// ExistsByPhone checks whether a shop is already registered with the phone
func (r *GormShopRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&shop.Shop{}).
		Where("phone = ?", phone).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a shop
func (r *GormShopRepository) Save(ctx context.Context, sh *shop.Shop) error {
	return r.db.WithContext(ctx).Save(sh).Error
}

// Delete removes a shop
func (r *GormShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shop.Shop{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
