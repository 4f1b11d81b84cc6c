package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazaarmind/console/internal/domain/chat"
	"github.com/bazaarmind/console/internal/domain/shared"
)

// GormChatSessionRepository implements chat.SessionRepository using GORM
type GormChatSessionRepository struct {
	db *gorm.DB
}

// NewGormChatSessionRepository creates a new GormChatSessionRepository
func NewGormChatSessionRepository(db *gorm.DB) *GormChatSessionRepository {
	return &GormChatSessionRepository{db: db}
}

// FindPending returns the newest pending session for the customer and shop
func (r *GormChatSessionRepository) FindPending(ctx context.Context, shopID uuid.UUID, customerPhone string) (*chat.Session, error) {
	var session chat.Session
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND customer_phone = ? AND status = ?", shopID, customerPhone, chat.SessionPending).
		Order("created_at desc").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Replace removes any existing sessions for the customer+shop pair and
// stores the new one, keeping at most one conversation in flight.
func (r *GormChatSessionRepository) Replace(ctx context.Context, session *chat.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&chat.Session{},
			"shop_id = ? AND customer_phone = ?", session.ShopID, session.CustomerPhone).Error; err != nil {
			return err
		}
		return tx.Create(session).Error
	})
}

// Save creates or updates a session
func (r *GormChatSessionRepository) Save(ctx context.Context, session *chat.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}
