package chat

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/bazaarmind/console/internal/domain/order"
	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Chat session states
const (
	SessionPending   = "pending"
	SessionCompleted = "completed"
)

// ParsedItems is the raw parse result persisted with the session
type ParsedItems []ParsedItem

// Value implements driver.Valuer
func (p ParsedItems) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(ParsedItems{})
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *ParsedItems) Scan(value interface{}) error {
	if value == nil {
		*p = ParsedItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into ParsedItems", value)
	}
}

// Session holds one customer's pending chat order for a shop, awaiting
// confirmation. At most one pending session exists per customer+shop;
// a new parsed message replaces the previous one.
type Session struct {
	shared.BaseEntity
	ShopID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_chat_session_shop_phone"`
	CustomerPhone  string          `gorm:"type:varchar(20);not null;index:idx_chat_session_shop_phone"`
	RawMessage     string          `gorm:"type:text"`
	ParsedItems    ParsedItems     `gorm:"type:jsonb"`
	ConfirmedItems order.LineItems `gorm:"type:jsonb"`
	Total          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (Session) TableName() string {
	return "chat_sessions"
}

// NewSession creates a pending session from a parse result. ConfirmedItems
// holds only the matched lines, already priced; Total covers those lines.
func NewSession(shopID uuid.UUID, customerPhone string, parsed *ParsedOrder, confirmed order.LineItems) *Session {
	return &Session{
		BaseEntity:     shared.NewBaseEntity(),
		ShopID:         shopID,
		CustomerPhone:  customerPhone,
		RawMessage:     parsed.RawMessage,
		ParsedItems:    ParsedItems(parsed.Items),
		ConfirmedItems: confirmed,
		Total:          confirmed.Sum(),
		Status:         SessionPending,
	}
}

// Complete marks the session as materialized into an order
func (s *Session) Complete() {
	s.Status = SessionCompleted
	s.Touch()
}

// SessionRepository defines persistence operations for chat sessions
type SessionRepository interface {
	FindPending(ctx context.Context, shopID uuid.UUID, customerPhone string) (*Session, error)
	// Replace removes any existing sessions for the customer+shop pair and
	// stores the new one.
	Replace(ctx context.Context, session *Session) error
	Save(ctx context.Context, session *Session) error
}
