package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/bazaarmind/console/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status values conventionally used for orders. The status field is not
// validated against this set on update; any string is accepted and merely
// displayed.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Order channels
const (
	ChannelManual   = "manual"
	ChannelWhatsApp = "whatsapp"
	ChannelApp      = "app"
)

// DefaultCustomerName is used when no customer name is supplied
const DefaultCustomerName = "Walk-in Customer"

// LineItem is a priced, named snapshot of one product quantity within an
// order. Product name and unit price are denormalized so historical orders
// remain readable if the product is later edited or removed.
type LineItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// LineItems is the ordered item list persisted as JSONB
type LineItems []LineItem

// Value implements driver.Valuer
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(LineItems{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into LineItems", value)
	}
}

// Sum returns the total amount across all line items
func (l LineItems) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l {
		total = total.Add(item.Total)
	}
	return total
}

// Order is an immutable submission record for one shop. Items and totals
// are fixed at creation; only the status field changes afterwards.
type Order struct {
	shared.BaseEntity
	ShopID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName  string          `gorm:"type:varchar(100);not null"`
	CustomerPhone string          `gorm:"type:varchar(20)"`
	Items         LineItems       `gorm:"type:jsonb"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Channel       string          `gorm:"type:varchar(20);not null;default:'manual'"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// New creates a confirmed order. The total amount is recomputed from the
// line items here, authoritatively, regardless of what any client-side
// composer displayed.
func New(shopID uuid.UUID, customerName, customerPhone, channel, notes string, items LineItems) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Order must contain at least one item")
	}
	if customerName == "" {
		customerName = DefaultCustomerName
	}
	if channel == "" {
		channel = ChannelManual
	}

	return &Order{
		BaseEntity:    shared.NewBaseEntity(),
		ShopID:        shopID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Items:         items,
		TotalAmount:   items.Sum(),
		Status:        StatusConfirmed,
		Channel:       channel,
		Notes:         notes,
	}, nil
}

// SetStatus replaces the order status. Any non-empty string is accepted;
// the conventional values are the Status constants above.
func (o *Order) SetStatus(status string) error {
	if status == "" {
		return shared.NewDomainError("INVALID_STATUS", "Order status cannot be empty")
	}
	o.Status = status
	o.Touch()
	return nil
}
