package shop

import (
	"github.com/bazaarmind/console/internal/domain/schema"
	"github.com/bazaarmind/console/internal/domain/shared"
)

// Shop represents one independently configured retail shop.
// The attached Template is a snapshot taken from the registry at creation
// time and is treated as immutable for the life of the shop.
type Shop struct {
	shared.BaseEntity
	Name           string          `gorm:"type:varchar(200);not null"`
	ShopType       string          `gorm:"type:varchar(50);not null;index"`
	Phone          string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	OwnerName      string          `gorm:"type:varchar(100)"`
	Address        string          `gorm:"type:text"`
	City           string          `gorm:"type:varchar(100)"`
	Email          string          `gorm:"type:varchar(200)"`
	WhatsAppNumber string          `gorm:"type:varchar(20);index"`
	Active         bool            `gorm:"not null;default:true"`
	Template       schema.Template `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a new shop with its template snapshot attached
func NewShop(name, shopType, phone string, template schema.Template) (*Shop, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Shop name cannot be empty")
	}
	if shopType == "" {
		return nil, shared.NewDomainError("INVALID_SHOP_TYPE", "Shop type cannot be empty")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Shop phone cannot be empty")
	}

	return &Shop{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		ShopType:   shopType,
		Phone:      phone,
		Active:     true,
		Template:   template,
	}, nil
}

// UpdateContact replaces the shop's contact details.
// Shops are never partially patched in place; callers supply the full
// replacement values.
func (s *Shop) UpdateContact(name, ownerName, address, city, email, whatsappNumber string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Shop name cannot be empty")
	}

	s.Name = name
	s.OwnerName = ownerName
	s.Address = address
	s.City = city
	s.Email = email
	s.WhatsAppNumber = whatsappNumber
	s.Touch()

	return nil
}
