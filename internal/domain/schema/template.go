package schema

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FieldType identifies the input widget a template field renders as.
// The set is closed on the client side but open on the wire: templates are
// server-supplied and may carry types this build has never seen, so
// consumers must treat unknown values as FieldTypeText (fail-open).
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
	FieldTypeSelect FieldType = "select"
)

// Normalize maps unrecognized field types to FieldTypeText.
// New template types the client hasn't learned yet still render as a
// plain text input instead of failing.
func (t FieldType) Normalize() FieldType {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeSelect:
		return t
	default:
		return FieldTypeText
	}
}

// FieldSpec describes one dynamic attribute field within a template
type FieldSpec struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	// Options is populated only for select fields
	Options []string `json:"options,omitempty"`
}

// Equal reports whether two field specs are identical
func (f FieldSpec) Equal(other FieldSpec) bool {
	if f.Key != other.Key || f.Label != other.Label || f.Type != other.Type || f.Required != other.Required {
		return false
	}
	if len(f.Options) != len(other.Options) {
		return false
	}
	for i, opt := range f.Options {
		if opt != other.Options[i] {
			return false
		}
	}
	return true
}

// Template is the externally supplied schema describing which custom
// attribute fields a shop type's products carry. It is immutable once
// fetched; an empty Attributes slice means the shop type has no dynamic
// attributes and the dynamic section is suppressed entirely.
type Template struct {
	ShopType          string      `json:"shop_type"`
	Label             string      `json:"label"`
	Icon              string      `json:"icon"`
	Category          string      `json:"category"`
	Units             []string    `json:"units"`
	Attributes        []FieldSpec `json:"attributes"`
	LowStockThreshold int         `json:"low_stock_threshold"`
}

// HasAttributes reports whether the template defines any dynamic fields
func (t Template) HasAttributes() bool {
	return len(t.Attributes) > 0
}

// Field returns the spec for the given key, if present
func (t Template) Field(key string) (FieldSpec, bool) {
	for _, f := range t.Attributes {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Equal reports whether two templates are identical
func (t Template) Equal(other Template) bool {
	if t.ShopType != other.ShopType || t.Label != other.Label || t.Icon != other.Icon ||
		t.Category != other.Category || t.LowStockThreshold != other.LowStockThreshold {
		return false
	}
	if len(t.Units) != len(other.Units) || len(t.Attributes) != len(other.Attributes) {
		return false
	}
	for i, u := range t.Units {
		if u != other.Units[i] {
			return false
		}
	}
	for i, f := range t.Attributes {
		if !f.Equal(other.Attributes[i]) {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer so a template snapshot can be stored as JSONB
func (t Template) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for reading a template snapshot back from JSONB
func (t *Template) Scan(value interface{}) error {
	if value == nil {
		*t = Template{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into Template", value)
	}
}
