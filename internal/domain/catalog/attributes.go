package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AttributeMap is the free-form key/value bag on a product, shaped by the
// owning shop's template. Values are stored as strings regardless of field
// type; the attribute set is determined by externally supplied template
// data unknown at compile time, so contents are intentionally untyped.
// An absent key is equivalent to an unset value.
type AttributeMap map[string]string

// Get returns the value for key, or "" when unset
func (m AttributeMap) Get(key string) string {
	return m[key]
}

// With returns a copy of the map with key set to value.
// The receiver is never mutated.
func (m AttributeMap) With(key, value string) AttributeMap {
	next := make(AttributeMap, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	next[key] = value
	return next
}

// Value implements driver.Valuer so attributes can be stored as JSONB
func (m AttributeMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(AttributeMap{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for reading attributes back from JSONB
func (m *AttributeMap) Scan(value interface{}) error {
	if value == nil {
		*m = AttributeMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into AttributeMap", value)
	}
}
