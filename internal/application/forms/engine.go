// Package forms implements the template-driven attribute form engine: it
// projects a shop's template and a partial attribute map into an ordered
// field sequence, applies single-field edits copy-on-write, and validates
// required-field presence. It never coerces types; numeric and date fields
// keep their textual representation in the map.
package forms

import (
	"fmt"
	"strings"

	"github.com/bazaarmind/console/internal/domain/catalog"
	"github.com/bazaarmind/console/internal/domain/schema"
)

// FieldView pairs one field spec with its current value for rendering
type FieldView struct {
	Spec  schema.FieldSpec
	Value string
}

// InputType returns the widget type to render with. Unrecognized template
// types fall back to a plain text input rather than failing; templates are
// server-supplied and may be newer than this client.
func (v FieldView) InputType() schema.FieldType {
	return v.Spec.Type.Normalize()
}

// Options returns the selectable values for a select field, with an
// implicit leading empty "unselected" option. Non-select fields have none.
func (v FieldView) Options() []string {
	if v.InputType() != schema.FieldTypeSelect {
		return nil
	}
	return append([]string{""}, v.Spec.Options...)
}

// Placeholder returns the hint text for the field's input
func (v FieldView) Placeholder() string {
	switch v.InputType() {
	case schema.FieldTypeNumber:
		return "0"
	case schema.FieldTypeSelect:
		return "Select " + v.Spec.Label
	default:
		return "Enter " + strings.ToLower(v.Spec.Label)
	}
}

// Render projects the template's fields, in template order, paired with
// their current values. It is a pure projection: inputs are not mutated
// and a template with no attributes yields an empty sequence, which the
// caller renders as nothing at all.
func Render(template schema.Template, values catalog.AttributeMap) []FieldView {
	views := make([]FieldView, 0, len(template.Attributes))
	for _, spec := range template.Attributes {
		views = append(views, FieldView{Spec: spec, Value: values.Get(spec.Key)})
	}
	return views
}

// SetValue returns a copy of values with key set. The wire representation
// is whatever the field's input produced; no coercion happens on write.
func SetValue(values catalog.AttributeMap, key, value string) catalog.AttributeMap {
	return values.With(key, value)
}

// Validate checks required-field presence against the template and returns
// a field key to message map. An unselected select value (empty string) is
// treated as absent. The engine guards presence, not shape: a non-numeric
// string in a number field passes, and coercion, if any, is the caller's
// responsibility before persistence.
func Validate(values catalog.AttributeMap, template schema.Template) map[string]string {
	errs := make(map[string]string)
	for _, spec := range template.Attributes {
		if spec.Required && values.Get(spec.Key) == "" {
			errs[spec.Key] = fmt.Sprintf("%s is required", spec.Label)
		}
	}
	return errs
}
