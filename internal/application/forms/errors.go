package forms

// ValidationError is the structured rejection for attribute validation:
// a field key to message map surfaced synchronously to the caller.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "attribute validation failed"
}

// NewValidationError wraps a non-empty field error map; it returns nil for
// an empty map so callers can propagate the result directly.
func NewValidationError(fields map[string]string) *ValidationError {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
