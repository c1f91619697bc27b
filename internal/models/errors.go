package models

import "errors"

var (
	// ErrNotFound is returned when no row exists for the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a unique email constraint is hit
	// before or during an insert.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrValidation wraps malformed field values (bad date format, unknown
	// enum value). Handlers map anything under it to 400.
	ErrValidation = errors.New("validation failed")
)

// FieldError reports a single missing or malformed required field. Handlers
// map it to a 400 response carrying the field name.
type FieldError struct {
	Field string
}

func (e FieldError) Error() string {
	return e.Field + " is required"
}

// RequiredField pairs a wire-level field name with its parsed value for
// presence checking.
type RequiredField struct {
	Name  string
	Value any
}

// Required returns a FieldError for the first field whose value is absent.
// A field is absent when it is nil, an empty string, or a nil pointer.
func Required(fields ...RequiredField) error {
	for _, f := range fields {
		if fieldMissing(f.Value) {
			return FieldError{Field: f.Name}
		}
	}
	return nil
}

func fieldMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case *string:
		return val == nil || *val == ""
	case *int:
		return val == nil
	case *int64:
		return val == nil
	default:
		return false
	}
}
