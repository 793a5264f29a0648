package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationError collects per-field problems, typically from a Config.Validate
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Error lists the fields in sorted order so messages are stable
func (v *ValidationError) Error() string {
	if !v.HasErrors() {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range slices.Sorted(maps.Keys(v.Fields)) {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return b.String()
}

// AddFieldError records message against field
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// AddFieldErrorf records a formatted message against field
func (v *ValidationError) AddFieldErrorf(field, format string, args ...interface{}) {
	v.AddFieldError(field, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any field was recorded
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts to an InvalidArgument *Error carrying the fields as
// "validation_errors" metadata. It returns nil when nothing was recorded.
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder accumulates field errors fluently
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: NewValidationError()}
}

// Field records message against field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf records a formatted message against field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	vb.err.AddFieldErrorf(field, format, args...)
	return vb
}

// RequiredField records a missing dependency or value
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a value rejected for reason
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns nil when no field was recorded. The result is an error
// interface so a nil return compares equal to nil.
func (vb *ValidationBuilder) Build() error {
	if !vb.err.HasErrors() {
		return nil
	}
	return vb.err.ToError()
}

// ValidateMin records field when value < minValue
func ValidateMin(field string, value, minValue int, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %d", minValue)
	}
}

// ValidateRange records field when value falls outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum records field when value is not one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}
