package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError describes one rejected field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field errors; it is returned before anything
// touches the store.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing was collected.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
	}
}

func (e *ValidationError) nonNegative(field string, v decimal.Decimal) {
	if v.IsNegative() {
		e.Add(field, "must not be negative")
	}
}

func (e *ValidationError) positive(field string, v decimal.Decimal) {
	if !v.IsPositive() {
		e.Add(field, "must be greater than zero")
	}
}

func (e *ValidationError) optionalID(field string, v *string) {
	if v != nil && strings.TrimSpace(*v) == "" {
		e.Add(field, "must not be empty")
	}
}
