package domain

import (
	"fmt"
	"strings"
)

// FieldValidationError is a field-scoped failure shown next to the field
type FieldValidationError struct {
	Field   string `json:"field"`
	Slot    string `json:"errorSlot"`
	Message string `json:"message"`
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormValidationError aggregates every failing field of one submit.
// Fields are kept in rule declaration order.
type FormValidationError struct {
	Fields []*FieldValidationError
}

func (e *FormValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("form validation failed: %s", strings.Join(names, ", "))
}

// First returns the field that should receive the user's attention
func (e *FormValidationError) First() *FieldValidationError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e.Fields[0]
}

// PersistenceError wraps a failure of the key-value storage area
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
