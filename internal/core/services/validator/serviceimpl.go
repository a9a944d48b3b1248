package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/static/errs"
)

var _ IValidator = (*Validator)(nil)

// Validator evaluates values against a fixed rule set
type Validator struct {
	rules  *domain.RuleSet
	logger primary.Logger
}

// NewValidator creates a validator for rules
func NewValidator(rules *domain.RuleSet, logger primary.Logger) *Validator {
	return &Validator{
		rules:  rules,
		logger: logger,
	}
}

// Rules returns the rule set the validator evaluates
func (v *Validator) Rules() *domain.RuleSet {
	return v.rules
}

// ValidateField checks a single value against rule
func (v *Validator) ValidateField(value string, rule domain.FieldRule) *domain.FieldValidationError {
	return ValidateField(value, rule)
}

// ValidateNamed checks value against the rule governing field
func (v *Validator) ValidateNamed(field, value string) (*domain.FieldValidationError, error) {
	rule, ok := v.rules.Rule(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownField, field)
	}
	fieldErr := ValidateField(value, rule)
	if fieldErr != nil {
		v.logger.Debug("Field failed validation", "field", field, "slot", rule.ErrorSlot)
	}
	return fieldErr, nil
}

// ValidateRecord checks every rule-governed field of a record
func (v *Validator) ValidateRecord(fields map[string]string) RecordResult {
	result := ValidateRecord(fields, v.rules)
	if !result.AllValid {
		v.logger.Debug("Record failed validation", "invalidFields", len(result.Err().Fields))
	}
	return result
}

// ValidateField evaluates value against rule. Checks run in priority order
// (required, then minimum length, then pattern) and only the first failure
// is reported, always with the rule's message.
func ValidateField(value string, rule domain.FieldRule) *domain.FieldValidationError {
	trimmed := strings.TrimSpace(value)

	// Every case but default is a failure.
	switch {
	case rule.Required && trimmed == "":
	case rule.MinLength > 0 && utf8.RuneCountInString(trimmed) < rule.MinLength:
	case rule.Pattern != nil && !rule.Pattern.MatchString(trimmed):
	default:
		return nil
	}

	return &domain.FieldValidationError{
		Field:   rule.Field,
		Slot:    rule.ErrorSlot,
		Message: rule.Message,
	}
}

// RecordResult is the outcome of validating a whole record
type RecordResult struct {
	AllValid bool
	// PerField holds one entry per rule-governed field; nil means the field passed
	PerField map[string]*domain.FieldValidationError

	order []string
}

// FirstInvalid returns the first failing field in rule declaration order
func (r RecordResult) FirstInvalid() (*domain.FieldValidationError, bool) {
	for _, field := range r.order {
		if fieldErr := r.PerField[field]; fieldErr != nil {
			return fieldErr, true
		}
	}
	return nil, false
}

// Err aggregates the failing fields, or returns nil when the record is valid
func (r RecordResult) Err() *domain.FormValidationError {
	if r.AllValid {
		return nil
	}
	formErr := &domain.FormValidationError{}
	for _, field := range r.order {
		if fieldErr := r.PerField[field]; fieldErr != nil {
			formErr.Fields = append(formErr.Fields, fieldErr)
		}
	}
	return formErr
}

// ValidateRecord applies ValidateField to every field governed by rules.
// A failing field never stops the remaining fields from being checked.
// Missing fields are validated as empty.
func ValidateRecord(fields map[string]string, rules *domain.RuleSet) RecordResult {
	result := RecordResult{
		AllValid: true,
		PerField: make(map[string]*domain.FieldValidationError),
		order:    rules.Fields(),
	}

	for _, rule := range rules.Rules() {
		fieldErr := ValidateField(fields[rule.Field], rule)
		result.PerField[rule.Field] = fieldErr
		if fieldErr != nil {
			result.AllValid = false
		}
	}

	return result
}
