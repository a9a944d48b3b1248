package validator

import (
	"gitlab.com/webrequest.net/internal/domain"
)

// IValidator checks form values against declarative field rules
type IValidator interface {
	// Rules returns the rule set the validator evaluates
	Rules() *domain.RuleSet

	// ValidateField checks a single value; nil means valid
	ValidateField(value string, rule domain.FieldRule) *domain.FieldValidationError

	// ValidateNamed looks up the rule for field and checks value against it
	ValidateNamed(field, value string) (*domain.FieldValidationError, error)

	// ValidateRecord checks every rule-governed field of a record
	ValidateRecord(fields map[string]string) RecordResult
}
