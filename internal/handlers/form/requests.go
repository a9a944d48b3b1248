package form

import "gitlab.com/webrequest.net/internal/domain"

// FieldValueRequest represents a single field edit or blur
type FieldValueRequest struct {
	Value *string `json:"value"`
}

// ViewRequest represents a view switch. "back" returns to the form.
type ViewRequest struct {
	View string `json:"view" validate:"required,oneof=form list back"`
}

// RuleResponse represents one field rule
type RuleResponse struct {
	Field     string `json:"field"`
	Required  bool   `json:"required"`
	MinLength int    `json:"minLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Message   string `json:"message"`
	ErrorSlot string `json:"errorSlot"`
}

// FieldResultResponse represents the outcome of a blur check
type FieldResultResponse struct {
	Field string                       `json:"field"`
	Valid bool                         `json:"valid"`
	Error *domain.FieldValidationError `json:"error,omitempty"`
}

// DraftResponse represents a saved draft
type DraftResponse struct {
	Values domain.Draft `json:"values"`
}

// DraftRequest represents a draft save; nil values save the session's
// current values.
type DraftRequest struct {
	Values map[string]string `json:"values" validate:"omitempty,max=16,dive,max=2000"`
}

func newRuleResponse(rule domain.FieldRule) RuleResponse {
	resp := RuleResponse{
		Field:     rule.Field,
		Required:  rule.Required,
		MinLength: rule.MinLength,
		Message:   rule.Message,
		ErrorSlot: rule.ErrorSlot,
	}
	if rule.Pattern != nil {
		resp.Pattern = rule.Pattern.String()
	}
	return resp
}
