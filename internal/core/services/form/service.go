package form

import (
	"context"

	"gitlab.com/webrequest.net/internal/domain"
)

// IFormSession drives the page: field edits, blur checks, submit and the
// form/success/list view switch.
type IFormSession interface {
	// Input records a new value for field and clears its visible error
	Input(field, value string) error

	// Blur validates field's current value and shows or clears its error
	Blur(field string) (*domain.FieldValidationError, error)

	// Submit validates every field and, when all pass, stores the record
	Submit(ctx context.Context) (domain.SubmissionRecord, error)

	// Fill replaces every form value at once and clears all visible errors
	Fill(values domain.RawFormFields)

	// Show switches to the form or list view
	Show(view domain.ViewState) error

	// Back returns to the form from the success or list view
	Back()

	// Snapshot returns a copy of the current state
	Snapshot() domain.SessionSnapshot
}
