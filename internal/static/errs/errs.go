package errs

import "errors"

var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrUnknownField     = errors.New("unknown form field")
	ErrDraftDisabled    = errors.New("draft autosave is disabled")
	ErrRecordNotFound   = errors.New("submission not found")
	ErrInvalidView      = errors.New("invalid view")
	ErrUnknownDriver    = errors.New("unknown storage driver")
)
