package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/core/services/validator"
	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/static/errs"
)

var _ IFormSession = (*Session)(nil)

// Session is the single-owner state of the request form. Visible errors are
// keyed by error slot.
type Session struct {
	validator validator.IValidator
	store     submission.ISubmissionStore
	logger    primary.Logger
	latency   time.Duration
	sleep     func(time.Duration)

	mu         sync.Mutex
	view       domain.ViewState
	values     domain.RawFormFields
	errors     map[string]string
	submitting bool
	lastRecord *domain.SubmissionRecord
	lastError  string
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithLatency sets the simulated network delay before a record is stored
func WithLatency(d time.Duration) SessionOption {
	return func(s *Session) {
		s.latency = d
	}
}

// WithSleep overrides how the simulated delay is waited out
func WithSleep(sleep func(time.Duration)) SessionOption {
	return func(s *Session) {
		s.sleep = sleep
	}
}

// NewSession creates a session showing an empty form
func NewSession(v validator.IValidator, store submission.ISubmissionStore, logger primary.Logger, options ...SessionOption) *Session {
	s := &Session{
		validator: v,
		store:     store,
		logger:    logger,
		latency:   1500 * time.Millisecond,
		sleep:     time.Sleep,
		view:      domain.ViewForm,
		errors:    make(map[string]string),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Input records a new value for field. Any modification clears the field's
// visible error without re-validating it.
func (s *Session) Input(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.values.Set(field, value) {
		return fmt.Errorf("%w: %s", errs.ErrUnknownField, field)
	}
	if slot, ok := s.validator.Rules().ErrorSlot(field); ok {
		delete(s.errors, slot)
	}
	return nil
}

// Blur validates the field's current value. Fields without a rule always pass.
func (s *Session) Blur(field string) (*domain.FieldValidationError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, known := s.values.Values()[field]
	if !known {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownField, field)
	}
	if _, governed := s.validator.Rules().Rule(field); !governed {
		return nil, nil
	}

	fieldErr, err := s.validator.ValidateNamed(field, value)
	if err != nil {
		return nil, err
	}
	s.applyFieldResult(field, fieldErr)
	return fieldErr, nil
}

// Fill replaces every value and clears visible errors
func (s *Session) Fill(values domain.RawFormFields) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = values
	s.errors = make(map[string]string)
}

// Submit validates every rule-governed field. On failure every failing field
// shows its error and a *domain.FormValidationError is returned. On success
// the simulated delay is waited out (it cannot be cancelled), the record is
// stored, the form is reset and the success view is shown. A persistence
// failure keeps the typed values for a retry.
func (s *Session) Submit(ctx context.Context) (domain.SubmissionRecord, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return domain.SubmissionRecord{}, errs.ErrSubmitInProgress
	}

	result := s.validator.ValidateRecord(s.values.Values())
	for field, fieldErr := range result.PerField {
		s.applyFieldResult(field, fieldErr)
	}
	if formErr := result.Err(); formErr != nil {
		s.mu.Unlock()
		first := formErr.First()
		s.logger.Info("Submission blocked by validation", "firstInvalidField", first.Field, "invalid", len(formErr.Fields))
		return domain.SubmissionRecord{}, formErr
	}

	s.submitting = true
	s.lastError = ""
	in := s.values
	s.mu.Unlock()

	s.sleep(s.latency)

	// The wait above is not cancellable, so neither is the write.
	record, err := s.store.Create(context.WithoutCancel(ctx), in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		var perr *domain.PersistenceError
		if errors.As(err, &perr) {
			s.lastError = "Your request could not be saved. Please try again."
		} else {
			s.lastError = "Something went wrong. Please try again."
		}
		s.logger.Error("Failed to store submission", "error", err)
		return domain.SubmissionRecord{}, fmt.Errorf("failed to store submission: %w", err)
	}

	s.values = domain.RawFormFields{}
	s.errors = make(map[string]string)
	s.lastRecord = &record
	s.view = domain.ViewSuccess
	s.logger.Info("Submission stored", "id", record.ID)

	return record, nil
}

// Show switches to the form or list view. The success view is only reached
// through Submit.
func (s *Session) Show(view domain.ViewState) error {
	switch view {
	case domain.ViewForm, domain.ViewList:
	default:
		return fmt.Errorf("%w: %q", errs.ErrInvalidView, view)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	return nil
}

// Back returns to the form from the success or list view
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == domain.ViewSuccess || s.view == domain.ViewList {
		s.view = domain.ViewForm
	}
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	errorsCopy := make(map[string]string, len(s.errors))
	for slot, msg := range s.errors {
		errorsCopy[slot] = msg
	}

	snap := domain.SessionSnapshot{
		View:       s.view,
		Values:     s.values,
		Errors:     errorsCopy,
		Submitting: s.submitting,
		LastError:  s.lastError,
	}
	if s.lastRecord != nil {
		record := *s.lastRecord
		snap.LastRecord = &record
	}
	return snap
}

// applyFieldResult shows or clears one field's error. Callers hold mu.
func (s *Session) applyFieldResult(field string, fieldErr *domain.FieldValidationError) {
	slot, ok := s.validator.Rules().ErrorSlot(field)
	if !ok {
		return
	}
	if fieldErr != nil {
		s.errors[slot] = fieldErr.Message
		return
	}
	delete(s.errors, slot)
}
