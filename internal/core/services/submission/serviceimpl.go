package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/ports/secondary"
	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/static/errs"
)

var (
	_ ISubmissionStore = (*SubmissionStore)(nil)
	_ IDraftStore      = (*SubmissionStore)(nil)
)

// SubmissionStore persists website requests as one JSON array under
// domain.SubmissionsKey, newest first.
type SubmissionStore struct {
	kv         secondary.KeyValueStore
	logger     primary.Logger
	ids        *IDGenerator
	now        func() time.Time
	maxRecords int
	drafts     bool

	// mu serializes read-modify-write of the collection within this process
	mu sync.Mutex
}

// StoreOption configures a SubmissionStore
type StoreOption func(*SubmissionStore)

// WithMaxRecords caps the collection size; the oldest records are dropped
// on write. Zero keeps every record.
func WithMaxRecords(n int) StoreOption {
	return func(s *SubmissionStore) {
		s.maxRecords = n
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) StoreOption {
	return func(s *SubmissionStore) {
		s.now = now
	}
}

// WithIDGenerator overrides the id generator
func WithIDGenerator(ids *IDGenerator) StoreOption {
	return func(s *SubmissionStore) {
		s.ids = ids
	}
}

// WithDrafts enables the draft operations
func WithDrafts(enabled bool) StoreOption {
	return func(s *SubmissionStore) {
		s.drafts = enabled
	}
}

// NewSubmissionStore creates a store on top of kv
func NewSubmissionStore(kv secondary.KeyValueStore, logger primary.Logger, options ...StoreOption) *SubmissionStore {
	store := &SubmissionStore{
		kv:     kv,
		logger: logger,
		ids:    NewIDGenerator(),
		now:    time.Now,
	}

	for _, option := range options {
		option(store)
	}

	return store
}

// Create assembles a pending record and prepends it to the collection
func (s *SubmissionStore) Create(ctx context.Context, in domain.RawFormFields) (domain.SubmissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return domain.SubmissionRecord{}, err
	}

	record := domain.NewSubmissionRecord(s.ids.NewID(), s.now(), in)

	updated := make([]domain.SubmissionRecord, 0, len(records)+1)
	updated = append(updated, record)
	updated = append(updated, records...)

	if s.maxRecords > 0 && len(updated) > s.maxRecords {
		s.logger.Warn("Dropping oldest submissions over retention cap",
			"dropped", len(updated)-s.maxRecords,
			"cap", s.maxRecords)
		updated = updated[:s.maxRecords]
	}

	if err := s.save(ctx, updated); err != nil {
		return domain.SubmissionRecord{}, err
	}

	s.logger.Info("Submission created", "id", record.ID, "count", len(updated))
	return record, nil
}

// ListAll returns every record, newest first. Nothing stored yet is an
// empty collection, not an error.
func (s *SubmissionStore) ListAll(ctx context.Context) ([]domain.SubmissionRecord, error) {
	return s.load(ctx)
}

// Get returns the record with the given id
func (s *SubmissionStore) Get(ctx context.Context, id string) (domain.SubmissionRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return domain.SubmissionRecord{}, err
	}
	for _, record := range records {
		if record.ID == id {
			return record, nil
		}
	}
	return domain.SubmissionRecord{}, fmt.Errorf("%w: %s", errs.ErrRecordNotFound, id)
}

// Count returns the number of stored records
func (s *SubmissionStore) Count(ctx context.Context) (int, error) {
	records, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// ExportAll pretty-prints the collection under a file name carrying today's date
func (s *SubmissionStore) ExportAll(ctx context.Context) (*Export, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}

	return &Export{
		Filename: fmt.Sprintf("website-requests-%s.json", s.now().UTC().Format("2006-01-02")),
		Data:     data,
	}, nil
}

// Clear destroys the whole collection
func (s *SubmissionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, domain.SubmissionsKey); err != nil {
		s.logger.Error("Failed to clear submissions", "error", err)
		return &domain.PersistenceError{Op: "delete", Key: domain.SubmissionsKey, Err: err}
	}
	s.logger.Info("Submissions cleared")
	return nil
}

// SaveDraft stores the non-empty values of an unfinished form. A draft with
// no values is not written.
func (s *SubmissionStore) SaveDraft(ctx context.Context, values map[string]string) error {
	if !s.drafts {
		return errs.ErrDraftDisabled
	}

	draft := domain.NewDraft(values)
	if len(draft) == 0 {
		return nil
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.kv.Set(ctx, domain.DraftKey, string(data)); err != nil {
		s.logger.Error("Failed to save draft", "error", err)
		return &domain.PersistenceError{Op: "write", Key: domain.DraftKey, Err: err}
	}
	return nil
}

// LoadDraft returns the saved draft, or an empty draft when none exists
func (s *SubmissionStore) LoadDraft(ctx context.Context) (domain.Draft, error) {
	if !s.drafts {
		return nil, errs.ErrDraftDisabled
	}

	raw, ok, err := s.kv.Get(ctx, domain.DraftKey)
	if err != nil {
		s.logger.Error("Failed to read draft", "error", err)
		return nil, &domain.PersistenceError{Op: "read", Key: domain.DraftKey, Err: err}
	}
	draft := domain.Draft{}
	if !ok {
		return draft, nil
	}
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		s.logger.Warn("Discarding malformed draft", "error", err)
		return domain.Draft{}, nil
	}
	return draft, nil
}

// ClearDraft removes the saved draft
func (s *SubmissionStore) ClearDraft(ctx context.Context) error {
	if !s.drafts {
		return errs.ErrDraftDisabled
	}
	if err := s.kv.Delete(ctx, domain.DraftKey); err != nil {
		return &domain.PersistenceError{Op: "delete", Key: domain.DraftKey, Err: err}
	}
	return nil
}

func (s *SubmissionStore) load(ctx context.Context) ([]domain.SubmissionRecord, error) {
	raw, ok, err := s.kv.Get(ctx, domain.SubmissionsKey)
	if err != nil {
		s.logger.Error("Failed to read submissions", "error", err)
		return nil, &domain.PersistenceError{Op: "read", Key: domain.SubmissionsKey, Err: err}
	}

	records := []domain.SubmissionRecord{}
	if !ok || strings.TrimSpace(raw) == "" {
		return records, nil
	}

	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("Stored submissions are malformed, treating as empty",
			"key", domain.SubmissionsKey,
			"error", err)
		return []domain.SubmissionRecord{}, nil
	}
	if records == nil {
		records = []domain.SubmissionRecord{}
	}

	return records, nil
}

func (s *SubmissionStore) save(ctx context.Context, records []domain.SubmissionRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal submissions: %w", err)
	}

	if err := s.kv.Set(ctx, domain.SubmissionsKey, string(data)); err != nil {
		s.logger.Error("Failed to save submissions", "error", err)
		return &domain.PersistenceError{Op: "write", Key: domain.SubmissionsKey, Err: err}
	}
	return nil
}
