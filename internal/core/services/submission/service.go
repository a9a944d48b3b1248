package submission

import (
	"context"

	"gitlab.com/webrequest.net/internal/domain"
)

// ISubmissionStore owns the persisted collection of website requests
type ISubmissionStore interface {
	// Create assembles a pending record from the form fields and prepends it
	Create(ctx context.Context, in domain.RawFormFields) (domain.SubmissionRecord, error)

	// ListAll returns every record, newest first
	ListAll(ctx context.Context) ([]domain.SubmissionRecord, error)

	// Get returns a single record by id
	Get(ctx context.Context, id string) (domain.SubmissionRecord, error)

	// Count returns the number of stored records
	Count(ctx context.Context) (int, error)

	// ExportAll serializes the whole collection for download
	ExportAll(ctx context.Context) (*Export, error)

	// Clear destroys the whole collection
	Clear(ctx context.Context) error
}

// IDraftStore keeps unfinished form values between visits
type IDraftStore interface {
	SaveDraft(ctx context.Context, values map[string]string) error
	LoadDraft(ctx context.Context) (domain.Draft, error)
	ClearDraft(ctx context.Context) error
}

// Export is a downloadable serialization of the collection
type Export struct {
	Filename string
	Data     []byte
}

// DataURI renders the export as a data URI for download triggers
func (e *Export) DataURI() string {
	return "data:application/json;charset=utf-8," + encodeURIComponent(string(e.Data))
}
