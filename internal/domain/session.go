package domain

// ViewState is one of the mutually exclusive page views
type ViewState string

const (
	ViewForm    ViewState = "form"
	ViewSuccess ViewState = "success"
	ViewList    ViewState = "list"
)

// SessionSnapshot is a read-only copy of the form session state
type SessionSnapshot struct {
	View       ViewState         `json:"view"`
	Values     RawFormFields     `json:"values"`
	Errors     map[string]string `json:"errors"`
	Submitting bool              `json:"submitting"`
	LastRecord *SubmissionRecord `json:"lastRecord,omitempty"`
	LastError  string            `json:"lastError,omitempty"`
}
