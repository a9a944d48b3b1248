package domain

import (
	"strings"
	"time"
)

// SubmissionStatus represents the review status of a website request
type SubmissionStatus string

const (
	SubmissionStatusPending SubmissionStatus = "pending"
)

const (
	DefaultTimeline     = "Not specified"
	DefaultInstructions = "No additional instructions provided"
)

// Storage keys of the persisted state layout
const (
	SubmissionsKey = "websiteRequests"
	DraftKey       = "websiteRequestDraft"
)

// RawFormFields holds the values exactly as they were typed into the form
type RawFormFields struct {
	StudentName  string `json:"studentName"`
	CourseYear   string `json:"courseYear"`
	Email        string `json:"email"`
	WebsiteType  string `json:"websiteType"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	Instructions string `json:"instructions"`
}

// Values returns the fields keyed by their form field name
func (f RawFormFields) Values() map[string]string {
	return map[string]string{
		FieldStudentName:  f.StudentName,
		FieldCourseYear:   f.CourseYear,
		FieldEmail:        f.Email,
		FieldWebsiteType:  f.WebsiteType,
		FieldBudget:       f.Budget,
		FieldTimeline:     f.Timeline,
		FieldInstructions: f.Instructions,
	}
}

// Set assigns value to the named field. It reports false for unknown names.
func (f *RawFormFields) Set(name, value string) bool {
	switch name {
	case FieldStudentName:
		f.StudentName = value
	case FieldCourseYear:
		f.CourseYear = value
	case FieldEmail:
		f.Email = value
	case FieldWebsiteType:
		f.WebsiteType = value
	case FieldBudget:
		f.Budget = value
	case FieldTimeline:
		f.Timeline = value
	case FieldInstructions:
		f.Instructions = value
	default:
		return false
	}
	return true
}

// FieldsFromValues builds RawFormFields from a name/value map, ignoring unknown names
func FieldsFromValues(values map[string]string) RawFormFields {
	var f RawFormFields
	for name, value := range values {
		f.Set(name, value)
	}
	return f
}

// SubmissionRecord represents one captured website request
type SubmissionRecord struct {
	ID                   string           `json:"id"`
	Timestamp            time.Time        `json:"timestamp"`
	StudentName          string           `json:"studentName"`
	CourseYear           string           `json:"courseYear"`
	Email                string           `json:"email"`
	WebsiteType          string           `json:"websiteType"`
	Budget               string           `json:"budget"`
	Timeline             string           `json:"timeline"`
	TimelineProvided     *bool            `json:"timelineProvided,omitempty"`
	Instructions         string           `json:"instructions"`
	InstructionsProvided *bool            `json:"instructionsProvided,omitempty"`
	Status               SubmissionStatus `json:"status"`
}

// NewSubmissionRecord assembles a pending record from validated form input.
// Optional fields left empty fall back to their placeholder text.
func NewSubmissionRecord(id string, createdAt time.Time, in RawFormFields) SubmissionRecord {
	timeline, hasTimeline := optional(in.Timeline, DefaultTimeline)
	instructions, hasInstructions := optional(in.Instructions, DefaultInstructions)

	return SubmissionRecord{
		ID:                   id,
		Timestamp:            createdAt.UTC().Truncate(time.Millisecond),
		StudentName:          in.StudentName,
		CourseYear:           in.CourseYear,
		Email:                in.Email,
		WebsiteType:          in.WebsiteType,
		Budget:               in.Budget,
		Timeline:             timeline,
		TimelineProvided:     &hasTimeline,
		Instructions:         instructions,
		InstructionsProvided: &hasInstructions,
		Status:               SubmissionStatusPending,
	}
}

func optional(value, placeholder string) (string, bool) {
	if value == "" {
		return placeholder, false
	}
	return value, true
}

// HasTimeline reports whether the requester gave a timeline. Records stored
// before presence flags existed fall back to comparing against the placeholder.
func (r SubmissionRecord) HasTimeline() bool {
	if r.TimelineProvided != nil {
		return *r.TimelineProvided
	}
	return r.Timeline != DefaultTimeline
}

// HasInstructions reports whether the requester gave special instructions
func (r SubmissionRecord) HasInstructions() bool {
	if r.InstructionsProvided != nil {
		return *r.InstructionsProvided
	}
	return r.Instructions != DefaultInstructions
}

// Draft is a partial set of non-empty form values kept between visits
type Draft map[string]string

// NewDraft keeps only the values that are non-empty after trimming
func NewDraft(values map[string]string) Draft {
	d := Draft{}
	for name, value := range values {
		if strings.TrimSpace(value) != "" {
			d[name] = value
		}
	}
	return d
}
