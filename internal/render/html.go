package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"gitlab.com/webrequest.net/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// FormField is one input of the form view
type FormField struct {
	Name      string
	Label     string
	Value     string
	ErrorSlot string
	Error     string
	Invalid   bool
	Multiline bool
	Options   []Option
}

// Page is everything the page template needs for one view
type Page struct {
	View       domain.ViewState
	Fields     []FormField
	Submitting bool
	LastError  string
	Cards      []Card
}

var fieldLabels = []struct {
	name, label string
}{
	{domain.FieldStudentName, "Full Name"},
	{domain.FieldCourseYear, "Course & Year"},
	{domain.FieldEmail, "Email Address"},
	{domain.FieldWebsiteType, "Type of Website"},
	{domain.FieldBudget, "Budget Range"},
	{domain.FieldTimeline, "Preferred Timeline"},
	{domain.FieldInstructions, "Special Instructions"},
}

// Renderer writes HTML views
type Renderer struct {
	tmpl *template.Template
	loc  *time.Location
}

// NewRenderer parses the embedded templates. Dates render in loc.
func NewRenderer(loc *time.Location) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{tmpl: tmpl, loc: loc}, nil
}

// Location is the display time zone
func (r *Renderer) Location() *time.Location {
	return r.loc
}

// NewPage builds the view model for a session snapshot. records is only
// read for the list view.
func (r *Renderer) NewPage(snap domain.SessionSnapshot, rules *domain.RuleSet, records []domain.SubmissionRecord) Page {
	page := Page{
		View:       snap.View,
		Submitting: snap.Submitting,
		LastError:  snap.LastError,
	}

	values := snap.Values.Values()
	for _, fl := range fieldLabels {
		field := FormField{
			Name:      fl.name,
			Label:     fl.label,
			Value:     values[fl.name],
			Multiline: fl.name == domain.FieldInstructions,
		}
		if slot, ok := rules.ErrorSlot(fl.name); ok {
			field.ErrorSlot = slot
			field.Error, field.Invalid = snap.Errors[slot]
		}
		switch fl.name {
		case domain.FieldWebsiteType:
			field.Options = WebsiteTypeOptions
		case domain.FieldBudget:
			field.Options = BudgetOptions
		}
		page.Fields = append(page.Fields, field)
	}

	if snap.View == domain.ViewList {
		page.Cards = NewCards(records, r.loc)
	}
	return page
}

// Page writes the full HTML document for page
func (r *Renderer) Page(w io.Writer, page Page) error {
	return r.tmpl.ExecuteTemplate(w, "page", page)
}

// List writes only the submission cards, or the empty state
func (r *Renderer) List(w io.Writer, records []domain.SubmissionRecord) error {
	return r.tmpl.ExecuteTemplate(w, "list", Page{View: domain.ViewList, Cards: NewCards(records, r.loc)})
}
