package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/webrequest.net/internal/domain"
)

func sampleRecord(in domain.RawFormFields) domain.SubmissionRecord {
	return domain.NewSubmissionRecord("lz3k9abc", time.Date(2026, time.March, 5, 14, 7, 0, 0, time.UTC), in)
}

func TestDisplayLabel(t *testing.T) {
	cases := map[string]string{
		"portfolio":     "Portfolio",
		"e-commerce":    "E Commerce",
		"landing-page":  "Landing Page",
		"school_org":    "School Org",
		"multi-word-id": "Multi Word Id",
		"3d-showcase":   "3d Showcase",
		"":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, DisplayLabel(in), in)
	}
}

func TestBudgetRange(t *testing.T) {
	assert.Equal(t, "1000 - ₱5000", BudgetRange("1000-5000"))
	assert.Equal(t, "50000+", BudgetRange("50000+"))
	assert.Equal(t, "1 - ₱2-3", BudgetRange("1-2-3"))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "March 5, 2026 at 02:07 PM", FormatTimestamp(ts, time.UTC))

	manila := time.FixedZone("PHT", 8*60*60)
	assert.Equal(t, "March 5, 2026 at 10:07 PM", FormatTimestamp(ts, manila))
}

func TestNewCardInstructionsBlock(t *testing.T) {
	withoutInstructions := NewCard(sampleRecord(domain.RawFormFields{WebsiteType: "portfolio", Budget: "1000-5000"}), time.UTC)
	assert.False(t, withoutInstructions.ShowInstructions)
	assert.Empty(t, withoutInstructions.Instructions)
	assert.Equal(t, "Portfolio", withoutInstructions.Title)
	assert.Equal(t, "1000 - ₱5000", withoutInstructions.Budget)
	assert.Equal(t, "Not specified", withoutInstructions.Timeline)
	assert.Equal(t, "Pending Review", withoutInstructions.Status)

	// typing the placeholder text is still a provided value
	typed := NewCard(sampleRecord(domain.RawFormFields{Instructions: domain.DefaultInstructions}), time.UTC)
	assert.True(t, typed.ShowInstructions)
}

func TestRenderingIsIdempotent(t *testing.T) {
	r, err := NewRenderer(time.UTC)
	require.NoError(t, err)

	records := []domain.SubmissionRecord{
		sampleRecord(domain.RawFormFields{StudentName: "Jo", WebsiteType: "e-commerce", Budget: "1000-5000", Instructions: "Blue"}),
		sampleRecord(domain.RawFormFields{StudentName: "Al", WebsiteType: "blog", Budget: "5000-10000"}),
	}

	var first, second bytes.Buffer
	require.NoError(t, r.List(&first, records))
	require.NoError(t, r.List(&second, records))
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, NewCard(records[0], time.UTC), NewCard(records[0], time.UTC))

	out := first.String()
	assert.Equal(t, 2, strings.Count(out, `class="submission-card"`))
	assert.Equal(t, 1, strings.Count(out, "Special Instructions:"))
	assert.Contains(t, out, "E Commerce")
	assert.Contains(t, out, "1000 - ₱5000")
	assert.Less(t, strings.Index(out, "Jo"), strings.Index(out, "Al"))
}

func TestListEmptyState(t *testing.T) {
	r, err := NewRenderer(time.UTC)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.List(&buf, nil))
	assert.Contains(t, buf.String(), "No submissions yet")
}

func TestListEscapesStoredText(t *testing.T) {
	r, err := NewRenderer(time.UTC)
	require.NoError(t, err)

	var buf bytes.Buffer
	record := sampleRecord(domain.RawFormFields{StudentName: "<script>x</script>", Instructions: "<b>hi</b>"})
	require.NoError(t, r.List(&buf, []domain.SubmissionRecord{record}))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;b&gt;hi&lt;/b&gt;")
}

func TestPageShowsFieldErrors(t *testing.T) {
	r, err := NewRenderer(time.UTC)
	require.NoError(t, err)

	rules, err := domain.NewRuleSet(domain.FieldRule{Field: domain.FieldEmail, Required: true, Message: "Email please", ErrorSlot: "emailError"})
	require.NoError(t, err)

	snap := domain.SessionSnapshot{
		View:   domain.ViewForm,
		Values: domain.RawFormFields{Email: "bad", Budget: "5000-10000"},
		Errors: map[string]string{"emailError": "Email please"},
	}
	page := r.NewPage(snap, rules, nil)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, page))
	out := buf.String()
	assert.Contains(t, out, `id="emailError" class="error-message visible">Email please`)
	assert.Contains(t, out, `<option value="5000-10000" selected>`)
	assert.Contains(t, out, `value="bad"`)
}

func TestEmailContent(t *testing.T) {
	record := sampleRecord(domain.RawFormFields{
		StudentName: "Jo", CourseYear: "BSIT-3", Email: "jo@x.com",
		WebsiteType: "portfolio", Budget: "1000-5000",
	})
	body := EmailContent(record, time.UTC)

	assert.True(t, strings.HasPrefix(body, "Subject: Website Request - Jo\n"))
	assert.Contains(t, body, "Timeline: Not specified\n")
	assert.Contains(t, body, "Special Instructions:\nNo additional instructions provided\n")
	assert.Contains(t, body, "Submitted on: March 5, 2026 at 02:07 PM")
	assert.True(t, strings.HasSuffix(body, "---\nWebsite Request Platform"))
}

func TestTextCard(t *testing.T) {
	card := NewCard(sampleRecord(domain.RawFormFields{StudentName: "Jo", WebsiteType: "blog", Instructions: strings.Repeat("x", 300)}), time.UTC)
	out := TextCard(card)
	assert.Contains(t, out, "Blog  (March 5, 2026 at 02:07 PM)")
	assert.Contains(t, out, "Special Instructions: "+strings.Repeat("x", 200)+"…")
}
