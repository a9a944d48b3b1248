package render

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gitlab.com/webrequest.net/internal/domain"
)

const timestampLayout = "January 2, 2006 at 03:04 PM"

// DisplayLabel turns a coded option value such as "e-commerce" into a
// display label ("E Commerce"). Only the first letter of each word changes.
func DisplayLabel(value string) string {
	spaced := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, value)

	var b strings.Builder
	b.Grow(len(spaced))
	prevWord := false
	for _, r := range spaced {
		word := unicode.IsLetter(r) || unicode.IsDigit(r)
		if word && !prevWord {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prevWord = word
	}
	return b.String()
}

// BudgetRange renders a stored budget range with the peso sign on the upper
// bound: "1000-5000" becomes "1000 - ₱5000".
func BudgetRange(value string) string {
	return strings.Replace(value, "-", " - ₱", 1)
}

// FormatTimestamp renders t as a long date plus hour and minute in loc
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(timestampLayout)
}

// StatusLabel is the human label of a review status
func StatusLabel(status domain.SubmissionStatus) string {
	switch status {
	case domain.SubmissionStatusPending:
		return "Pending Review"
	default:
		return DisplayLabel(string(status))
	}
}

// Option is one choice of a select input
type Option struct {
	Value string
	Label string
}

// WebsiteTypeOptions are the website types offered by the form
var WebsiteTypeOptions = options(DisplayLabel,
	"portfolio", "business", "e-commerce", "blog", "landing-page", "other")

// BudgetOptions are the budget ranges offered by the form
var BudgetOptions = options(func(v string) string { return "₱" + BudgetRange(v) },
	"1000-5000", "5000-10000", "10000-20000", "20000-50000")

func options(label func(string) string, values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: label(v)}
	}
	return out
}

// truncateRunes shortens s to at most n characters
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}
