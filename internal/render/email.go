package render

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/webrequest.net/internal/domain"
)

// EmailContent is the plain-text notification sent for a new request
func EmailContent(record domain.SubmissionRecord, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: Website Request - %s\n\n", record.StudentName)
	b.WriteString("Hello!\n\n")
	b.WriteString("A new website request has been submitted:\n\n")
	fmt.Fprintf(&b, "Student Name: %s\n", record.StudentName)
	fmt.Fprintf(&b, "Course & Year: %s\n", record.CourseYear)
	fmt.Fprintf(&b, "Email: %s\n", record.Email)
	fmt.Fprintf(&b, "Website Type: %s\n", record.WebsiteType)
	fmt.Fprintf(&b, "Budget: %s\n", record.Budget)
	fmt.Fprintf(&b, "Timeline: %s\n\n", record.Timeline)
	fmt.Fprintf(&b, "Special Instructions:\n%s\n\n", record.Instructions)
	fmt.Fprintf(&b, "Submitted on: %s\n\n", FormatTimestamp(record.Timestamp, loc))
	b.WriteString("---\nWebsite Request Platform")
	return b.String()
}

// TextCard renders a card for terminal output
func TextCard(card Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  (%s)\n", card.Title, card.Date)
	fmt.Fprintf(&b, "  Name:          %s\n", card.StudentName)
	fmt.Fprintf(&b, "  Course & Year: %s\n", card.CourseYear)
	fmt.Fprintf(&b, "  Email:         %s\n", card.Email)
	fmt.Fprintf(&b, "  Budget:        %s\n", card.Budget)
	fmt.Fprintf(&b, "  Timeline:      %s\n", card.Timeline)
	fmt.Fprintf(&b, "  Status:        %s\n", card.Status)
	if card.ShowInstructions {
		fmt.Fprintf(&b, "  Special Instructions: %s\n", truncateRunes(card.Instructions, 200))
	}
	return b.String()
}
