package render

import (
	"time"

	"gitlab.com/webrequest.net/internal/domain"
)

// Card is the display form of one stored record
type Card struct {
	ID               string
	Title            string
	Date             string
	StudentName      string
	CourseYear       string
	Email            string
	Budget           string
	Timeline         string
	Status           string
	Instructions     string
	ShowInstructions bool
}

// NewCard derives a card from a record. It is a pure function of its inputs.
func NewCard(record domain.SubmissionRecord, loc *time.Location) Card {
	card := Card{
		ID:          record.ID,
		Title:       DisplayLabel(record.WebsiteType),
		Date:        FormatTimestamp(record.Timestamp, loc),
		StudentName: record.StudentName,
		CourseYear:  record.CourseYear,
		Email:       record.Email,
		Budget:      BudgetRange(record.Budget),
		Timeline:    record.Timeline,
		Status:      StatusLabel(record.Status),
	}
	if record.HasInstructions() {
		card.Instructions = record.Instructions
		card.ShowInstructions = true
	}
	return card
}

// NewCards derives cards for a whole collection, keeping its order
func NewCards(records []domain.SubmissionRecord, loc *time.Location) []Card {
	cards := make([]Card, len(records))
	for i, record := range records {
		cards[i] = NewCard(record, loc)
	}
	return cards
}
