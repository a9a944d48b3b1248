package submissions

import "gitlab.com/webrequest.net/internal/domain"

// ListSubmissionsResponse represents the stored collection, newest first
type ListSubmissionsResponse struct {
	Submissions []domain.SubmissionRecord `json:"submissions"`
	Count       int                       `json:"count"`
}

// CountResponse represents the number of stored submissions
type CountResponse struct {
	Count int `json:"count"`
}
