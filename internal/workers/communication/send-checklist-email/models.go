package sendchecklistemail

import "mortgage-checklist-workers/internal/models"

type Recipient struct {
	BorrowerID string `json:"borrowerId,omitempty"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type Input struct {
	ApplicationID string                    `json:"applicationId"`
	Recipients    []Recipient               `json:"recipients"`
	Checklist     models.GeneratedChecklist `json:"checklist"`
}

type Output struct {
	MessageIDs []string `json:"messageIds,omitempty"`
	Status     string   `json:"emailStatus"`
	SentCount  int      `json:"sentCount"`
	SentAt     string   `json:"sentAt"` // ISO 8601
}

// Statuses
const (
	StatusSent    = "sent"
	StatusPartial = "partial"
	StatusSkipped = "skipped"
)
