package storechecklist

import "mortgage-checklist-workers/internal/models"

type Input struct {
	ApplicationID string                    `json:"applicationId"`
	Checklist     models.GeneratedChecklist `json:"checklist"`
}

type Output struct {
	ChecklistID string `json:"checklistId"`
	Version     int    `json:"checklistVersion"`
	ItemCount   int    `json:"itemCount"`
	Indexed     bool   `json:"indexed"`
	StoredAt    string `json:"storedAt"` // ISO 8601
}

// searchDocument is the flattened shape indexed into Elasticsearch for ops
// lookup by application, section, or document label.
type searchDocument struct {
	ChecklistID   string   `json:"checklistId"`
	ApplicationID string   `json:"applicationId"`
	Version       int      `json:"version"`
	GeneratedAt   string   `json:"generatedAt"`
	TotalItems    int      `json:"totalItems"`
	BorrowerCount int      `json:"borrowerCount"`
	Sections      []string `json:"sections"`
	Labels        []string `json:"labels"`
	InternalFlags int      `json:"internalFlags"`
}
