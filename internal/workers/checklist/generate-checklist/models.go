package generatechecklist

import (
	"encoding/json"

	"mortgage-checklist-workers/internal/models"
)

type Input struct {
	ApplicationSnapshot json.RawMessage `json:"applicationSnapshot"`
	ReferenceDate       string          `json:"referenceDate,omitempty"` // ISO 8601 date, defaults to now
	ActivatedRules      []string        `json:"activatedRules,omitempty"`
}

type Output struct {
	ApplicationID     string                     `json:"applicationId"`
	GeneratedAt       string                     `json:"generatedAt"`
	TotalItems        int                        `json:"totalItems"`
	BorrowerCount     int                        `json:"borrowerCount"`
	PropertyCount     int                        `json:"propertyCount"`
	InternalFlagCount int                        `json:"internalFlagCount"`
	Warnings          []string                   `json:"warnings,omitempty"`
	Cached            bool                       `json:"cached"`
	Checklist         *models.GeneratedChecklist `json:"checklist"`
}
