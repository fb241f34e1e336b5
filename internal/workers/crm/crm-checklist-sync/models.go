package crmchecklistsync

import "mortgage-checklist-workers/internal/models"

type Input struct {
	ApplicationID string                    `json:"applicationId"`
	CRMRecordID   string                    `json:"crmRecordId,omitempty"`
	Checklist     models.GeneratedChecklist `json:"checklist"`
}

type Output struct {
	RecordID   string `json:"crmRecordId"`
	FieldCount int    `json:"fieldCount"`
	NoteAdded  bool   `json:"noteAdded"`
	SyncedAt   string `json:"syncedAt"` // ISO 8601
}
