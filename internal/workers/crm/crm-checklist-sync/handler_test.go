package crmchecklistsync

import (
	"context"
	"errors"
	"testing"

	"mortgage-checklist-workers/internal/common/logger"
	"mortgage-checklist-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCRM struct {
	updatedModule string
	updatedRecord string
	updatedFields map[string]interface{}
	updateErr     error

	searchResults []map[string]interface{}
	searchErr     error

	noteRecord string
	noteTitle  string
	noteBody   string
	noteErr    error
}

func (f *fakeCRM) UpdateRecordFields(ctx context.Context, module, recordID string, fields map[string]interface{}) error {
	f.updatedModule = module
	f.updatedRecord = recordID
	f.updatedFields = fields
	return f.updateErr
}

func (f *fakeCRM) SearchRecords(ctx context.Context, module, field, value string) ([]map[string]interface{}, error) {
	return f.searchResults, f.searchErr
}

func (f *fakeCRM) AttachNote(ctx context.Context, module, recordID, title, content string) error {
	f.noteRecord = recordID
	f.noteTitle = title
	f.noteBody = content
	return f.noteErr
}

func testChecklist() models.GeneratedChecklist {
	return models.GeneratedChecklist{
		ApplicationID: "app-1",
		GeneratedAt:   "2026-06-15T00:00:00Z",
		Borrowers: []models.BorrowerChecklist{
			{
				BorrowerID:   "b-1",
				BorrowerName: "Dana Roy",
				IsMain:       true,
				Items: []models.ChecklistItem{
					{RuleID: "identity.photo_id", Label: "Government-issued photo ID", Stage: "PRE", ForEmail: true},
					{RuleID: "employment.letter", Label: "Employment letter", Stage: "PRE", ForEmail: true},
				},
			},
		},
		Shared: []models.ChecklistItem{
			{RuleID: "down_payment.bank_statements_90d", Label: "90 days of bank statements", Stage: "PRE", ForEmail: true},
		},
		InternalFlags: []models.InternalFlag{
			{RuleID: "employment.probation_confirmation", Label: "Confirm probation status"},
		},
		Stats: models.ChecklistStats{TotalItems: 3, BorrowerCount: 1},
	}
}

func TestExecute_SyncsFields(t *testing.T) {
	crm := &fakeCRM{}
	h := NewHandler(LoadConfig(), crm, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		CRMRecordID:   "rec-42",
		Checklist:     testChecklist(),
	})
	require.NoError(t, err)

	assert.Equal(t, "rec-42", output.RecordID)
	assert.True(t, output.NoteAdded)
	assert.Equal(t, "Deals", crm.updatedModule)
	assert.Equal(t, "rec-42", crm.updatedRecord)

	assert.Equal(t, 3, crm.updatedFields["Checklist_Total_Items"])
	assert.Equal(t, 1, crm.updatedFields["Checklist_Borrower_Count"])
	assert.Equal(t, 1, crm.updatedFields["Checklist_Internal_Flags"])
	assert.Equal(t, "2026-06-15T00:00:00Z", crm.updatedFields["Checklist_Generated_At"])

	documents, ok := crm.updatedFields["Checklist_Documents"].(string)
	require.True(t, ok)
	assert.Contains(t, documents, "Employment letter")
	assert.Contains(t, documents, "90 days of bank statements")

	assert.Equal(t, "rec-42", crm.noteRecord)
	assert.Contains(t, crm.noteBody, "Dana Roy")
	assert.Contains(t, crm.noteBody, "Government-issued photo ID")
}

func TestExecute_SearchesWhenNoRecordID(t *testing.T) {
	crm := &fakeCRM{
		searchResults: []map[string]interface{}{{"id": "rec-7"}},
	}
	h := NewHandler(LoadConfig(), crm, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Checklist:     testChecklist(),
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-7", output.RecordID)
	assert.Equal(t, "rec-7", crm.updatedRecord)
}

func TestExecute_RecordNotFound(t *testing.T) {
	crm := &fakeCRM{searchResults: nil}
	h := NewHandler(LoadConfig(), crm, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Checklist:     testChecklist(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCRMRecordNotFound)
}

func TestExecute_UpdateFailureIsRetryable(t *testing.T) {
	crm := &fakeCRM{updateErr: errors.New("zoho 500")}
	h := NewHandler(LoadConfig(), crm, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		CRMRecordID:   "rec-42",
		Checklist:     testChecklist(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCRMSyncFailed)
}

func TestExecute_NoteFailureIsNonFatal(t *testing.T) {
	crm := &fakeCRM{noteErr: errors.New("notes disabled")}
	h := NewHandler(LoadConfig(), crm, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		CRMRecordID:   "rec-42",
		Checklist:     testChecklist(),
	})
	require.NoError(t, err)
	assert.False(t, output.NoteAdded)
}

func TestBuildFields_CapsDocumentList(t *testing.T) {
	cl := testChecklist()
	for i := 0; i < maxSyncedLabels+10; i++ {
		cl.Shared = append(cl.Shared, models.ChecklistItem{
			RuleID: "extra", Label: "Extra document", ForEmail: true,
		})
	}

	fields := buildFields(&cl)
	documents := fields["Checklist_Documents"].(string)
	lines := len(splitNonEmptyLines(documents))
	assert.Equal(t, maxSyncedLabels, lines)
}

func splitNonEmptyLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
