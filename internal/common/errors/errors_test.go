package errors

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_Error(t *testing.T) {
	err := NewChecklistPersistFailedError("app-1", fmt.Errorf("connection reset"))

	assert.Equal(t, ErrCodeChecklistPersistFailed, err.Code)
	assert.Contains(t, err.Error(), "CHECKLIST_PERSIST_FAILED")
	assert.Contains(t, err.Details, "app-1")
	assert.True(t, err.Retryable)
	assert.WithinDuration(t, time.Now().UTC(), err.Timestamp, time.Minute)
}

func TestGetRetryCount(t *testing.T) {
	tests := []struct {
		code    ErrorCode
		retries int
	}{
		{ErrCodeDatabaseConnectionFailed, 3},
		{ErrCodeChecklistPersistFailed, 3},
		{ErrCodeElasticsearchConnectionFailed, 3},
		{ErrCodeChecklistIndexFailed, 3},
		{ErrCodeChecklistEmailFailed, 3},
		{ErrCodeCRMSyncFailed, 3},
		{ErrCodeQueryTimeout, 2},
		{ErrCodeCacheUnavailable, 2},
		{ErrCodeSnapshotParsingFailed, 0},
		{ErrCodeSnapshotValidationFailed, 0},
		{ErrCodeChecklistGenerationFailed, 0},
		{ErrCodeDuplicateChecklistVersion, 0},
		{ErrCodeCRMRecordNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.retries, GetRetryCount(tt.code))
		})
	}
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeDatabaseConnectionFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeCacheUnavailable))
	assert.False(t, IsRetryableErrorCode(ErrCodeSnapshotValidationFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeCRMRecordNotFound))
}

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewChecklistIndexFailedError("app-7", fmt.Errorf("index closed"))

	bpmnErr := ConvertToBPMNError(stdErr)
	require.NotNil(t, bpmnErr)

	assert.Equal(t, "CHECKLIST_INDEX_FAILED", bpmnErr.Code)
	assert.Equal(t, stdErr.Message, bpmnErr.Message)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)
	assert.Equal(t, "CHECKLIST_INDEX_FAILED", bpmnErr.ErrorVariables["originalErrorCode"])
}

func TestConvertToBPMNError_NonRetryableZeroesRetries(t *testing.T) {
	stdErr := NewSnapshotValidationFailedError("borrowers: array is required")

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "SNAPSHOT_VALIDATION_FAILED", bpmnErr.Code)
	assert.False(t, bpmnErr.Retryable)
	assert.Equal(t, 0, bpmnErr.Retries)
}

func TestConvertToBPMNError_UnmappedCodeFallsBack(t *testing.T) {
	stdErr := NewBusinessRuleError("rule violated", "checklist already finalized")

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "BUSINESS_RULE_VIOLATION", bpmnErr.Code)
	assert.Equal(t, 0, bpmnErr.Retries)
}

func TestBPMNError_ToErrorVariables(t *testing.T) {
	bpmnErr := &BPMNError{
		Code:      "CRM_SYNC_FAILED",
		Message:   "CRM checklist sync failed",
		Details:   "applicationId: app-3",
		Retryable: true,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": "CRM_SYNC_FAILED",
		},
	}

	vars := bpmnErr.ToErrorVariables()

	assert.Equal(t, "CRM_SYNC_FAILED", vars["errorCode"])
	assert.Equal(t, "CRM checklist sync failed", vars["errorMessage"])
	assert.Equal(t, "applicationId: app-3", vars["errorDetails"])
	assert.Equal(t, true, vars["retryable"])
	assert.Equal(t, "CRM_SYNC_FAILED", vars["originalErrorCode"])
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		category string
	}{
		{ErrCodeSnapshotParsingFailed, "SNAPSHOT"},
		{ErrCodeDatabaseConnectionFailed, "DATABASE"},
		{ErrCodeQueryTimeout, "DATABASE"},
		{ErrCodeChecklistPersistFailed, "DATABASE"},
		{ErrCodeElasticsearchConnectionFailed, "SEARCH"},
		{ErrCodeChecklistIndexFailed, "SEARCH"},
		{ErrCodeCacheUnavailable, "CACHE"},
		{ErrCodeChecklistEmailFailed, "NOTIFICATION"},
		{ErrCodeCRMSyncFailed, "CRM"},
		{ErrCodeCRMRecordNotFound, "CRM"},
		{ErrCodeChecklistGenerationFailed, "OTHER"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.category, GetErrorCategory(tt.code))
		})
	}
}

func TestErrorHandler_NormalizeError(t *testing.T) {
	h := NewErrorHandler(nil)

	t.Run("standard error passes through", func(t *testing.T) {
		stdErr := NewCRMSyncFailedError("app-9", fmt.Errorf("rate limited"))
		assert.Equal(t, stdErr, h.normalizeError(stdErr))
	})

	t.Run("plain error wrapped as internal error", func(t *testing.T) {
		normalized := h.normalizeError(fmt.Errorf("dial tcp: refused"))
		assert.Equal(t, ErrorCode("INTERNAL_ERROR"), normalized.Code)
		assert.False(t, normalized.Retryable)
		assert.Contains(t, normalized.Details, "dial tcp: refused")
	})
}
