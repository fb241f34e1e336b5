// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeSnapshotParsingFailed    ErrorCode = "SNAPSHOT_PARSING_FAILED"
	ErrCodeSnapshotValidationFailed ErrorCode = "SNAPSHOT_VALIDATION_FAILED"

	ErrCodeChecklistGenerationFailed ErrorCode = "CHECKLIST_GENERATION_FAILED"
	ErrCodeChecklistNotFound         ErrorCode = "CHECKLIST_NOT_FOUND"

	ErrCodeDatabaseConnectionFailed  ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeChecklistPersistFailed    ErrorCode = "CHECKLIST_PERSIST_FAILED"
	ErrCodeQueryTimeout              ErrorCode = "QUERY_TIMEOUT"
	ErrCodeDuplicateChecklistVersion ErrorCode = "DUPLICATE_CHECKLIST_VERSION"

	ErrCodeElasticsearchConnectionFailed ErrorCode = "ELASTICSEARCH_CONNECTION_FAILED"
	ErrCodeChecklistIndexFailed          ErrorCode = "CHECKLIST_INDEX_FAILED"
	ErrCodeIndexNotFound                 ErrorCode = "INDEX_NOT_FOUND"

	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeChecklistEmailFailed ErrorCode = "CHECKLIST_EMAIL_FAILED"
	ErrCodeCRMSyncFailed        ErrorCode = "CRM_SYNC_FAILED"
	ErrCodeCRMRecordNotFound    ErrorCode = "CRM_RECORD_NOT_FOUND"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewSnapshotParsingFailedError creates a non-retryable snapshot parsing error.
func NewSnapshotParsingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSnapshotParsingFailed,
		Message:   "Application snapshot could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSnapshotValidationFailedError creates a non-retryable snapshot validation error.
func NewSnapshotValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSnapshotValidationFailed,
		Message:   "Application snapshot failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewChecklistGenerationFailedError creates a non-retryable generation error.
func NewChecklistGenerationFailedError(applicationID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChecklistGenerationFailed,
		Message:   "Checklist generation failed",
		Details:   fmt.Sprintf("applicationId: %s, error: %s", applicationID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewChecklistNotFoundError creates a non-retryable lookup error.
func NewChecklistNotFoundError(applicationID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeChecklistNotFound,
		Message:   "No generated checklist found for application",
		Details:   fmt.Sprintf("applicationId: %s", applicationID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewChecklistPersistFailedError creates a retryable persistence error.
func NewChecklistPersistFailedError(applicationID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChecklistPersistFailed,
		Message:   "Checklist persistence failed",
		Details:   fmt.Sprintf("applicationId: %s, error: %s", applicationID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("operation: %s", operation),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateChecklistVersionError creates a non-retryable duplicate version error.
func NewDuplicateChecklistVersionError(applicationID string, version int) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateChecklistVersion,
		Message:   "Checklist version already stored for application",
		Details:   fmt.Sprintf("applicationId: %s, version: %d", applicationID, version),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewElasticsearchConnectionFailedError creates a retryable Elasticsearch connection error.
func NewElasticsearchConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeElasticsearchConnectionFailed,
		Message:   "Elasticsearch connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewChecklistIndexFailedError creates a retryable search indexing error.
func NewChecklistIndexFailedError(applicationID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChecklistIndexFailed,
		Message:   "Checklist search indexing failed",
		Details:   fmt.Sprintf("applicationId: %s, error: %s", applicationID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewIndexNotFoundError creates a non-retryable index not found error.
func NewIndexNotFoundError(indexName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIndexNotFound,
		Message:   "Elasticsearch index not found",
		Details:   fmt.Sprintf("indexName: %s", indexName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Checklist cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewChecklistEmailFailedError creates a retryable email delivery error.
func NewChecklistEmailFailedError(recipient string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChecklistEmailFailed,
		Message:   "Checklist email delivery failed",
		Details:   fmt.Sprintf("recipient: %s, error: %s", recipient, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCRMSyncFailedError creates a retryable CRM sync error.
func NewCRMSyncFailedError(applicationID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCRMSyncFailed,
		Message:   "CRM checklist sync failed",
		Details:   fmt.Sprintf("applicationId: %s, error: %s", applicationID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCRMRecordNotFoundError creates a non-retryable CRM lookup error.
func NewCRMRecordNotFoundError(recordID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCRMRecordNotFound,
		Message:   "CRM record not found",
		Details:   fmt.Sprintf("recordId: %s", recordID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewAuthenticationError(details string) *StandardError {
	return &StandardError{
		Code:      "AUTHENTICATION_ERROR",
		Message:   "Authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes (same as internal).
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeSnapshotParsingFailed:         "SNAPSHOT_PARSING_FAILED",
	ErrCodeSnapshotValidationFailed:      "SNAPSHOT_VALIDATION_FAILED",
	ErrCodeChecklistGenerationFailed:     "CHECKLIST_GENERATION_FAILED",
	ErrCodeChecklistNotFound:             "CHECKLIST_NOT_FOUND",
	ErrCodeDatabaseConnectionFailed:      "DATABASE_CONNECTION_FAILED",
	ErrCodeChecklistPersistFailed:        "CHECKLIST_PERSIST_FAILED",
	ErrCodeQueryTimeout:                  "QUERY_TIMEOUT",
	ErrCodeDuplicateChecklistVersion:     "DUPLICATE_CHECKLIST_VERSION",
	ErrCodeElasticsearchConnectionFailed: "ELASTICSEARCH_CONNECTION_FAILED",
	ErrCodeChecklistIndexFailed:          "CHECKLIST_INDEX_FAILED",
	ErrCodeIndexNotFound:                 "INDEX_NOT_FOUND",
	ErrCodeCacheUnavailable:              "CACHE_UNAVAILABLE",
	ErrCodeChecklistEmailFailed:          "CHECKLIST_EMAIL_FAILED",
	ErrCodeCRMSyncFailed:                 "CRM_SYNC_FAILED",
	ErrCodeCRMRecordNotFound:             "CRM_RECORD_NOT_FOUND",
}

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeChecklistPersistFailed,
		ErrCodeElasticsearchConnectionFailed,
		ErrCodeChecklistIndexFailed,
		ErrCodeChecklistEmailFailed,
		ErrCodeCRMSyncFailed:
		return 3 // Retryable technical errors

	case ErrCodeQueryTimeout,
		ErrCodeCacheUnavailable:
		return 2 // Partial retry for timeouts and cache outages

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SNAPSHOT"):
		return "SNAPSHOT"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY") || strings.Contains(codeStr, "PERSIST"):
		return "DATABASE"
	case strings.Contains(codeStr, "ELASTICSEARCH") || strings.Contains(codeStr, "INDEX"):
		return "SEARCH"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "EMAIL"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "CRM"):
		return "CRM"
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
