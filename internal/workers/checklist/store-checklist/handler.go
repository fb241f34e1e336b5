package storechecklist

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mortgage-checklist-workers/internal/common/logger"
	"mortgage-checklist-workers/internal/common/metrics"
	"mortgage-checklist-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "checklist.store"
)

var (
	ErrChecklistPersistFailed = errors.New("CHECKLIST_PERSIST_FAILED")
	ErrInvalidChecklist       = errors.New("INVALID_CHECKLIST")
)

// SearchIndexer indexes a checklist document for ops lookup.
type SearchIndexer interface {
	Index(ctx context.Context, index, docID string, body []byte) error
}

type Handler struct {
	config  *Config
	db      *sql.DB
	indexer SearchIndexer
	logger  logger.Logger
}

// NewHandler creates the persistence handler. indexer may be nil when
// Elasticsearch is disabled.
func NewHandler(config *Config, db *sql.DB, indexer SearchIndexer, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		db:      db,
		indexer: indexer,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer func() {
		metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()
		metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	}()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err), 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "CHECKLIST_PERSIST_FAILED"
		retries := int32(3)
		if errors.Is(err, ErrInvalidChecklist) {
			errorCode = "INVALID_CHECKLIST"
			retries = 0
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
		h.failJob(client, job, errorCode, err.Error(), retries)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	applicationID := input.ApplicationID
	if applicationID == "" {
		applicationID = input.Checklist.ApplicationID
	}
	if applicationID == "" {
		return nil, fmt.Errorf("%w: applicationId missing", ErrInvalidChecklist)
	}
	if input.Checklist.GeneratedAt == "" {
		return nil, fmt.Errorf("%w: checklist has no generation timestamp", ErrInvalidChecklist)
	}

	checklistID := uuid.New().String()
	storedAt := time.Now().UTC().Format(time.RFC3339)

	payloadJSON, err := json.Marshal(input.Checklist)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal checklist payload: %v", ErrInvalidChecklist, err)
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", ErrChecklistPersistFailed, err)
	}
	defer tx.Rollback()

	var version int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(version), 0) + 1
		FROM checklists WHERE application_id = $1`, applicationID).Scan(&version)
	if err != nil {
		return nil, fmt.Errorf("%w: version lookup failed: %v", ErrChecklistPersistFailed, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO checklists (
			id, application_id, version, generated_at, payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		checklistID,
		applicationID,
		version,
		input.Checklist.GeneratedAt,
		payloadJSON,
		storedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: checklist insert failed: %v", ErrChecklistPersistFailed, err)
	}

	itemCount, err := h.insertItems(ctx, tx, checklistID, &input.Checklist)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit failed: %v", ErrChecklistPersistFailed, err)
	}

	// Audit log is non-critical, log and continue on failure
	h.writeAuditLog(ctx, checklistID, applicationID, version, itemCount, storedAt)

	indexed := h.indexChecklist(ctx, checklistID, applicationID, version, &input.Checklist)

	h.logger.Info("checklist stored", map[string]interface{}{
		"checklistId":   checklistID,
		"applicationId": applicationID,
		"version":       version,
		"itemCount":     itemCount,
		"indexed":       indexed,
	})

	return &Output{
		ChecklistID: checklistID,
		Version:     version,
		ItemCount:   itemCount,
		Indexed:     indexed,
		StoredAt:    storedAt,
	}, nil
}

func (h *Handler) insertItems(ctx context.Context, tx *sql.Tx, checklistID string, cl *models.GeneratedChecklist) (int, error) {
	const insertItem = `
		INSERT INTO checklist_items (
			id, checklist_id, rule_id, label, name, stage, section,
			note, scope, borrower_id, property_id, for_email
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	count := 0

	insert := func(item models.ChecklistItem, scope, borrowerID, propertyID string) error {
		_, err := tx.ExecContext(ctx, insertItem,
			uuid.New().String(),
			checklistID,
			item.RuleID,
			item.Label,
			item.Name,
			item.Stage,
			item.Section,
			item.Note,
			scope,
			nullable(borrowerID),
			nullable(propertyID),
			item.ForEmail,
		)
		if err != nil {
			return fmt.Errorf("%w: item insert failed for rule %s: %v", ErrChecklistPersistFailed, item.RuleID, err)
		}
		count++
		return nil
	}

	for _, b := range cl.Borrowers {
		for _, item := range b.Items {
			if err := insert(item, "borrower", b.BorrowerID, ""); err != nil {
				return 0, err
			}
		}
	}
	for _, p := range cl.Properties {
		for _, item := range p.Items {
			if err := insert(item, "property", "", p.PropertyID); err != nil {
				return 0, err
			}
		}
	}
	for _, item := range cl.Shared {
		if err := insert(item, "shared", "", ""); err != nil {
			return 0, err
		}
	}

	const insertFlag = `
		INSERT INTO checklist_flags (
			id, checklist_id, rule_id, label, section, review_note, borrower_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, flag := range cl.InternalFlags {
		_, err := tx.ExecContext(ctx, insertFlag,
			uuid.New().String(),
			checklistID,
			flag.RuleID,
			flag.Label,
			flag.Section,
			flag.ReviewNote,
			nullable(flag.BorrowerID),
		)
		if err != nil {
			return 0, fmt.Errorf("%w: flag insert failed for rule %s: %v", ErrChecklistPersistFailed, flag.RuleID, err)
		}
	}

	return count, nil
}

func (h *Handler) writeAuditLog(ctx context.Context, checklistID, applicationID string, version, itemCount int, storedAt string) {
	details, err := json.Marshal(map[string]interface{}{
		"applicationId": applicationID,
		"version":       version,
		"itemCount":     itemCount,
	})
	if err != nil {
		details = []byte("{}")
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO audit_log (event_type, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		"checklist_stored",
		"checklist",
		checklistID,
		details,
		storedAt,
	)
	if err != nil {
		h.logger.Warn("audit log insert failed", map[string]interface{}{
			"error":       err,
			"checklistId": checklistID,
		})
	}
}

// indexChecklist pushes a flattened document into the search index. Index
// failures are non-fatal since Postgres already holds the record.
func (h *Handler) indexChecklist(ctx context.Context, checklistID, applicationID string, version int, cl *models.GeneratedChecklist) bool {
	if h.indexer == nil {
		return false
	}

	doc := searchDocument{
		ChecklistID:   checklistID,
		ApplicationID: applicationID,
		Version:       version,
		GeneratedAt:   cl.GeneratedAt,
		TotalItems:    cl.Stats.TotalItems,
		BorrowerCount: cl.Stats.BorrowerCount,
		InternalFlags: len(cl.InternalFlags),
	}

	sections := map[string]bool{}
	addItems := func(items []models.ChecklistItem) {
		for _, item := range items {
			doc.Labels = append(doc.Labels, item.Label)
			if !sections[item.Section] {
				sections[item.Section] = true
				doc.Sections = append(doc.Sections, item.Section)
			}
		}
	}
	for _, b := range cl.Borrowers {
		addItems(b.Items)
	}
	for _, p := range cl.Properties {
		addItems(p.Items)
	}
	addItems(cl.Shared)

	body, err := json.Marshal(doc)
	if err != nil {
		h.logger.Warn("failed to marshal search document", map[string]interface{}{
			"error": err,
		})
		return false
	}

	if err := h.indexer.Index(ctx, h.config.SearchIndex, checklistID, body); err != nil {
		h.logger.Warn("checklist search indexing failed", map[string]interface{}{
			"error":       err,
			"checklistId": checklistID,
		})
		return false
	}

	return true
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	} else {
		h.logger.Info("job completed successfully", map[string]interface{}{
			"jobKey": job.Key,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string, retries int32) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
		"retries":      retries,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
