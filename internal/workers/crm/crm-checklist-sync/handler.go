package crmchecklistsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mortgage-checklist-workers/internal/common/logger"
	"mortgage-checklist-workers/internal/common/metrics"
	"mortgage-checklist-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "checklist.crm.sync"
)

var (
	ErrCRMSyncFailed     = errors.New("CRM_SYNC_FAILED")
	ErrCRMRecordNotFound = errors.New("CRM_RECORD_NOT_FOUND")
)

// CRMService is the subset of the Zoho client the sync needs.
type CRMService interface {
	UpdateRecordFields(ctx context.Context, module, recordID string, fields map[string]interface{}) error
	SearchRecords(ctx context.Context, module, field, value string) ([]map[string]interface{}, error)
	AttachNote(ctx context.Context, module, recordID, title, content string) error
}

type Handler struct {
	config *Config
	crm    CRMService
	logger logger.Logger
}

func NewHandler(config *Config, crm CRMService, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		crm:    crm,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		errorCode := "CRM_SYNC_FAILED"
		retries := int32(3)
		if errors.Is(err, ErrCRMRecordNotFound) {
			errorCode = "CRM_RECORD_NOT_FOUND"
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
	recordID := input.CRMRecordID
	if recordID == "" {
		found, err := h.findRecord(ctx, input.ApplicationID)
		if err != nil {
			return nil, err
		}
		recordID = found
	}

	fields := buildFields(&input.Checklist)
	if err := h.crm.UpdateRecordFields(ctx, h.config.Module, recordID, fields); err != nil {
		return nil, fmt.Errorf("%w: update record %s: %v", ErrCRMSyncFailed, recordID, err)
	}

	// The note mirrors the checklist into the activity stream; a failure
	// there does not undo the field sync.
	noteAdded := true
	noteContent := buildNoteContent(&input.Checklist)
	if err := h.crm.AttachNote(ctx, h.config.Module, recordID, "Document checklist generated", noteContent); err != nil {
		h.logger.Warn("crm note attach failed", map[string]interface{}{
			"error":    err,
			"recordId": recordID,
		})
		noteAdded = false
	}

	h.logger.Info("checklist synced to crm", map[string]interface{}{
		"applicationId": input.ApplicationID,
		"recordId":      recordID,
		"fieldCount":    len(fields),
	})

	return &Output{
		RecordID:   recordID,
		FieldCount: len(fields),
		NoteAdded:  noteAdded,
		SyncedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *Handler) findRecord(ctx context.Context, applicationID string) (string, error) {
	if applicationID == "" {
		return "", fmt.Errorf("%w: no record id and no application id to search by", ErrCRMRecordNotFound)
	}

	records, err := h.crm.SearchRecords(ctx, h.config.Module, h.config.SyncField, applicationID)
	if err != nil {
		return "", fmt.Errorf("%w: search by %s: %v", ErrCRMSyncFailed, h.config.SyncField, err)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%w: no %s record for application %s",
			ErrCRMRecordNotFound, h.config.Module, applicationID)
	}

	id, _ := records[0]["id"].(string)
	if id == "" {
		return "", fmt.Errorf("%w: matched record has no id", ErrCRMSyncFailed)
	}
	return id, nil
}

// maxSyncedLabels caps the joined document list so it fits Zoho's 2000-char
// multiline field limit.
const maxSyncedLabels = 40

func buildFields(cl *models.GeneratedChecklist) map[string]interface{} {
	labels := collectLabels(cl)
	if len(labels) > maxSyncedLabels {
		labels = labels[:maxSyncedLabels]
	}

	return map[string]interface{}{
		"Checklist_Generated_At":   cl.GeneratedAt,
		"Checklist_Total_Items":    cl.Stats.TotalItems,
		"Checklist_Borrower_Count": cl.Stats.BorrowerCount,
		"Checklist_Property_Count": cl.Stats.PropertyCount,
		"Checklist_Internal_Flags": len(cl.InternalFlags),
		"Checklist_Warning_Count":  len(cl.Warnings),
		"Checklist_Documents":      strings.Join(labels, "\n"),
	}
}

func collectLabels(cl *models.GeneratedChecklist) []string {
	var labels []string
	add := func(items []models.ChecklistItem) {
		for _, item := range items {
			labels = append(labels, item.Label)
		}
	}
	for _, b := range cl.Borrowers {
		add(b.Items)
	}
	for _, p := range cl.Properties {
		add(p.Items)
	}
	add(cl.Shared)
	return labels
}

func buildNoteContent(cl *models.GeneratedChecklist) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checklist generated at %s: %d items across %d borrower(s).\n",
		cl.GeneratedAt, cl.Stats.TotalItems, cl.Stats.BorrowerCount)

	for _, borrower := range cl.Borrowers {
		fmt.Fprintf(&b, "\n%s:\n", borrower.BorrowerName)
		for _, item := range borrower.Items {
			fmt.Fprintf(&b, "- %s\n", item.Label)
		}
	}
	for _, property := range cl.Properties {
		fmt.Fprintf(&b, "\nProperty %s:\n", property.PropertyID)
		for _, item := range property.Items {
			fmt.Fprintf(&b, "- %s\n", item.Label)
		}
	}
	if len(cl.Shared) > 0 {
		b.WriteString("\nShared:\n")
		for _, item := range cl.Shared {
			fmt.Fprintf(&b, "- %s\n", item.Label)
		}
	}
	return b.String()
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
