package generatechecklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/checklist/catalog"
	"mortgage-checklist-workers/internal/common/logger"
	"mortgage-checklist-workers/internal/common/metrics"
	"mortgage-checklist-workers/internal/common/validation"
	"mortgage-checklist-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "checklist.generate"
)

var (
	ErrSnapshotParsingFailed    = errors.New("SNAPSHOT_PARSING_FAILED")
	ErrSnapshotValidationFailed = errors.New("SNAPSHOT_VALIDATION_FAILED")
	ErrUnknownRuleID            = errors.New("UNKNOWN_RULE_ID")
)

type Handler struct {
	config *Config
	cache  redis.Cmdable
	logger logger.Logger
}

// NewHandler creates the generation handler. cache may be nil when Redis
// caching is disabled.
func NewHandler(config *Config, cache redis.Cmdable, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		cache:  cache,
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
		errorCode := "CHECKLIST_GENERATION_FAILED"
		switch {
		case errors.Is(err, ErrSnapshotParsingFailed):
			errorCode = "SNAPSHOT_PARSING_FAILED"
		case errors.Is(err, ErrSnapshotValidationFailed):
			errorCode = "SNAPSHOT_VALIDATION_FAILED"
		case errors.Is(err, ErrUnknownRuleID):
			errorCode = "UNKNOWN_RULE_ID"
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
		h.failJob(client, job, errorCode, err.Error(), 0)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if len(input.ApplicationSnapshot) == 0 {
		return nil, fmt.Errorf("%w: applicationSnapshot variable missing", ErrSnapshotParsingFailed)
	}

	result, err := validation.ValidateSnapshot(input.ApplicationSnapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotParsingFailed, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotValidationFailed,
			strings.Join(result.GetErrorMessages(), "; "))
	}

	var snap models.ApplicationSnapshot
	if err := json.Unmarshal(input.ApplicationSnapshot, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotParsingFailed, err)
	}

	refDate := time.Now().UTC()
	if input.ReferenceDate != "" {
		parsed, err := parseDate(input.ReferenceDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid referenceDate %q", ErrSnapshotParsingFailed, input.ReferenceDate)
		}
		refDate = parsed
	}

	// Manual overrides must name catalog rules; a typo here means the ops
	// tool and the catalog disagree, which we surface instead of ignoring.
	for _, id := range input.ActivatedRules {
		if _, ok := catalog.RuleByID(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRuleID, id)
		}
	}

	generated := checklist.Generate(&snap, catalog.All(), checklist.Options{
		ReferenceDate: refDate,
		Activated:     input.ActivatedRules,
	})

	metrics.ChecklistsGenerated.WithLabelValues(snap.Application.Goal).Inc()
	metrics.ChecklistItemsEmitted.WithLabelValues(snap.Application.Goal).
		Observe(float64(generated.Stats.TotalItems))

	cached := h.cacheChecklist(ctx, generated)

	h.logger.Info("checklist generated", map[string]interface{}{
		"applicationId": generated.ApplicationID,
		"totalItems":    generated.Stats.TotalItems,
		"borrowerCount": generated.Stats.BorrowerCount,
		"internalFlags": len(generated.InternalFlags),
		"warnings":      len(generated.Warnings),
	})

	return &Output{
		ApplicationID:     generated.ApplicationID,
		GeneratedAt:       generated.GeneratedAt,
		TotalItems:        generated.Stats.TotalItems,
		BorrowerCount:     generated.Stats.BorrowerCount,
		PropertyCount:     generated.Stats.PropertyCount,
		InternalFlagCount: len(generated.InternalFlags),
		Warnings:          generated.Warnings,
		Cached:            cached,
		Checklist:         generated,
	}, nil
}

// cacheChecklist writes the result to Redis. Cache failures are logged and
// swallowed since the checklist still completes the job.
func (h *Handler) cacheChecklist(ctx context.Context, generated *models.GeneratedChecklist) bool {
	if h.cache == nil {
		return false
	}

	payload, err := json.Marshal(generated)
	if err != nil {
		h.logger.Warn("failed to marshal checklist for cache", map[string]interface{}{
			"error": err,
		})
		return false
	}

	key := "checklist:" + generated.ApplicationID
	if err := h.cache.Set(ctx, key, payload, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("checklist cache write failed", map[string]interface{}{
			"error": err,
			"key":   key,
		})
		return false
	}

	return true
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format")
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
