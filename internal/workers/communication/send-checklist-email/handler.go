package sendchecklistemail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mortgage-checklist-workers/internal/common/logger"
	"mortgage-checklist-workers/internal/common/metrics"
	"mortgage-checklist-workers/internal/common/validation"
	"mortgage-checklist-workers/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "checklist.email.send"
)

var (
	ErrChecklistEmailFailed = errors.New("CHECKLIST_EMAIL_FAILED")
	ErrNoRecipients         = errors.New("NO_RECIPIENTS")
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Handler struct {
	config    *Config
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(config.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Handler{
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

// NewHandlerWithClients wires explicit clients, used by tests.
func NewHandlerWithClients(config *Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		sesClient: sesClient,
		snsClient: snsClient,
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
		errorCode := "CHECKLIST_EMAIL_FAILED"
		retries := int32(3)
		if errors.Is(err, ErrNoRecipients) {
			errorCode = "NO_RECIPIENTS"
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
	valid := make([]Recipient, 0, len(input.Recipients))
	for _, r := range input.Recipients {
		if !validation.ValidateEmail(r.Email) {
			h.logger.Warn("skipping recipient with invalid email", map[string]interface{}{
				"borrowerId": r.BorrowerID,
			})
			continue
		}
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: no deliverable recipients for application %s",
			ErrNoRecipients, input.ApplicationID)
	}

	subject := "Your mortgage document checklist"
	sentAt := time.Now().UTC().Format(time.RFC3339)

	var messageIDs []string
	var lastErr error

	for _, recipient := range valid {
		body := buildEmailBody(recipient, &input.Checklist)

		result, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
			Source: aws.String(h.config.FromEmail),
			Destination: &types.Destination{
				ToAddresses: []string{recipient.Email},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		})
		if err != nil {
			h.logger.Error("email send failed", map[string]interface{}{
				"error":      err,
				"borrowerId": recipient.BorrowerID,
			})
			lastErr = err
			continue
		}
		messageIDs = append(messageIDs, aws.ToString(result.MessageId))

		h.notifyBySMS(ctx, recipient)
	}

	if len(messageIDs) == 0 {
		return nil, fmt.Errorf("%w: all sends failed: %v", ErrChecklistEmailFailed, lastErr)
	}

	status := StatusSent
	if len(messageIDs) < len(valid) {
		status = StatusPartial
	}

	h.logger.Info("checklist email sent", map[string]interface{}{
		"applicationId": input.ApplicationID,
		"recipients":    len(valid),
		"sent":          len(messageIDs),
		"status":        status,
	})

	return &Output{
		MessageIDs: messageIDs,
		Status:     status,
		SentCount:  len(messageIDs),
		SentAt:     sentAt,
	}, nil
}

// notifyBySMS sends an optional short ping. Failures never fail the job.
func (h *Handler) notifyBySMS(ctx context.Context, recipient Recipient) {
	if !h.config.SMSEnabled || recipient.Phone == "" || h.snsClient == nil {
		return
	}

	_, err := h.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(recipient.Phone),
		Message:     aws.String("Your mortgage document checklist was just emailed to you."),
	})
	if err != nil {
		h.logger.Warn("sms notification failed", map[string]interface{}{
			"error":      err,
			"borrowerId": recipient.BorrowerID,
		})
	}
}

var stageHeadings = []struct {
	stage   string
	heading string
}{
	{"PRE", "To get started"},
	{"FULL", "For full approval"},
	{"LATER", "Before closing"},
	{"CONDITIONAL", "If requested"},
	{"LENDER_CONDITION", "Lender conditions"},
}

// buildEmailBody renders the borrower-facing checklist. Only items marked
// ForEmail appear; internal flags are a separate field and never rendered.
func buildEmailBody(recipient Recipient, cl *models.GeneratedChecklist) string {
	var b strings.Builder

	name := recipient.FirstName
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	b.WriteString("Here are the documents we need for your mortgage application.\n")

	writeGroup := func(title string, items []models.ChecklistItem) {
		emailable := make([]models.ChecklistItem, 0, len(items))
		for _, item := range items {
			if item.ForEmail {
				emailable = append(emailable, item)
			}
		}
		if len(emailable) == 0 {
			return
		}

		fmt.Fprintf(&b, "\n%s\n", title)
		for _, heading := range stageHeadings {
			first := true
			for _, item := range emailable {
				if item.Stage != heading.stage {
					continue
				}
				if first {
					fmt.Fprintf(&b, "  %s:\n", heading.heading)
					first = false
				}
				line := item.Label
				if item.Note != "" {
					line += " (" + item.Note + ")"
				}
				fmt.Fprintf(&b, "    - %s\n", line)
			}
		}
	}

	for _, borrower := range cl.Borrowers {
		title := borrower.BorrowerName
		if title == "" {
			title = "Borrower documents"
		}
		writeGroup(title, borrower.Items)
	}
	for _, property := range cl.Properties {
		title := "Property"
		if property.Address != "" {
			title = "Property: " + property.Address
		}
		writeGroup(title, property.Items)
	}
	writeGroup("Shared documents", cl.Shared)

	b.WriteString("\nYou can reply to this email with any questions.\n")
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
