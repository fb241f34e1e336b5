package sendchecklistemail

import (
	"context"
	"errors"
	"testing"

	"mortgage-checklist-workers/internal/common/logger"
	"mortgage-checklist-workers/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (m *mockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

type mockSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (m *mockSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &sns.PublishOutput{MessageId: aws.String("sms-1")}, nil
}

func testConfig() *Config {
	cfg := LoadConfig()
	cfg.FromEmail = "docs@lender.example.com"
	return cfg
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
					{RuleID: "employment.letter", Label: "Employment letter", Stage: "PRE", Note: "from Acme Ltd", ForEmail: true},
					{RuleID: "employment.noa", Label: "Notice of assessment", Stage: "FULL", ForEmail: true},
				},
			},
		},
		Shared: []models.ChecklistItem{
			{RuleID: "down_payment.bank_statements_90d", Label: "90 days of bank statements", Stage: "PRE", ForEmail: true},
		},
		InternalFlags: []models.InternalFlag{
			{RuleID: "employment.probation_confirmation", Label: "Confirm probation status", BorrowerID: "b-1"},
		},
	}
}

func TestExecute_SendsChecklistEmail(t *testing.T) {
	sesMock := &mockSES{}
	h := NewHandlerWithClients(testConfig(), sesMock, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Recipients: []Recipient{
			{BorrowerID: "b-1", Email: "dana@example.com", FirstName: "Dana"},
		},
		Checklist: testChecklist(),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusSent, output.Status)
	assert.Equal(t, 1, output.SentCount)
	require.Len(t, sesMock.inputs, 1)

	input := sesMock.inputs[0]
	assert.Equal(t, "docs@lender.example.com", aws.ToString(input.Source))
	assert.Equal(t, []string{"dana@example.com"}, input.Destination.ToAddresses)

	body := aws.ToString(input.Message.Body.Text.Data)
	assert.Contains(t, body, "Hi Dana,")
	assert.Contains(t, body, "Government-issued photo ID")
	assert.Contains(t, body, "Employment letter (from Acme Ltd)")
	assert.Contains(t, body, "To get started")
	assert.Contains(t, body, "For full approval")
	assert.Contains(t, body, "90 days of bank statements")
}

func TestExecute_InternalFlagsNeverInBody(t *testing.T) {
	sesMock := &mockSES{}
	h := NewHandlerWithClients(testConfig(), sesMock, nil, logger.NewTestLogger(t))

	cl := testChecklist()
	// A non-emailable item mixed into a borrower list must also stay out.
	cl.Borrowers[0].Items = append(cl.Borrowers[0].Items, models.ChecklistItem{
		RuleID: "down_payment.large_deposit_explanations",
		Label:  "Explain large deposits",
		Stage:  "PRE",
	})

	_, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Recipients:    []Recipient{{Email: "dana@example.com"}},
		Checklist:     cl,
	})
	require.NoError(t, err)

	body := aws.ToString(sesMock.inputs[0].Message.Body.Text.Data)
	assert.NotContains(t, body, "Confirm probation status")
	assert.NotContains(t, body, "Explain large deposits")
}

func TestExecute_SkipsInvalidRecipients(t *testing.T) {
	sesMock := &mockSES{}
	h := NewHandlerWithClients(testConfig(), sesMock, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Recipients: []Recipient{
			{BorrowerID: "b-1", Email: "not-an-email"},
			{BorrowerID: "b-2", Email: "valid@example.com"},
		},
		Checklist: testChecklist(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, output.SentCount)
	require.Len(t, sesMock.inputs, 1)
	assert.Equal(t, []string{"valid@example.com"}, sesMock.inputs[0].Destination.ToAddresses)
}

func TestExecute_NoDeliverableRecipients(t *testing.T) {
	h := NewHandlerWithClients(testConfig(), &mockSES{}, nil, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Recipients:    []Recipient{{Email: "bad"}},
		Checklist:     testChecklist(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRecipients)
}

func TestExecute_AllSendsFailed(t *testing.T) {
	sesMock := &mockSES{err: errors.New("ses throttled")}
	h := NewHandlerWithClients(testConfig(), sesMock, nil, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Recipients:    []Recipient{{Email: "dana@example.com"}},
		Checklist:     testChecklist(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecklistEmailFailed)
}

func TestExecute_SMSOnlyWhenEnabled(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}

	cfg := testConfig()
	h := NewHandlerWithClients(cfg, sesMock, snsMock, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Recipients:    []Recipient{{Email: "dana@example.com", Phone: "+15145550000"}},
		Checklist:     testChecklist(),
	})
	require.NoError(t, err)
	assert.Empty(t, snsMock.inputs)

	cfg.SMSEnabled = true
	_, err = h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Recipients:    []Recipient{{Email: "dana@example.com", Phone: "+15145550000"}},
		Checklist:     testChecklist(),
	})
	require.NoError(t, err)
	require.Len(t, snsMock.inputs, 1)
	assert.Equal(t, "+15145550000", aws.ToString(snsMock.inputs[0].PhoneNumber))
}

func TestExecute_SMSFailureIsNonFatal(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{err: errors.New("sns down")}

	cfg := testConfig()
	cfg.SMSEnabled = true
	h := NewHandlerWithClients(cfg, sesMock, snsMock, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-1",
		Recipients:    []Recipient{{Email: "dana@example.com", Phone: "+15145550000"}},
		Checklist:     testChecklist(),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
}
