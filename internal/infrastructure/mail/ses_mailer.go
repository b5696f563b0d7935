package mail

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var ErrMissingSender = errors.New("missing NOTIFY_SENDER")

// SESMailer delivers workflow notifications through Amazon SES. In
// mock mode it only logs, which keeps local environments free of SES
// credentials.

type SESMailer struct {
	client   *sesv2.Client
	sender   string
	mockMode bool
}

var _ interfaces.INotificationDispatcher = (*SESMailer)(nil)

func NewSESMailer(ctx context.Context) (*SESMailer, error) {
	if isNotifyMockEnabled() {
		log.Printf("[notify][mailer] mock mode enabled")
		return &SESMailer{mockMode: true}, nil
	}

	sender := strings.TrimSpace(os.Getenv("NOTIFY_SENDER"))
	if sender == "" {
		log.Printf("[notify][mailer] missing NOTIFY_SENDER")
		return nil, ErrMissingSender
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("[notify][mailer] failed loading aws config err=%v", err)
		return nil, err
	}
	log.Printf("[notify][mailer] SES client initialized sender=%s", sender)

	return &SESMailer{client: sesv2.NewFromConfig(cfg), sender: sender}, nil
}

func (m *SESMailer) Notify(ctx context.Context, recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return nil
	}

	if m != nil && m.mockMode {
		log.Printf("[notify][mailer] mock send recipients=%d subject=%q", len(recipients), subject)
		return nil
	}
	if m == nil || m.client == nil {
		return errors.New("mailer not configured")
	}

	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: recipients,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		log.Printf("[notify][mailer] send failed recipients=%d err=%v", len(recipients), err)
		return err
	}

	log.Printf("[notify][mailer] sent recipients=%d subject=%q", len(recipients), subject)
	return nil
}

func isNotifyMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
