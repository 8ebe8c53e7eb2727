package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"eventregistration/internal/domain"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// sesAPI is the subset of the SES client used by sesMailer.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES; "noop" logs instead of sending.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch config.Provider {
	case "ses":
		if config.FromAddress == "" {
			return nil, fmt.Errorf("ses mailer: from address is required")
		}
		if config.SES.InsecureSkipVerify {
			logger.Warn("TLS certificate verification is disabled for SES, use only in development")
		}
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: config.SES.InsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
		awsCfg := aws.Config{
			Region:     config.SES.Region,
			HTTPClient: httpClient,
		}
		if config.SES.AccessKeyID != "" {
			awsCfg.Credentials = aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(config.SES.AccessKeyID, config.SES.SecretAccessKey, ""),
			)
		}
		return newSESMailer(ses.NewFromConfig(awsCfg), config, logger), nil
	case "noop", "":
		return &noopMailer{logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", config.Provider)
	}
}

func newSESMailer(client sesAPI, config MailerConfig, logger *slog.Logger) *sesMailer {
	source := config.FromAddress
	if config.FromName != "" {
		source = fmt.Sprintf("%s <%s>", config.FromName, config.FromAddress)
	}
	return &sesMailer{client: client, source: source, logger: logger}
}

type sesMailer struct {
	client sesAPI
	source string
	logger *slog.Logger
}

func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	input := &ses.SendEmailInput{
		Source: aws.String(s.source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: utf8Content(subject),
			Body:    &types.Body{},
		},
	}
	if html != "" {
		input.Message.Body.Html = utf8Content(html)
	}
	if text != "" {
		input.Message.Body.Text = utf8Content(text)
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	s.logger.DebugContext(ctx, "email sent via SES", "message_id", aws.ToString(result.MessageId))
	return nil
}

func utf8Content(data string) *types.Content {
	return &types.Content{
		Data:    aws.String(data),
		Charset: aws.String("UTF-8"),
	}
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, html, text string) error {
	n.logger.InfoContext(ctx, "email not sent (noop mailer)", "to", to, "subject", subject)
	return nil
}
