package email

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventregistration/internal/domain"
)

func TestTemplateRenderer_RegistrationConfirmation(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	data := &domain.RegistrationConfirmationEmailData{
		Email:         "jane@example.com",
		Name:          "Jane <script>",
		EventName:     "GopherCon",
		EventLocation: "Berlin",
		StartTime:     time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 6, 1, 17, 0, 0, 0, time.UTC),
	}
	subject, html, text, err := r.Render("registration_confirmation", data)
	require.NoError(t, err)

	assert.Equal(t, "You're registered for GopherCon", subject)
	assert.Contains(t, html, "<strong>GopherCon</strong>")
	assert.Contains(t, html, "Jane &lt;script&gt;")
	assert.Contains(t, html, "Mon, 01 Jun 2026 09:00 UTC")
	assert.Contains(t, text, "Jane <script>")
	assert.Contains(t, text, "Where:  Berlin")
	assert.Contains(t, text, "Ends:   Mon, 01 Jun 2026 17:00 UTC")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	_, _, _, err = r.Render("missing", nil)
	require.Error(t, err)
}

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, MailerConfig{FromAddress: "events@example.com", FromName: "Events"}, slog.Default())

	require.NoError(t, m.Send(context.Background(), "jane@example.com", "Hello", "<p>hi</p>", ""))
	require.NotNil(t, client.input)
	assert.Equal(t, "Events <events@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"jane@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Hello", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Nil(t, client.input.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	m := newSESMailer(client, MailerConfig{FromAddress: "events@example.com"}, slog.Default())

	err := m.Send(context.Background(), "jane@example.com", "Hello", "", "hi")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "throttled"))
	assert.Equal(t, "events@example.com", aws.ToString(client.input.Source))
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), "a@example.com", "s", "h", "t"))

	m, err = NewMailer(MailerConfig{Provider: "ses", FromAddress: "events@example.com", SES: SESConfig{Region: "eu-west-1"}}, nil)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, nil)
	assert.Error(t, err)

	_, err = NewMailer(MailerConfig{Provider: "smtp"}, nil)
	assert.Error(t, err)
}
