package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventregistration/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRegistrationConfirmation sends the "registration_confirmation" template to the attendee.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render registration_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration confirmation: %w", err)
	}
	s.logger.InfoContext(ctx, "registration confirmation sent", "to", data.Email, "event", data.EventName)
	return nil
}
