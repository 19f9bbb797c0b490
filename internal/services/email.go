package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventgate/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendGuestInvite sends the invitation email using the "guest_invite" template.
func (s *emailService) SendGuestInvite(ctx context.Context, data *domain.GuestInviteEmailData) error {
	if data == nil {
		return fmt.Errorf("guest invite data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("guest_invite", data)
	if err != nil {
		return fmt.Errorf("failed to render guest_invite template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send guest invite: %w", err)
	}
	s.logger.Info("guest invite sent", "email", data.Email)
	return nil
}
