package services

import (
	"context"
	"log/slog"
	"time"

	"eventgate/internal/domain"
	"eventgate/internal/idgen"
)

type guestService struct {
	guestRepo domain.GuestRepository
	eventRepo domain.EventRepository
	email     domain.EmailService
	logger    *slog.Logger
}

// NewGuestService creates a GuestService. The email service may be nil, in
// which case no invites are sent.
func NewGuestService(guestRepo domain.GuestRepository, eventRepo domain.EventRepository, email domain.EmailService, logger *slog.Logger) domain.GuestService {
	return &guestService{
		guestRepo: guestRepo,
		eventRepo: eventRepo,
		email:     email,
		logger:    logger,
	}
}

// Create registers a guest for an event and sends an invite email. A failed
// invite is logged but does not fail the registration.
func (s *guestService) Create(ctx context.Context, eventID, name, email, phone string, qrCode *string) (*domain.Guest, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	guest, err := domain.NewGuest(idgen.NewID(), eventID, name, email, phone, qrCode, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}

	if s.email != nil {
		data := &domain.GuestInviteEmailData{
			GuestName:  guest.Name,
			Email:      guest.Email,
			EventTitle: event.Title,
			Venue:      event.Venue,
		}
		if err := s.email.SendGuestInvite(ctx, data); err != nil {
			s.logger.Error("failed to send guest invite", "guest_id", guest.ID, "error", err)
		}
	}
	return guest, nil
}

func (s *guestService) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	return s.guestRepo.GetByID(ctx, id)
}

func (s *guestService) ListByEvent(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, 0, err
	}
	return s.guestRepo.ListByEventID(ctx, eventID, params)
}

// Update applies optional name, email, and phone changes.
func (s *guestService) Update(ctx context.Context, id string, name, email, phone *string) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		n := domain.SanitizeText(*name)
		if n == "" {
			return nil, domain.NewValidationError("guest name is required")
		}
		guest.Name = n
	}
	if email != nil {
		e := domain.SanitizeEmail(*email)
		if !domain.IsValidEmail(e) {
			return nil, domain.NewValidationError("invalid email format")
		}
		guest.Email = e
	}
	if phone != nil {
		p := domain.SanitizePhone(*phone)
		if !domain.IsValidPhone(p) {
			return nil, domain.NewValidationError("invalid phone number format")
		}
		guest.Phone = p
	}
	guest.UpdatedAt = time.Now()
	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestService) SetRSVP(ctx context.Context, id, status string) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guest.SetRSVP(status, time.Now()); err != nil {
		return nil, err
	}
	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestService) CheckOut(ctx context.Context, id string) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guest.CheckOut(time.Now()); err != nil {
		return nil, err
	}
	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestService) Delete(ctx context.Context, id string) error {
	return s.guestRepo.Delete(ctx, id)
}
