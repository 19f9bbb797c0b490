package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventgate/internal/domain"
	"eventgate/internal/idgen"
)

type scanService struct {
	scanRepo  domain.ScanRepository
	guestRepo domain.GuestRepository
	gateRepo  domain.GateRepository
	eventRepo domain.EventRepository
	logger    *slog.Logger
}

// NewScanService creates a ScanService with the given repositories.
func NewScanService(scanRepo domain.ScanRepository, guestRepo domain.GuestRepository, gateRepo domain.GateRepository, eventRepo domain.EventRepository, logger *slog.Logger) domain.ScanService {
	return &scanService{
		scanRepo:  scanRepo,
		guestRepo: guestRepo,
		gateRepo:  gateRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Process classifies one admission attempt and records it. Checks run in a
// fixed order: missing guest or gate aborts without a record; an inactive
// gate denies; a guest or gate belonging to a different event is invalid; a
// declined RSVP denies; everything else succeeds and checks the guest in.
// Every classified attempt is persisted, whatever the outcome.
func (s *scanService) Process(ctx context.Context, guestID, gateID, eventID string, scanData *string) (*domain.ScanOutcome, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrGuestNotFound) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to load guest: %w", err)
	}
	gate, err := s.gateRepo.GetByID(ctx, gateID)
	if err != nil {
		if errors.Is(err, domain.ErrGateNotFound) {
			return nil, domain.ErrGateNotFound
		}
		return nil, fmt.Errorf("failed to load gate: %w", err)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	result := domain.ScanResultSuccess
	switch {
	case !gate.IsActive:
		result = domain.ScanResultDenied
	case guest.EventID != eventID:
		result = domain.ScanResultInvalid
	case gate.EventID != eventID:
		result = domain.ScanResultInvalid
	case guest.RSVPStatus == domain.RSVPNo:
		result = domain.ScanResultDenied
	}

	now := time.Now()
	if result == domain.ScanResultSuccess && !guest.CheckedIn {
		if err := guest.CheckIn(now); err != nil {
			return nil, err
		}
		if err := s.guestRepo.Update(ctx, guest); err != nil {
			return nil, fmt.Errorf("failed to check in guest: %w", err)
		}
	}

	scan, err := domain.NewScan(idgen.NewID(), guest.ID, gate.ID, eventID, now, result, scanData)
	if err != nil {
		return nil, err
	}
	if err := s.scanRepo.Create(ctx, scan); err != nil {
		return nil, fmt.Errorf("failed to record scan: %w", err)
	}

	s.logger.Info("scan processed",
		"scan_id", scan.ID,
		"guest_id", guest.ID,
		"gate_id", gate.ID,
		"result", result,
	)

	return &domain.ScanOutcome{
		Scan:  scan,
		Guest: guest.Summary(),
		Gate:  domain.GateSummary{ID: gate.ID, Name: gate.Name},
	}, nil
}

func (s *scanService) GetByID(ctx context.Context, id string) (*domain.Scan, error) {
	return s.scanRepo.GetByID(ctx, id)
}

func (s *scanService) ListByEvent(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Scan, int, error) {
	return s.scanRepo.ListByEventID(ctx, eventID, params)
}

func (s *scanService) ListByGuest(ctx context.Context, guestID string) ([]*domain.Scan, error) {
	return s.scanRepo.ListByGuestID(ctx, guestID)
}

func (s *scanService) ListByGate(ctx context.Context, gateID string) ([]*domain.Scan, error) {
	return s.scanRepo.ListByGateID(ctx, gateID)
}
