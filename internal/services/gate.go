package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventgate/internal/domain"
	"eventgate/internal/idgen"
)

// maxCodeAttempts bounds retries when a generated access code collides with
// an existing gate.
const maxCodeAttempts = 10

type gateService struct {
	gateRepo  domain.GateRepository
	eventRepo domain.EventRepository
	codes     domain.AccessCodeGenerator
}

// NewGateService creates a GateService with the given repositories and access
// code generator.
func NewGateService(gateRepo domain.GateRepository, eventRepo domain.EventRepository, codes domain.AccessCodeGenerator) domain.GateService {
	return &gateService{
		gateRepo:  gateRepo,
		eventRepo: eventRepo,
		codes:     codes,
	}
}

// Create adds a gate to an event. An empty accessCode gets a generated one;
// a caller-supplied code is used as is and must be unique.
func (s *gateService) Create(ctx context.Context, eventID, name, accessCode string) (*domain.Gate, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	if accessCode == "" {
		gate, err := s.createWithGeneratedCode(ctx, eventID, name)
		if err != nil {
			return nil, err
		}
		return gate, nil
	}

	gate, err := domain.NewGate(idgen.NewID(), eventID, name, accessCode, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.gateRepo.Create(ctx, gate); err != nil {
		return nil, err
	}
	return gate, nil
}

func (s *gateService) createWithGeneratedCode(ctx context.Context, eventID, name string) (*domain.Gate, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate access code: %w", err)
		}
		gate, err := domain.NewGate(idgen.NewID(), eventID, name, code, time.Now())
		if err != nil {
			return nil, err
		}
		err = s.gateRepo.Create(ctx, gate)
		if err == nil {
			return gate, nil
		}
		if !errors.Is(err, domain.ErrAccessCodeTaken) {
			return nil, err
		}
	}
	return nil, domain.ErrCodeGeneration
}

func (s *gateService) GetByID(ctx context.Context, id string) (*domain.Gate, error) {
	return s.gateRepo.GetByID(ctx, id)
}

func (s *gateService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Gate, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.gateRepo.ListByEventID(ctx, eventID)
}

// Update applies optional name and access code changes.
func (s *gateService) Update(ctx context.Context, id string, name, accessCode *string) (*domain.Gate, error) {
	gate, err := s.gateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if name != nil {
		if err := gate.Rename(*name, now); err != nil {
			return nil, err
		}
	}
	if accessCode != nil {
		if err := gate.SetAccessCode(*accessCode, now); err != nil {
			return nil, err
		}
	}
	if err := s.gateRepo.Update(ctx, gate); err != nil {
		return nil, err
	}
	return gate, nil
}

func (s *gateService) Activate(ctx context.Context, id string) (*domain.Gate, error) {
	gate, err := s.gateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := gate.Activate(time.Now()); err != nil {
		return nil, err
	}
	if err := s.gateRepo.Update(ctx, gate); err != nil {
		return nil, err
	}
	return gate, nil
}

func (s *gateService) Deactivate(ctx context.Context, id string) (*domain.Gate, error) {
	gate, err := s.gateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := gate.Deactivate(time.Now()); err != nil {
		return nil, err
	}
	if err := s.gateRepo.Update(ctx, gate); err != nil {
		return nil, err
	}
	return gate, nil
}

// RegenerateAccessCode replaces the gate's code with a fresh generated one,
// retrying on collisions.
func (s *gateService) RegenerateAccessCode(ctx context.Context, id string) (*domain.Gate, error) {
	gate, err := s.gateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate access code: %w", err)
		}
		if err := gate.SetAccessCode(code, time.Now()); err != nil {
			return nil, err
		}
		err = s.gateRepo.Update(ctx, gate)
		if err == nil {
			return gate, nil
		}
		if !errors.Is(err, domain.ErrAccessCodeTaken) {
			return nil, err
		}
	}
	return nil, domain.ErrCodeGeneration
}

func (s *gateService) Delete(ctx context.Context, id string) error {
	return s.gateRepo.Delete(ctx, id)
}
