package services

import (
	"context"
	"time"

	"eventgate/internal/domain"
	"eventgate/internal/idgen"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService with the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(ctx context.Context, organizerID, title string, description *string, venue string, startDate *time.Time, endDate time.Time) (*domain.Event, error) {
	event, err := domain.NewEvent(idgen.NewID(), organizerID, title, description, venue, startDate, endDate, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	return s.eventRepo.ListByOrganizerID(ctx, organizerID)
}

// getOwned loads an event and verifies the caller owns it.
func (s *eventService) getOwned(ctx context.Context, id, callerID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != callerID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

// Update applies optional field changes. Only the owning organizer may update.
func (s *eventService) Update(ctx context.Context, id, callerID string, title, venue *string, description *string, startDate, endDate *time.Time) (*domain.Event, error) {
	event, err := s.getOwned(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if title != nil {
		t := domain.SanitizeText(*title)
		if t == "" {
			return nil, domain.NewValidationError("event title is required")
		}
		event.Title = t
	}
	if venue != nil {
		event.Venue = domain.SanitizeText(*venue)
	}
	if description != nil {
		d := domain.SanitizeHTML(*description)
		event.Description = &d
	}
	if startDate != nil {
		event.StartDate = startDate
	}
	if endDate != nil {
		event.EndDate = *endDate
	}
	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Publish(ctx context.Context, id, callerID string) (*domain.Event, error) {
	event, err := s.getOwned(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if err := event.Publish(time.Now()); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Cancel(ctx context.Context, id, callerID string) (*domain.Event, error) {
	event, err := s.getOwned(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if err := event.Cancel(time.Now()); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.getOwned(ctx, id, callerID); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}
