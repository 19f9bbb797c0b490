package domain

import (
	"context"
	"time"
)

// Event statuses.
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Event represents an event owned by an organizer
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	OrganizerID string     `json:"organizer_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Venue       string     `json:"venue"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewEvent returns a draft Event with sanitized fields, or a ValidationError
// if the title is empty.
func NewEvent(id, organizerID, title string, description *string, venue string, startDate *time.Time, endDate time.Time, createdAt time.Time) (*Event, error) {
	title = SanitizeText(title)
	venue = SanitizeText(venue)
	if description != nil {
		d := SanitizeHTML(*description)
		description = &d
	}
	if title == "" {
		return nil, NewValidationError("event title is required")
	}
	return &Event{
		ID:          id,
		OrganizerID: organizerID,
		Title:       title,
		Description: description,
		Venue:       venue,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      EventStatusDraft,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}, nil
}

// Publish moves the event to published. Venue and both dates are required.
func (e *Event) Publish(now time.Time) error {
	if e.Status == EventStatusPublished {
		return NewValidationError("event already published")
	}
	if e.Venue == "" {
		return NewValidationError("venue is required to publish")
	}
	if e.StartDate == nil || e.EndDate.IsZero() {
		return NewValidationError("start and end dates are required to publish")
	}
	e.Status = EventStatusPublished
	e.PublishedAt = &now
	e.UpdatedAt = now
	return nil
}

// Cancel moves the event to cancelled.
func (e *Event) Cancel(now time.Time) error {
	if e.Status == EventStatusCancelled {
		return NewValidationError("event already cancelled")
	}
	e.Status = EventStatusCancelled
	e.UpdatedAt = now
	return nil
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management.
type EventService interface {
	Create(ctx context.Context, organizerID, title string, description *string, venue string, startDate *time.Time, endDate time.Time) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*Event, error)
	Update(ctx context.Context, id, callerID string, title, venue *string, description *string, startDate, endDate *time.Time) (*Event, error)
	Publish(ctx context.Context, id, callerID string) (*Event, error)
	Cancel(ctx context.Context, id, callerID string) (*Event, error)
	Delete(ctx context.Context, id, callerID string) error
}
