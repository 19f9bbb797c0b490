package domain

import (
	"context"
	"time"
)

// RSVP statuses.
const (
	RSVPYes     = "yes"
	RSVPNo      = "no"
	RSVPPending = "pending"
)

// Guest represents a registered guest of an event
// swagger:model Guest
type Guest struct {
	ID           string     `json:"id"`
	EventID      string     `json:"event_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	RSVPStatus   string     `json:"rsvp_status"`
	CheckedIn    bool       `json:"checked_in"`
	CheckedOut   bool       `json:"checked_out"`
	RSVPAt       *time.Time `json:"rsvp_at"`
	QRCode       *string    `json:"qr_code"`
	CheckedInAt  *time.Time `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewGuest returns a pending, not-checked-in Guest with sanitized fields,
// or a ValidationError on bad name, email, or phone.
func NewGuest(id, eventID, name, email, phone string, qrCode *string, createdAt time.Time) (*Guest, error) {
	name = SanitizeText(name)
	email = SanitizeEmail(email)
	phone = SanitizePhone(phone)
	if qrCode != nil {
		q := SanitizeText(*qrCode)
		qrCode = &q
	}
	if name == "" {
		return nil, NewValidationError("guest name is required")
	}
	if !IsValidEmail(email) {
		return nil, NewValidationError("invalid email format")
	}
	if !IsValidPhone(phone) {
		return nil, NewValidationError("invalid phone number format")
	}
	return &Guest{
		ID:         id,
		EventID:    eventID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		RSVPStatus: RSVPPending,
		QRCode:     qrCode,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}, nil
}

// SetRSVP records the guest's attendance intent. Only yes and no are accepted.
func (g *Guest) SetRSVP(status string, now time.Time) error {
	if status != RSVPYes && status != RSVPNo {
		return NewValidationError("rsvp status must be yes or no")
	}
	g.RSVPStatus = status
	g.RSVPAt = &now
	g.UpdatedAt = now
	return nil
}

// CheckIn stamps the guest as checked in. Fails if already checked in.
func (g *Guest) CheckIn(now time.Time) error {
	if g.CheckedIn {
		return NewValidationError("guest already checked in")
	}
	g.CheckedIn = true
	g.CheckedInAt = &now
	g.UpdatedAt = now
	return nil
}

// CheckOut requires a prior check-in, clears CheckedIn, and sets CheckedOut.
func (g *Guest) CheckOut(now time.Time) error {
	if g.CheckedOut {
		return NewValidationError("guest already checked out")
	}
	if !g.CheckedIn {
		return NewValidationError("guest not checked in yet")
	}
	g.CheckedIn = false
	g.CheckedOut = true
	g.CheckedOutAt = &now
	g.UpdatedAt = now
	return nil
}

// GuestSummary is the trimmed guest view returned to scanning devices.
type GuestSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RSVPStatus string `json:"rsvp_status"`
	CheckedIn  bool   `json:"checked_in"`
}

// Summary returns the guest fields safe to expose to a gate operator.
func (g *Guest) Summary() GuestSummary {
	return GuestSummary{
		ID:         g.ID,
		Name:       g.Name,
		Email:      g.Email,
		RSVPStatus: g.RSVPStatus,
		CheckedIn:  g.CheckedIn,
	}
}

// GuestRepository defines the interface for guest storage
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Guest, int, error)
	Update(ctx context.Context, guest *Guest) error
	Delete(ctx context.Context, id string) error
}

// GuestService defines the business logic for guest management.
type GuestService interface {
	Create(ctx context.Context, eventID, name, email, phone string, qrCode *string) (*Guest, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	ListByEvent(ctx context.Context, eventID string, params PaginationParams) ([]*Guest, int, error)
	Update(ctx context.Context, id string, name, email, phone *string) (*Guest, error)
	SetRSVP(ctx context.Context, id, status string) (*Guest, error)
	CheckOut(ctx context.Context, id string) (*Guest, error)
	Delete(ctx context.Context, id string) error
}
