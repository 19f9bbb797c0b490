package domain

import (
	"context"
	"time"
)

// Organizer roles.
const (
	OrganizerRoleOwner = "owner"
	OrganizerRoleAdmin = "admin"
	OrganizerRoleStaff = "staff"
)

// Organizer represents an organizer account
// swagger:model Organizer
type Organizer struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewOrganizer returns an active staff Organizer with sanitized fields, or a
// ValidationError on bad name or email.
func NewOrganizer(id, email, name, passwordHash string, createdAt time.Time) (*Organizer, error) {
	email = SanitizeEmail(email)
	name = SanitizeText(name)
	if name == "" {
		return nil, NewValidationError("organizer name is required")
	}
	if !IsValidEmail(email) {
		return nil, NewValidationError("invalid email format")
	}
	return &Organizer{
		ID:           id,
		Email:        email,
		Name:         name,
		Role:         OrganizerRoleStaff,
		IsActive:     true,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}, nil
}

// UpdateDetails applies optional name, email, and role changes.
func (o *Organizer) UpdateDetails(name, email, role *string, now time.Time) error {
	if name != nil {
		n := SanitizeText(*name)
		if n == "" {
			return NewValidationError("organizer name is required")
		}
		o.Name = n
	}
	if email != nil {
		e := SanitizeEmail(*email)
		if !IsValidEmail(e) {
			return NewValidationError("invalid email format")
		}
		o.Email = e
	}
	if role != nil {
		switch *role {
		case OrganizerRoleOwner, OrganizerRoleAdmin, OrganizerRoleStaff:
			o.Role = *role
		default:
			return NewValidationError("invalid organizer role")
		}
	}
	o.UpdatedAt = now
	return nil
}

// PasswordHasher hashes and verifies organizer passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues bearer tokens for an authenticated organizer.
type TokenIssuer interface {
	Issue(organizerID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies an organizer token and returns the organizer ID.
type TokenVerifier interface {
	Verify(token string) (organizerID string, err error)
}

// OrganizerRepository defines the interface for organizer storage
type OrganizerRepository interface {
	Create(ctx context.Context, organizer *Organizer) error
	GetByID(ctx context.Context, id string) (*Organizer, error)
	GetByEmail(ctx context.Context, email string) (*Organizer, error)
	Update(ctx context.Context, organizer *Organizer) error
}

// OrganizerService defines the business logic for organizer accounts.
type OrganizerService interface {
	SignUp(ctx context.Context, email, password, name string) (token string, organizer *Organizer, err error)
	SignIn(ctx context.Context, email, password string) (token string, organizer *Organizer, err error)
	GetByID(ctx context.Context, id string) (*Organizer, error)
	Update(ctx context.Context, id, callerID string, name, email, role *string) (*Organizer, error)
}
