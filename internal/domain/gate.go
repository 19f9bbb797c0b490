package domain

import (
	"context"
	"time"
)

// Gate name and access code bounds.
const (
	GateNameMaxLen       = 100
	GateAccessCodeMinLen = 4
	GateAccessCodeMaxLen = 32
)

// Gate represents a check-in point tied to one event, guarded by an access code
// swagger:model Gate
type Gate struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	Name       string    `json:"name"`
	AccessCode string    `json:"access_code"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewGate returns an active Gate with sanitized fields, or a ValidationError
// if name or access code violate their bounds.
func NewGate(id, eventID, name, accessCode string, createdAt time.Time) (*Gate, error) {
	name = SanitizeText(name)
	accessCode = SanitizeText(accessCode)
	if err := validateGateFields(name, accessCode); err != nil {
		return nil, err
	}
	return &Gate{
		ID:         id,
		EventID:    eventID,
		Name:       name,
		AccessCode: accessCode,
		IsActive:   true,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}, nil
}

func validateGateFields(name, accessCode string) error {
	if name == "" {
		return NewValidationError("gate name is required")
	}
	if len(name) > GateNameMaxLen {
		return NewValidationError("gate name is too long")
	}
	if accessCode == "" {
		return NewValidationError("access code is required")
	}
	if len(accessCode) < GateAccessCodeMinLen || len(accessCode) > GateAccessCodeMaxLen {
		return NewValidationError("access code length is out of bounds")
	}
	return nil
}

// Activate marks the gate active. Fails if it already is.
func (g *Gate) Activate(now time.Time) error {
	if g.IsActive {
		return NewValidationError("gate is already active")
	}
	g.IsActive = true
	g.UpdatedAt = now
	return nil
}

// Deactivate marks the gate inactive. Fails if it already is.
func (g *Gate) Deactivate(now time.Time) error {
	if !g.IsActive {
		return NewValidationError("gate is already inactive")
	}
	g.IsActive = false
	g.UpdatedAt = now
	return nil
}

// SetAccessCode replaces the access code after validating bounds.
func (g *Gate) SetAccessCode(code string, now time.Time) error {
	code = SanitizeText(code)
	if err := validateGateFields(g.Name, code); err != nil {
		return err
	}
	g.AccessCode = code
	g.UpdatedAt = now
	return nil
}

// Rename replaces the gate name after validating bounds.
func (g *Gate) Rename(name string, now time.Time) error {
	name = SanitizeText(name)
	if err := validateGateFields(name, g.AccessCode); err != nil {
		return err
	}
	g.Name = name
	g.UpdatedAt = now
	return nil
}

// AccessCodeGenerator produces short unguessable gate access codes.
type AccessCodeGenerator interface {
	Generate() (string, error)
}

// GateRepository defines the interface for gate storage
type GateRepository interface {
	Create(ctx context.Context, gate *Gate) error
	GetByID(ctx context.Context, id string) (*Gate, error)
	GetByAccessCode(ctx context.Context, accessCode string) (*Gate, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Gate, error)
	Update(ctx context.Context, gate *Gate) error
	Delete(ctx context.Context, id string) error
}

// GateService defines the business logic for gate management.
type GateService interface {
	Create(ctx context.Context, eventID, name, accessCode string) (*Gate, error)
	GetByID(ctx context.Context, id string) (*Gate, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Gate, error)
	Update(ctx context.Context, id string, name, accessCode *string) (*Gate, error)
	Activate(ctx context.Context, id string) (*Gate, error)
	Deactivate(ctx context.Context, id string) (*Gate, error)
	RegenerateAccessCode(ctx context.Context, id string) (*Gate, error)
	Delete(ctx context.Context, id string) error
}
