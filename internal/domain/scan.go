package domain

import (
	"context"
	"time"
)

// Scan results.
const (
	ScanResultSuccess = "success"
	ScanResultDenied  = "denied"
	ScanResultInvalid = "invalid"
)

// Scan is an immutable record of one attempt to admit a guest at a gate.
// Every attempt is recorded regardless of outcome; rows are never updated.
// swagger:model Scan
type Scan struct {
	ID        string    `json:"id"`
	GuestID   string    `json:"guest_id"`
	GateID    string    `json:"gate_id"`
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Result    string    `json:"result"`
	ScanData  *string   `json:"scan_data"`
	CreatedAt time.Time `json:"created_at"`
}

// NewScan returns a Scan, or a ValidationError on missing references or an
// unknown result.
func NewScan(id, guestID, gateID, eventID string, timestamp time.Time, result string, scanData *string) (*Scan, error) {
	if guestID == "" {
		return nil, NewValidationError("guest id is required")
	}
	if gateID == "" {
		return nil, NewValidationError("gate id is required")
	}
	if eventID == "" {
		return nil, NewValidationError("event id is required")
	}
	switch result {
	case ScanResultSuccess, ScanResultDenied, ScanResultInvalid:
	default:
		return nil, NewValidationError("invalid scan result")
	}
	if scanData != nil {
		d := SanitizeText(*scanData)
		scanData = &d
	}
	return &Scan{
		ID:        id,
		GuestID:   guestID,
		GateID:    gateID,
		EventID:   eventID,
		Timestamp: timestamp,
		Result:    result,
		ScanData:  scanData,
		CreatedAt: timestamp,
	}, nil
}

// GateSummary is the trimmed gate view returned alongside a scan. It never
// carries the access code.
type GateSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScanOutcome is the result of processing one scan request.
type ScanOutcome struct {
	Scan  *Scan        `json:"scan"`
	Guest GuestSummary `json:"guest"`
	Gate  GateSummary  `json:"gate"`
}

// ScanRepository defines the interface for scan storage. Append-only: there
// is deliberately no update method.
type ScanRepository interface {
	Create(ctx context.Context, scan *Scan) error
	GetByID(ctx context.Context, id string) (*Scan, error)
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Scan, int, error)
	ListByGuestID(ctx context.Context, guestID string) ([]*Scan, error)
	ListByGateID(ctx context.Context, gateID string) ([]*Scan, error)
}

// ScanService classifies scan attempts and applies the check-in side effect.
type ScanService interface {
	Process(ctx context.Context, guestID, gateID, eventID string, scanData *string) (*ScanOutcome, error)
	GetByID(ctx context.Context, id string) (*Scan, error)
	ListByEvent(ctx context.Context, eventID string, params PaginationParams) ([]*Scan, int, error)
	ListByGuest(ctx context.Context, guestID string) ([]*Scan, error)
	ListByGate(ctx context.Context, gateID string) ([]*Scan, error)
}
