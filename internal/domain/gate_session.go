package domain

import (
	"context"
	"time"
)

// GateSessionTTL is the fixed lifetime of a gate session token.
const GateSessionTTL = 4 * time.Hour

// GateSession is the persisted record of one active gate credential. Only the
// SHA-256 hash of the issued token is stored; the raw token is returned to the
// caller once and never persisted. At most one session exists per gate.
// swagger:model GateSession
type GateSession struct {
	ID         string    `json:"id"`
	GateID     string    `json:"gate_id"`
	EventID    string    `json:"event_id"`
	OperatorID *string   `json:"operator_id"`
	TokenHash  string    `json:"-"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewGateSession returns a GateSession, or a ValidationError on missing
// fields. OperatorID stays nil for anonymous operators.
func NewGateSession(id, gateID, eventID string, operatorID *string, tokenHash string, expiresAt, createdAt time.Time) (*GateSession, error) {
	if gateID == "" {
		return nil, NewValidationError("gate id is required")
	}
	if eventID == "" {
		return nil, NewValidationError("event id is required")
	}
	if tokenHash == "" {
		return nil, NewValidationError("token hash is required")
	}
	if expiresAt.IsZero() {
		return nil, NewValidationError("expiration is required")
	}
	return &GateSession{
		ID:         id,
		GateID:     gateID,
		EventID:    eventID,
		OperatorID: operatorID,
		TokenHash:  tokenHash,
		ExpiresAt:  expiresAt,
		CreatedAt:  createdAt,
	}, nil
}

// IsExpired reports whether the session has passed its absolute expiry.
func (s *GateSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// GateSessionClaims is the verified triple recovered from a gate session
// token. It is the sole source of gate and event identity on scan requests.
type GateSessionClaims struct {
	GateID     string
	EventID    string
	OperatorID *string
}

// GateTokenIssuer mints signed, time-limited gate session tokens.
type GateTokenIssuer interface {
	Issue(gateID, eventID string, operatorID *string) (token string, expiresAt time.Time, err error)
}

// GateTokenVerifier validates a gate session token and recovers its claims.
// Any failure (bad signature, expired, malformed payload) yields
// ErrInvalidGateToken; callers cannot distinguish the cause.
type GateTokenVerifier interface {
	Verify(token string) (*GateSessionClaims, error)
}

// GateSessionRepository defines the interface for gate session storage.
type GateSessionRepository interface {
	// ReplaceForGate deletes any existing session for session.GateID and
	// inserts the new one. The two statements are not wrapped in a
	// transaction; a failure between them leaves the gate briefly
	// sessionless, matching the documented delete-then-insert behavior.
	ReplaceForGate(ctx context.Context, session *GateSession) error
	GetByGateID(ctx context.Context, gateID string) (*GateSession, error)
	DeleteByGateID(ctx context.Context, gateID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// GateAuthResult is returned from a successful gate authentication. Token is
// the raw credential; it is not stored anywhere.
type GateAuthResult struct {
	Token     string
	ExpiresAt time.Time
	ExpiresIn int
	Gate      *Gate
}

// GateSessionService implements gate authentication and session upkeep.
type GateSessionService interface {
	Authenticate(ctx context.Context, gateID, accessCode string) (*GateAuthResult, error)
	Revoke(ctx context.Context, gateID string) error
	SweepExpired(ctx context.Context) (int64, error)
}
