package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"eventgate/internal/domain"
	"eventgate/internal/idgen"
)

type gateSessionService struct {
	gateRepo    domain.GateRepository
	sessionRepo domain.GateSessionRepository
	issuer      domain.GateTokenIssuer
}

// NewGateSessionService creates a GateSessionService backed by the given
// repositories and token issuer.
func NewGateSessionService(gateRepo domain.GateRepository, sessionRepo domain.GateSessionRepository, issuer domain.GateTokenIssuer) domain.GateSessionService {
	return &gateSessionService{
		gateRepo:    gateRepo,
		sessionRepo: sessionRepo,
		issuer:      issuer,
	}
}

// hashToken returns the hex SHA-256 digest stored in place of the raw token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Authenticate checks the access code for a gate and, on success, replaces any
// existing session for that gate with a fresh one. The raw token is returned
// once and only its hash is persisted.
func (s *gateSessionService) Authenticate(ctx context.Context, gateID, accessCode string) (*domain.GateAuthResult, error) {
	gate, err := s.gateRepo.GetByID(ctx, gateID)
	if err != nil {
		if errors.Is(err, domain.ErrGateNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrGateNotFound
		}
		return nil, fmt.Errorf("failed to load gate: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(gate.AccessCode), []byte(accessCode)) != 1 {
		return nil, domain.ErrInvalidAccessCode
	}
	if !gate.IsActive {
		return nil, domain.ErrGateInactive
	}

	token, expiresAt, err := s.issuer.Issue(gate.ID, gate.EventID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to issue gate token: %w", err)
	}

	now := time.Now()
	session, err := domain.NewGateSession(idgen.NewID(), gate.ID, gate.EventID, nil, hashToken(token), expiresAt, now)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.ReplaceForGate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store gate session: %w", err)
	}

	return &domain.GateAuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		ExpiresIn: int(domain.GateSessionTTL.Seconds()),
		Gate:      gate,
	}, nil
}

// Revoke removes the active session for a gate, if any.
func (s *gateSessionService) Revoke(ctx context.Context, gateID string) error {
	if err := s.sessionRepo.DeleteByGateID(ctx, gateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to revoke gate session: %w", err)
	}
	return nil
}

// SweepExpired deletes sessions past their expiry and returns how many were
// removed. Expired tokens are already rejected by the verifier; this just
// keeps the table from accumulating dead rows.
func (s *gateSessionService) SweepExpired(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx, time.Now())
}
