package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventgate/internal/domain"
)

// gateSessionTokenType is the type discriminator carried in every gate
// session token. Verification rejects tokens without it so an organizer
// token can never be replayed as a gate credential.
const gateSessionTokenType = "gate_session"

type gateSessionClaims struct {
	jwt.RegisteredClaims
	Type       string  `json:"type"`
	GateID     string  `json:"gateId"`
	EventID    string  `json:"eventId"`
	OperatorID *string `json:"operatorId"`
}

type gateTokenCodec struct {
	secret []byte
}

// NewGateTokenIssuer returns a GateTokenIssuer that signs gate session JWTs
// with HS256 using the given secret. Tokens expire after domain.GateSessionTTL.
func NewGateTokenIssuer(secret string) domain.GateTokenIssuer {
	return &gateTokenCodec{secret: []byte(secret)}
}

// NewGateTokenVerifier returns a GateTokenVerifier for tokens minted with the
// same secret.
func NewGateTokenVerifier(secret string) domain.GateTokenVerifier {
	return &gateTokenCodec{secret: []byte(secret)}
}

func (c *gateTokenCodec) Issue(gateID, eventID string, operatorID *string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(domain.GateSessionTTL)
	claims := gateSessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Type:       gateSessionTokenType,
		GateID:     gateID,
		EventID:    eventID,
		OperatorID: operatorID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign gate session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry, then the payload shape. Every failure
// collapses to domain.ErrInvalidGateToken so callers cannot distinguish an
// expired token from a tampered one.
func (c *gateTokenCodec) Verify(token string) (*domain.GateSessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &gateSessionClaims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidGateToken
	}
	claims, ok := parsed.Claims.(*gateSessionClaims)
	if !ok {
		return nil, domain.ErrInvalidGateToken
	}
	if claims.Type != gateSessionTokenType || claims.GateID == "" || claims.EventID == "" {
		return nil, domain.ErrInvalidGateToken
	}
	return &domain.GateSessionClaims{
		GateID:     claims.GateID,
		EventID:    claims.EventID,
		OperatorID: claims.OperatorID,
	}, nil
}
