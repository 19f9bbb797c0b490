package middleware

import (
	"context"
	"net/http"

	h "eventgate/internal/delivery/http/helpers"
	"eventgate/internal/domain"
)

const gateClaimsKey contextKey = "gateClaims"

// SetGateClaims returns a context with the verified gate session claims set.
func SetGateClaims(ctx context.Context, claims *domain.GateSessionClaims) context.Context {
	return context.WithValue(ctx, gateClaimsKey, claims)
}

// GateClaimsFromContext returns the verified gate session claims from the
// context, if present.
func GateClaimsFromContext(ctx context.Context) (*domain.GateSessionClaims, bool) {
	claims, ok := ctx.Value(gateClaimsKey).(*domain.GateSessionClaims)
	return claims, ok
}

// RequireGateSession returns a wrapper that validates the gate session Bearer
// token and sets its claims in the request context. The gate and event
// identity on scan requests comes only from these claims, never the body.
// Any verification failure responds 401 without saying why.
func RequireGateSession(verifier domain.GateTokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, msg := bearerToken(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, msg)
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired gate session")
				return
			}
			r = r.WithContext(SetGateClaims(r.Context(), claims))
			next(w, r)
		}
	}
}
