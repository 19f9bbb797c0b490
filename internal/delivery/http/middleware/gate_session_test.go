package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventgate/internal/delivery/http/helpers"
	"eventgate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateTokenVerifier implements domain.GateTokenVerifier for tests.
type fakeGateTokenVerifier struct {
	claims *domain.GateSessionClaims
	err    error
}

func (f *fakeGateTokenVerifier) Verify(_ string) (*domain.GateSessionClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func TestRequireGateSession(t *testing.T) {
	operator := "op-1"

	tests := []struct {
		name       string
		authHeader string
		verifier   domain.GateTokenVerifier
		wantStatus int
		nextCalled bool
		wantClaims *domain.GateSessionClaims
	}{
		{
			name:       "valid token sets claims and calls next",
			authHeader: "Bearer gate-token",
			verifier: &fakeGateTokenVerifier{claims: &domain.GateSessionClaims{
				GateID:     "gate-1",
				EventID:    "event-1",
				OperatorID: &operator,
			}},
			wantStatus: http.StatusOK,
			nextCalled: true,
			wantClaims: &domain.GateSessionClaims{
				GateID:     "gate-1",
				EventID:    "event-1",
				OperatorID: &operator,
			},
		},
		{
			name:       "missing authorization header",
			authHeader: "",
			verifier:   &fakeGateTokenVerifier{claims: &domain.GateSessionClaims{GateID: "gate-1"}},
			wantStatus: http.StatusUnauthorized,
			nextCalled: false,
		},
		{
			name:       "expired or forged token",
			authHeader: "Bearer bad-token",
			verifier:   &fakeGateTokenVerifier{err: domain.ErrInvalidGateToken},
			wantStatus: http.StatusUnauthorized,
			nextCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var captured *domain.GateSessionClaims
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if claims, ok := GateClaimsFromContext(r.Context()); ok {
					captured = claims
				}
				w.WriteHeader(http.StatusOK)
			}
			handler := RequireGateSession(tt.verifier)(next)

			req := httptest.NewRequest(http.MethodPost, "http://test/scan", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.wantClaims != nil {
				require.NotNil(t, captured)
				assert.Equal(t, tt.wantClaims.GateID, captured.GateID)
				assert.Equal(t, tt.wantClaims.EventID, captured.EventID)
				assert.Equal(t, tt.wantClaims.OperatorID, captured.OperatorID)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
			}
		})
	}
}

// The middleware must not leak whether the failure was a bad signature, an
// expired token, or garbage input.
func TestRequireGateSessionUniformFailureMessage(t *testing.T) {
	for _, verifier := range []*fakeGateTokenVerifier{
		{err: domain.ErrInvalidGateToken},
		{err: assert.AnError},
	} {
		handler := RequireGateSession(verifier)(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next should not be called")
		})
		req := httptest.NewRequest(http.MethodPost, "http://test/scan", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		rr := httptest.NewRecorder()

		handler(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "invalid or expired gate session", envelope.Error.Message)
	}
}
