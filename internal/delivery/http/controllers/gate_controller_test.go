package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventgate/internal/delivery/http/helpers"
	"eventgate/internal/delivery/http/middleware"
	"eventgate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeGateService implements domain.GateService for handler tests.
type fakeGateService struct {
	gate      *domain.Gate
	gates     []*domain.Gate
	err       error
	deleteErr error
}

func (f *fakeGateService) Create(ctx context.Context, eventID, name, accessCode string) (*domain.Gate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gate, nil
}

func (f *fakeGateService) GetByID(ctx context.Context, id string) (*domain.Gate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gate, nil
}

func (f *fakeGateService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Gate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gates, nil
}

func (f *fakeGateService) Update(ctx context.Context, id string, name, accessCode *string) (*domain.Gate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gate, nil
}

func (f *fakeGateService) Activate(ctx context.Context, id string) (*domain.Gate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gate, nil
}

func (f *fakeGateService) Deactivate(ctx context.Context, id string) (*domain.Gate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gate, nil
}

func (f *fakeGateService) RegenerateAccessCode(ctx context.Context, id string) (*domain.Gate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gate, nil
}

func (f *fakeGateService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

// fakeGateSessionService implements domain.GateSessionService for handler tests.
type fakeGateSessionService struct {
	result       *domain.GateAuthResult
	authErr      error
	revokeErr    error
	revokedGates []string
}

func (f *fakeGateSessionService) Authenticate(ctx context.Context, gateID, accessCode string) (*domain.GateAuthResult, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.result, nil
}

func (f *fakeGateSessionService) Revoke(ctx context.Context, gateID string) error {
	f.revokedGates = append(f.revokedGates, gateID)
	return f.revokeErr
}

func (f *fakeGateSessionService) SweepExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestGateController_Authenticate(t *testing.T) {
	now := time.Now()
	gate := &domain.Gate{ID: "gate-1", EventID: "event-1", Name: "Main Entrance", AccessCode: "ABC123", IsActive: true, CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name         string
		body         string
		fakeResult   *domain.GateAuthResult
		fakeErr      error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name: "success",
			body: `{"gateId":"gate-1","accessCode":"ABC123"}`,
			fakeResult: &domain.GateAuthResult{
				Token:     "raw-session-token",
				ExpiresAt: now.Add(4 * time.Hour),
				ExpiresIn: 14400,
				Gate:      gate,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "missing access code",
			body:         `{"gateId":"gate-1"}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "unknown gate",
			body:         `{"gateId":"nope","accessCode":"ABC123"}`,
			fakeErr:      domain.ErrGateNotFound,
			wantStatus:   http.StatusNotFound,
			wantBodyCode: helpers.ErrCodeGateNotFound,
		},
		{
			name:         "wrong access code",
			body:         `{"gateId":"gate-1","accessCode":"WRONG1"}`,
			fakeErr:      domain.ErrInvalidAccessCode,
			wantStatus:   http.StatusForbidden,
			wantBodyCode: helpers.ErrCodeInvalidAccessCode,
		},
		{
			name:         "inactive gate",
			body:         `{"gateId":"gate-1","accessCode":"ABC123"}`,
			fakeErr:      domain.ErrGateInactive,
			wantStatus:   http.StatusForbidden,
			wantBodyCode: helpers.ErrCodeGateInactive,
		},
		{
			name:         "service error",
			body:         `{"gateId":"gate-1","accessCode":"ABC123"}`,
			fakeErr:      assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeGateSessionService{result: tt.fakeResult, authErr: tt.fakeErr}
			ctrl := NewGateController(testLogger(), &fakeGateService{}, sessions, &fakeScanService{})

			req := httptest.NewRequest(http.MethodPost, "http://test/gates/auth", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Authenticate(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var resp GateAuthResponse
				require.NoError(t, json.Unmarshal(dataBytes, &resp))
				assert.Equal(t, "raw-session-token", resp.GateSessionToken)
				assert.Equal(t, 14400, resp.ExpiresIn)
				assert.Equal(t, "gate-1", resp.Gate.ID)
				assert.Equal(t, "Main Entrance", resp.Gate.Name)
				assert.Equal(t, "event-1", resp.Gate.EventID)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
		})
	}
}

func TestGateController_ScanHistory(t *testing.T) {
	now := time.Now()
	gate := &domain.Gate{ID: "gate-1", EventID: "event-1", Name: "Main Entrance", AccessCode: "ABC123", IsActive: true, CreatedAt: now, UpdatedAt: now}

	t.Run("returns the gate's scans", func(t *testing.T) {
		scans := &fakeScanService{scans: []*domain.Scan{
			{ID: "scan-2", GuestID: "guest-1", GateID: "gate-1", EventID: "event-1", Timestamp: now, Result: domain.ScanResultSuccess},
			{ID: "scan-1", GuestID: "guest-2", GateID: "gate-1", EventID: "event-1", Timestamp: now.Add(-time.Minute), Result: domain.ScanResultDenied},
		}}
		ctrl := NewGateController(testLogger(), &fakeGateService{gate: gate}, &fakeGateSessionService{}, scans)

		req := httptest.NewRequest(http.MethodGet, "http://test/gates/gate-1/scans", nil)
		req.SetPathValue("gateID", "gate-1")
		req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
		rr := httptest.NewRecorder()

		ctrl.ScanHistory(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope GateScansSuccessResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		require.Len(t, envelope.Data, 2)
		assert.Equal(t, "scan-2", envelope.Data[0].ID)
		assert.Equal(t, "gate-1", scans.lastGateID)
	})

	t.Run("unknown gate", func(t *testing.T) {
		ctrl := NewGateController(testLogger(), &fakeGateService{err: domain.ErrGateNotFound}, &fakeGateSessionService{}, &fakeScanService{})

		req := httptest.NewRequest(http.MethodGet, "http://test/gates/nope/scans", nil)
		req.SetPathValue("gateID", "nope")
		req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
		rr := httptest.NewRecorder()

		ctrl.ScanHistory(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})
}

func TestGateController_RevokeSession(t *testing.T) {
	tests := []struct {
		name        string
		authedAs    string
		fakeErr     error
		wantStatus  int
		wantRevoked []string
	}{
		{
			name:        "success",
			authedAs:    "org-1",
			wantStatus:  http.StatusNoContent,
			wantRevoked: []string{"gate-1"},
		},
		{
			name:       "unauthenticated",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no session for gate",
			authedAs:   "org-1",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeGateSessionService{revokeErr: tt.fakeErr}
			ctrl := NewGateController(testLogger(), &fakeGateService{}, sessions, &fakeScanService{})

			req := httptest.NewRequest(http.MethodDelete, "http://test/gates/gate-1/session", nil)
			req.SetPathValue("gateID", "gate-1")
			if tt.authedAs != "" {
				req = req.WithContext(middleware.SetOrganizerID(req.Context(), tt.authedAs))
			}
			rr := httptest.NewRecorder()

			ctrl.RevokeSession(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantRevoked != nil {
				assert.Equal(t, tt.wantRevoked, sessions.revokedGates)
			}
		})
	}
}
