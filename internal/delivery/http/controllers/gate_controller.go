package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventgate/internal/delivery/http/helpers"
	"eventgate/internal/domain"
)

// CreateGateRequest is the request body for POST /events/{eventID}/gates.
// An empty access_code gets a generated one.
type CreateGateRequest struct {
	Name       string `json:"name"`
	AccessCode string `json:"access_code"`
}

// Validate implements Validator.
func (c CreateGateRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// UpdateGateRequest is the request body for PATCH /gates/{gateID}. Both fields are optional.
type UpdateGateRequest struct {
	Name       *string `json:"name"`
	AccessCode *string `json:"access_code"`
}

// GateAuthRequest is the request body for POST /gates/auth.
type GateAuthRequest struct {
	GateID     string `json:"gateId"`
	AccessCode string `json:"accessCode"`
}

// Validate implements Validator.
func (g GateAuthRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(g.GateID) == "" {
		errs = append(errs, "gateId is required")
	}
	if g.AccessCode == "" {
		errs = append(errs, "accessCode is required")
	}
	return errs
}

// GateAuthGate is the trimmed gate view in the auth response. It never
// carries the access code.
type GateAuthGate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	EventID string `json:"eventId"`
}

// GateAuthResponse is the response body for POST /gates/auth. The token is
// returned exactly once and never retrievable again.
type GateAuthResponse struct {
	GateSessionToken string       `json:"gateSessionToken"`
	ExpiresAt        time.Time    `json:"expiresAt"`
	ExpiresIn        int          `json:"expiresIn"`
	Gate             GateAuthGate `json:"gate"`
}

// GateSuccessResponse is the success response envelope for single-gate endpoints.
type GateSuccessResponse struct {
	Data  *domain.Gate      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GateListSuccessResponse is the success response envelope for GET /events/{eventID}/gates.
type GateListSuccessResponse struct {
	Data  []*domain.Gate    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GateAuthSuccessResponse is the success response envelope for POST /gates/auth (201).
type GateAuthSuccessResponse struct {
	Data  GateAuthResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GateScansSuccessResponse is the success response envelope for GET /gates/{gateID}/scans.
type GateScansSuccessResponse struct {
	Data  []*domain.Scan    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GateController handles gate management and gate authentication.
type GateController struct {
	Logger   *slog.Logger
	Service  domain.GateService
	Sessions domain.GateSessionService
	Scans    domain.ScanService
}

// NewGateController creates a GateController with the given logger and services.
func NewGateController(logger *slog.Logger, svc domain.GateService, sessions domain.GateSessionService, scans domain.ScanService) *GateController {
	return &GateController{
		Logger:   logger,
		Service:  svc,
		Sessions: sessions,
		Scans:    scans,
	}
}

// Create godoc
// @Summary Create a gate
// @Description Add a check-in gate to an event. Omitting access_code generates one.
// @Tags gates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body CreateGateRequest true "Gate data"
// @Success 201 {object} controllers.GateSuccessResponse "data contains the created gate"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /events/{eventID}/gates [post]
func (c *GateController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	var req CreateGateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	gate, err := c.Service.Create(r.Context(), r.PathValue("eventID"), req.Name, req.AccessCode)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, gate)
}

// List godoc
// @Summary List gates for an event
// @Tags gates
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GateListSuccessResponse "data contains the gates"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/gates [get]
func (c *GateController) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	gates, err := c.Service.ListByEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gates)
}

// Get godoc
// @Summary Get a gate
// @Tags gates
// @Produce json
// @Security BearerAuth
// @Param gateID path string true "Gate ID"
// @Success 200 {object} controllers.GateSuccessResponse "data contains the gate"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /gates/{gateID} [get]
func (c *GateController) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	gate, err := c.Service.GetByID(r.Context(), r.PathValue("gateID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gate)
}

// Update godoc
// @Summary Update a gate
// @Tags gates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gateID path string true "Gate ID"
// @Param body body UpdateGateRequest true "Fields to update (both optional)"
// @Success 200 {object} controllers.GateSuccessResponse "data contains the updated gate"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /gates/{gateID} [patch]
func (c *GateController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	var req UpdateGateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	gate, err := c.Service.Update(r.Context(), r.PathValue("gateID"), req.Name, req.AccessCode)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gate)
}

// Activate godoc
// @Summary Activate a gate
// @Tags gates
// @Produce json
// @Security BearerAuth
// @Param gateID path string true "Gate ID"
// @Success 200 {object} controllers.GateSuccessResponse "data contains the gate"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /gates/{gateID}/activate [post]
func (c *GateController) Activate(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	gate, err := c.Service.Activate(r.Context(), r.PathValue("gateID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gate)
}

// Deactivate godoc
// @Summary Deactivate a gate
// @Description Deactivating blocks new gate authentications and makes scans at this gate deny.
// @Tags gates
// @Produce json
// @Security BearerAuth
// @Param gateID path string true "Gate ID"
// @Success 200 {object} controllers.GateSuccessResponse "data contains the gate"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /gates/{gateID}/deactivate [post]
func (c *GateController) Deactivate(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	gate, err := c.Service.Deactivate(r.Context(), r.PathValue("gateID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gate)
}

// RegenerateCode godoc
// @Summary Regenerate a gate's access code
// @Description Replaces the access code with a fresh generated one. The old code stops working immediately.
// @Tags gates
// @Produce json
// @Security BearerAuth
// @Param gateID path string true "Gate ID"
// @Success 200 {object} controllers.GateSuccessResponse "data contains the gate with its new code"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /gates/{gateID}/regenerate-code [post]
func (c *GateController) RegenerateCode(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	gate, err := c.Service.RegenerateAccessCode(r.Context(), r.PathValue("gateID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gate)
}

// ScanHistory godoc
// @Summary List a gate's scan history
// @Description Returns every scan attempt recorded at the gate, newest first.
// @Tags gates
// @Produce json
// @Security BearerAuth
// @Param gateID path string true "Gate ID"
// @Success 200 {object} controllers.GateScansSuccessResponse "data contains the scans"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /gates/{gateID}/scans [get]
func (c *GateController) ScanHistory(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	gateID := r.PathValue("gateID")
	if _, err := c.Service.GetByID(r.Context(), gateID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	scans, err := c.Scans.ListByGate(r.Context(), gateID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, scans)
}

// Delete godoc
// @Summary Delete a gate
// @Tags gates
// @Security BearerAuth
// @Param gateID path string true "Gate ID"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /gates/{gateID} [delete]
func (c *GateController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("gateID")); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Authenticate godoc
// @Summary Authenticate a gate device
// @Description Exchange a gate ID and access code for a 4-hour gate session token. Replaces any existing session for the gate. This endpoint is public; the access code is the credential.
// @Tags gate-auth
// @Accept json
// @Produce json
// @Param body body GateAuthRequest true "Gate credentials"
// @Success 201 {object} controllers.GateAuthSuccessResponse "data contains the session token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: INVALID_ACCESS_CODE or GATE_INACTIVE"
// @Failure 404 {object} helpers.APIResponse "error.code: GATE_NOT_FOUND"
// @Router /gates/auth [post]
func (c *GateController) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req GateAuthRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Sessions.Authenticate(r.Context(), req.GateID, req.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGateNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeGateNotFound, "gate not found")
		case errors.Is(err, domain.ErrInvalidAccessCode):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeInvalidAccessCode, "invalid gate access code")
		case errors.Is(err, domain.ErrGateInactive):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeGateInactive, "gate is not active")
		default:
			writeDomainError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, GateAuthResponse{
		GateSessionToken: result.Token,
		ExpiresAt:        result.ExpiresAt,
		ExpiresIn:        result.ExpiresIn,
		Gate: GateAuthGate{
			ID:      result.Gate.ID,
			Name:    result.Gate.Name,
			EventID: result.Gate.EventID,
		},
	})
}

// RevokeSession godoc
// @Summary Revoke a gate's active session
// @Description Removes the stored session for a gate. Outstanding tokens keep verifying until they expire; revocation only clears the session record.
// @Tags gate-auth
// @Security BearerAuth
// @Param gateID path string true "Gate ID"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /gates/{gateID}/session [delete]
func (c *GateController) RevokeSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	if err := c.Sessions.Revoke(r.Context(), r.PathValue("gateID")); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
