package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventgate/internal/delivery/http/helpers"
	"eventgate/internal/delivery/http/middleware"
	"eventgate/internal/domain"
)

// ScanRequest is the request body for POST /scan. The gate and event come
// from the verified session token, never the body.
type ScanRequest struct {
	GuestID  string  `json:"guestId"`
	ScanData *string `json:"scanData"`
}

// Validate implements Validator.
func (s ScanRequest) Validate() []string {
	if strings.TrimSpace(s.GuestID) == "" {
		return []string{"guestId is required"}
	}
	return nil
}

// ScanSuccessResponse is the success response envelope for POST /scan (201).
type ScanSuccessResponse struct {
	Data  *domain.ScanOutcome `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ScanListResponse is the data payload for GET /events/{eventID}/scans.
type ScanListResponse struct {
	Scans      []*domain.Scan         `json:"scans"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ScanListSuccessResponse is the success response envelope for GET /events/{eventID}/scans.
type ScanListSuccessResponse struct {
	Data  ScanListResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ScanController handles scan processing and the scan audit trail.
type ScanController struct {
	Logger  *slog.Logger
	Service domain.ScanService
}

// NewScanController creates a ScanController with the given logger and service.
func NewScanController(logger *slog.Logger, svc domain.ScanService) *ScanController {
	return &ScanController{
		Logger:  logger,
		Service: svc,
	}
}

// Process godoc
// @Summary Process a scan
// @Description Classify an admission attempt for a guest at the gate bound to the session token. The outcome (success, denied, invalid) is recorded either way; only missing entities abort without a record. Requires a gate session token.
// @Tags scans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ScanRequest true "Scan data"
// @Success 201 {object} controllers.ScanSuccessResponse "data contains the scan, guest summary, and gate summary"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: GUEST_NOT_FOUND, GATE_NOT_FOUND, or EVENT_NOT_FOUND"
// @Router /scan [post]
func (c *ScanController) Process(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GateClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req ScanRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	outcome, err := c.Service.Process(r.Context(), req.GuestID, claims.GateID, claims.EventID, req.ScanData)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGuestNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeGuestNotFound, "guest not found")
		case errors.Is(err, domain.ErrGateNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeGateNotFound, "gate not found")
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeEventNotFound, "event not found")
		default:
			writeDomainError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, outcome)
}

// ListByEvent godoc
// @Summary List scans for an event
// @Description Returns a page of the event's scan trail, newest first.
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} controllers.ScanListSuccessResponse "data contains scans and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events/{eventID}/scans [get]
func (c *ScanController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	params := helpers.ParsePagination(r)
	scans, total, err := c.Service.ListByEvent(r.Context(), r.PathValue("eventID"), params)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ScanListResponse{
		Scans:      scans,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Get godoc
// @Summary Get a scan
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Param scanID path string true "Scan ID"
// @Success 200 {object} helpers.APIResponse "data contains the scan"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /scans/{scanID} [get]
func (c *ScanController) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	scan, err := c.Service.GetByID(r.Context(), r.PathValue("scanID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, scan)
}
