package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventgate/internal/delivery/http/helpers"
	"eventgate/internal/domain"
)

// CreateGuestRequest is the request body for POST /events/{eventID}/guests.
type CreateGuestRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	QRCode *string `json:"qr_code"`
}

// Validate implements Validator.
func (c CreateGuestRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	return errs
}

// UpdateGuestRequest is the request body for PATCH /guests/{guestID}. All fields are optional.
type UpdateGuestRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// RSVPRequest is the request body for POST /guests/{guestID}/rsvp.
type RSVPRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (r RSVPRequest) Validate() []string {
	if r.Status != domain.RSVPYes && r.Status != domain.RSVPNo {
		return []string{`status must be "yes" or "no"`}
	}
	return nil
}

// GuestSuccessResponse is the success response envelope for single-guest endpoints.
type GuestSuccessResponse struct {
	Data  *domain.Guest     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GuestListResponse is the data payload for GET /events/{eventID}/guests.
type GuestListResponse struct {
	Guests     []*domain.Guest        `json:"guests"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// GuestListSuccessResponse is the success response envelope for GET /events/{eventID}/guests.
type GuestListSuccessResponse struct {
	Data  GuestListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GuestScansSuccessResponse is the success response envelope for GET /guests/{guestID}/scans.
type GuestScansSuccessResponse struct {
	Data  []*domain.Scan    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GuestController handles guest management endpoints.
type GuestController struct {
	Logger      *slog.Logger
	Service     domain.GuestService
	ScanService domain.ScanService
}

// NewGuestController creates a GuestController with the given logger and services.
func NewGuestController(logger *slog.Logger, svc domain.GuestService, scans domain.ScanService) *GuestController {
	return &GuestController{
		Logger:      logger,
		Service:     svc,
		ScanService: scans,
	}
}

// Create godoc
// @Summary Register a guest
// @Description Register a guest for an event and send an invitation email.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body CreateGuestRequest true "Guest data"
// @Success 201 {object} controllers.GuestSuccessResponse "data contains the created guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/guests [post]
func (c *GuestController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	var req CreateGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest, err := c.Service.Create(r.Context(), r.PathValue("eventID"), req.Name, req.Email, req.Phone, req.QRCode)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, guest)
}

// List godoc
// @Summary List guests for an event
// @Description Returns a page of guests plus pagination metadata.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} controllers.GuestListSuccessResponse "data contains guests and pagination"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/guests [get]
func (c *GuestController) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	params := helpers.ParsePagination(r)
	guests, total, err := c.Service.ListByEvent(r.Context(), r.PathValue("eventID"), params)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GuestListResponse{
		Guests:     guests,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Get godoc
// @Summary Get a guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID"
// @Success 200 {object} controllers.GuestSuccessResponse "data contains the guest"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{guestID} [get]
func (c *GuestController) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	guest, err := c.Service.GetByID(r.Context(), r.PathValue("guestID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// Update godoc
// @Summary Update a guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID"
// @Param body body UpdateGuestRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.GuestSuccessResponse "data contains the updated guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{guestID} [patch]
func (c *GuestController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	var req UpdateGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest, err := c.Service.Update(r.Context(), r.PathValue("guestID"), req.Name, req.Email, req.Phone)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// SetRSVP godoc
// @Summary Record a guest's RSVP
// @Description Set the guest's attendance intent to yes or no.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID"
// @Param body body RSVPRequest true "RSVP status"
// @Success 200 {object} controllers.GuestSuccessResponse "data contains the updated guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{guestID}/rsvp [post]
func (c *GuestController) SetRSVP(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest, err := c.Service.SetRSVP(r.Context(), r.PathValue("guestID"), req.Status)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// CheckOut godoc
// @Summary Check a guest out
// @Description Mark a checked-in guest as checked out. Fails if the guest never checked in.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID"
// @Success 200 {object} controllers.GuestSuccessResponse "data contains the updated guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{guestID}/checkout [post]
func (c *GuestController) CheckOut(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	guest, err := c.Service.CheckOut(r.Context(), r.PathValue("guestID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// Scans godoc
// @Summary List a guest's scan history
// @Description Returns every recorded scan attempt for the guest, newest first.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID"
// @Success 200 {object} controllers.GuestScansSuccessResponse "data contains the scans"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{guestID}/scans [get]
func (c *GuestController) Scans(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	guestID := r.PathValue("guestID")
	if _, err := c.Service.GetByID(r.Context(), guestID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	scans, err := c.ScanService.ListByGuest(r.Context(), guestID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, scans)
}

// Delete godoc
// @Summary Delete a guest
// @Tags guests
// @Security BearerAuth
// @Param guestID path string true "Guest ID"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{guestID} [delete]
func (c *GuestController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := organizerID(w, r); !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("guestID")); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
