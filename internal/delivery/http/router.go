package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventgate/internal/delivery/http/controllers"
	"eventgate/internal/delivery/http/middleware"
	"eventgate/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Organizer routes require an organizer bearer token; /scan requires a gate
// session token; /auth/* and /gates/auth are public.
func NewRouter(
	organizerController *controllers.OrganizerController,
	eventController *controllers.EventController,
	gateController *controllers.GateController,
	guestController *controllers.GuestController,
	scanController *controllers.ScanController,
	verifier domain.TokenVerifier,
	gateVerifier domain.GateTokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)
	gateAuth := middleware.RequireGateSession(gateVerifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", organizerController.SignUp)
	mux.HandleFunc("POST /auth/signin", organizerController.SignIn)
	mux.HandleFunc("GET /organizers/me", auth(organizerController.GetMe))
	mux.HandleFunc("PATCH /organizers/me", auth(organizerController.UpdateMe))

	// Events
	mux.HandleFunc("POST /events", auth(eventController.Create))
	mux.HandleFunc("GET /events", auth(eventController.List))
	mux.HandleFunc("GET /events/{eventID}", auth(eventController.Get))
	mux.HandleFunc("PATCH /events/{eventID}", auth(eventController.Update))
	mux.HandleFunc("DELETE /events/{eventID}", auth(eventController.Delete))
	mux.HandleFunc("POST /events/{eventID}/publish", auth(eventController.Publish))
	mux.HandleFunc("POST /events/{eventID}/cancel", auth(eventController.Cancel))

	// Gates
	mux.HandleFunc("POST /events/{eventID}/gates", auth(gateController.Create))
	mux.HandleFunc("GET /events/{eventID}/gates", auth(gateController.List))
	mux.HandleFunc("GET /gates/{gateID}", auth(gateController.Get))
	mux.HandleFunc("PATCH /gates/{gateID}", auth(gateController.Update))
	mux.HandleFunc("DELETE /gates/{gateID}", auth(gateController.Delete))
	mux.HandleFunc("POST /gates/{gateID}/activate", auth(gateController.Activate))
	mux.HandleFunc("POST /gates/{gateID}/deactivate", auth(gateController.Deactivate))
	mux.HandleFunc("POST /gates/{gateID}/regenerate-code", auth(gateController.RegenerateCode))
	mux.HandleFunc("GET /gates/{gateID}/scans", auth(gateController.ScanHistory))
	mux.HandleFunc("DELETE /gates/{gateID}/session", auth(gateController.RevokeSession))

	// Gate device authentication (public; the access code is the credential)
	mux.HandleFunc("POST /gates/auth", gateController.Authenticate)

	// Guests
	mux.HandleFunc("POST /events/{eventID}/guests", auth(guestController.Create))
	mux.HandleFunc("GET /events/{eventID}/guests", auth(guestController.List))
	mux.HandleFunc("GET /guests/{guestID}", auth(guestController.Get))
	mux.HandleFunc("PATCH /guests/{guestID}", auth(guestController.Update))
	mux.HandleFunc("DELETE /guests/{guestID}", auth(guestController.Delete))
	mux.HandleFunc("POST /guests/{guestID}/rsvp", auth(guestController.SetRSVP))
	mux.HandleFunc("POST /guests/{guestID}/checkout", auth(guestController.CheckOut))
	mux.HandleFunc("GET /guests/{guestID}/scans", auth(guestController.Scans))

	// Scans
	mux.HandleFunc("POST /scan", gateAuth(scanController.Process))
	mux.HandleFunc("GET /events/{eventID}/scans", auth(scanController.ListByEvent))
	mux.HandleFunc("GET /scans/{scanID}", auth(scanController.Get))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
