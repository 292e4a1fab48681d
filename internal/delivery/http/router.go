package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"clubevents/internal/delivery/http/controllers"
	"clubevents/internal/delivery/http/middleware"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Members *controllers.MemberController
	Events  *controllers.EventController
	RSVPs   *controllers.RSVPController
	Pages   *controllers.PageController
	Health  *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// HTML pages
	mux.HandleFunc("GET /{$}", c.Pages.Index)
	mux.HandleFunc("GET /members", c.Pages.MemberList)
	mux.HandleFunc("GET /events", c.Pages.EventList)
	mux.HandleFunc("GET /events/{eventID}", c.Pages.EventDetail)
	mux.HandleFunc("GET /rsvp/{eventID}/{memberID}", c.Pages.RSVP)
	mux.HandleFunc("GET /cancel_rsvp/{eventID}/{memberID}", c.Pages.CancelRSVP)
	mux.HandleFunc("/", c.Pages.NotFound)

	// API Routes
	mux.HandleFunc("GET /api/members", c.Members.ListMembers)
	mux.HandleFunc("GET /api/members/{memberID}", c.Members.GetMember)
	mux.HandleFunc("GET /api/members/{memberID}/events", c.Members.ListMemberEvents)

	mux.HandleFunc("GET /api/events", c.Events.ListEvents)
	mux.HandleFunc("GET /api/events/upcoming", c.Events.ListUpcoming)
	mux.HandleFunc("GET /api/events/{eventID}", c.Events.GetEvent)
	mux.HandleFunc("GET /api/events/{eventID}/attendees", c.Events.ListAttendees)

	mux.HandleFunc("POST /api/events/{eventID}/rsvps", c.RSVPs.Confirm)
	mux.HandleFunc("DELETE /api/events/{eventID}/rsvps/{memberID}", c.RSVPs.Cancel)

	mux.HandleFunc("GET /healthz", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with request id, logging and CORS middleware.
func NewHandler(c Controllers, logger *slog.Logger, allowedOrigins []string) http.Handler {
	var h http.Handler = NewRouter(c)
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
