package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"clubevents/internal/delivery/http/helpers"
	"clubevents/internal/domain"
)

// PageController serves the HTML pages. RSVP and cancel links are plain GETs that
// redirect back to the event detail page.
type PageController struct {
	Logger   *slog.Logger
	Events   domain.EventService
	Members  domain.MemberService
	RSVPs    domain.RSVPService
	Renderer domain.PageRenderer
}

func NewPageController(
	logger *slog.Logger,
	events domain.EventService,
	members domain.MemberService,
	rsvps domain.RSVPService,
	renderer domain.PageRenderer,
) *PageController {
	return &PageController{
		Logger:   logger,
		Events:   events,
		Members:  members,
		RSVPs:    rsvps,
		Renderer: renderer,
	}
}

func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListUpcoming(r.Context(), helpers.DefaultUpcomingLimit)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	c.render(w, r, http.StatusOK, domain.PageIndex, domain.IndexPageData{Events: events})
}

func (c *PageController) MemberList(w http.ResponseWriter, r *http.Request) {
	members, err := c.Members.ListMembers(r.Context())
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	c.render(w, r, http.StatusOK, domain.PageMembers, domain.MembersPageData{Members: members})
}

func (c *PageController) EventList(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListEvents(r.Context())
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	c.render(w, r, http.StatusOK, domain.PageEvents, domain.EventsPageData{Events: events})
}

func (c *PageController) EventDetail(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventID")
	if err != nil {
		c.notFound(w, r, "event not found")
		return
	}
	detail, err := c.Events.GetEventDetail(r.Context(), eventID)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	c.render(w, r, http.StatusOK, domain.PageEventDetail, domain.EventDetailPageData{Detail: detail})
}

// RSVP confirms the member's attendance and redirects to the event page.
func (c *PageController) RSVP(w http.ResponseWriter, r *http.Request) {
	eventID, memberID, ok := c.pathPair(w, r)
	if !ok {
		return
	}
	if _, _, err := c.RSVPs.Confirm(r.Context(), eventID, memberID); err != nil {
		c.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, eventPath(eventID), http.StatusSeeOther)
}

// CancelRSVP removes the member's attendance and redirects to the event page.
func (c *PageController) CancelRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, memberID, ok := c.pathPair(w, r)
	if !ok {
		return
	}
	if _, err := c.RSVPs.Cancel(r.Context(), eventID, memberID); err != nil {
		c.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, eventPath(eventID), http.StatusSeeOther)
}

// NotFound renders the not-found page for any unmatched path.
func (c *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	c.notFound(w, r, "page not found")
}

func eventPath(eventID int64) string {
	return fmt.Sprintf("/events/%d", eventID)
}

func (c *PageController) pathPair(w http.ResponseWriter, r *http.Request) (eventID, memberID int64, ok bool) {
	eventID, err := helpers.PathID(r, "eventID")
	if err != nil {
		c.notFound(w, r, "event not found")
		return 0, 0, false
	}
	memberID, err = helpers.PathID(r, "memberID")
	if err != nil {
		c.notFound(w, r, "member not found")
		return 0, 0, false
	}
	return eventID, memberID, true
}

func (c *PageController) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRSVPConflict):
		c.serverError(w, r, err)
	case errors.Is(err, domain.ErrEventNotFound):
		c.notFound(w, r, "event not found")
	case errors.Is(err, domain.ErrMemberNotFound):
		c.notFound(w, r, "member not found")
	case errors.Is(err, domain.ErrNotFound):
		c.notFound(w, r, "not found")
	default:
		c.serverError(w, r, err)
	}
}

func (c *PageController) notFound(w http.ResponseWriter, r *http.Request, message string) {
	c.render(w, r, http.StatusNotFound, domain.PageNotFound, domain.NotFoundPageData{Message: message})
}

func (c *PageController) serverError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (c *PageController) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := c.Renderer.Render(&buf, page, data); err != nil {
		c.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
