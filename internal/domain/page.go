package domain

import "io"

// Page names understood by a PageRenderer.
const (
	PageIndex       = "index"
	PageMembers     = "members"
	PageEvents      = "events"
	PageEventDetail = "event_detail"
	PageNotFound    = "not_found"
)

// PageRenderer renders a named HTML page with the given data.
type PageRenderer interface {
	Render(w io.Writer, page string, data any) error
}

// IndexPageData holds data for the home page.
type IndexPageData struct {
	Events []*Event
}

// MembersPageData holds data for the member directory.
type MembersPageData struct {
	Members []*Member
}

// EventsPageData holds data for the event list.
type EventsPageData struct {
	Events []*Event
}

// EventDetailPageData holds data for the event detail page.
type EventDetailPageData struct {
	Detail *EventDetail
}

// NotFoundPageData holds data for the not-found page.
type NotFoundPageData struct {
	Message string
}
