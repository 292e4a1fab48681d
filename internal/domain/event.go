package domain

import "context"

// Event represents a scheduled club event.
// Date is free text as entered by the organizer; it is only used for ordering.
// swagger:model Event
type Event struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
}

// NewEvent returns a new Event. ID is set by the repository on create.
func NewEvent(title, date, location string, description *string) *Event {
	return &Event{
		Title:       title,
		Date:        date,
		Location:    location,
		Description: description,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// List returns all events ordered by date.
	List(ctx context.Context) ([]*Event, error)
	// ListUpcoming returns at most limit events ordered by date.
	ListUpcoming(ctx context.Context, limit int) ([]*Event, error)
	// ListByMemberID returns the events the member has an RSVP for, ordered by date.
	ListByMemberID(ctx context.Context, memberID int64) ([]*Event, error)
	Count(ctx context.Context) (int, error)
}

// EventDetail bundles an event with its attendees and the full member list,
// which the detail page uses to offer RSVP and cancel actions.
type EventDetail struct {
	Event     *Event    `json:"event"`
	Attendees []*Member `json:"attendees"`
	Members   []*Member `json:"members"`
}

// IsAttending reports whether memberID is among the attendees.
func (d *EventDetail) IsAttending(memberID int64) bool {
	for _, m := range d.Attendees {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// EventService defines the event listing operations.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	GetEventDetail(ctx context.Context, id int64) (*EventDetail, error)
}
