package domain

import (
	"context"
	"time"
)

// RSVP records a member's confirmed attendance at an event.
// At most one RSVP exists per (member, event) pair.
// swagger:model RSVP
type RSVP struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	MemberID  int64     `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRSVP creates a new RSVP. ID is set by the repository on create.
func NewRSVP(eventID, memberID int64, createdAt time.Time) *RSVP {
	return &RSVP{
		EventID:   eventID,
		MemberID:  memberID,
		CreatedAt: createdAt,
	}
}

// RSVPRepository defines storage operations for RSVPs.
type RSVPRepository interface {
	// Create inserts the RSVP. Returns ErrAlreadyAttending if the pair already exists and
	// ErrNotFound if the event or member row does not exist.
	Create(ctx context.Context, rsvp *RSVP) error
	GetByEventAndMember(ctx context.Context, eventID, memberID int64) (*RSVP, error)
	// Delete removes the RSVP for the pair. Returns ErrNotFound if there was none.
	Delete(ctx context.Context, eventID, memberID int64) error
	// ListAttendees returns the members with an RSVP for the event, in RSVP order.
	ListAttendees(ctx context.Context, eventID int64) ([]*Member, error)
}

// RSVPService maintains the at-most-one RSVP per (member, event) invariant.
type RSVPService interface {
	// Confirm ensures the member attends the event. Returns (rsvp, created, err): created is
	// false when the member was already attending.
	Confirm(ctx context.Context, eventID, memberID int64) (*RSVP, bool, error)
	// Cancel ensures the member does not attend the event. removed is false when there was
	// nothing to cancel.
	Cancel(ctx context.Context, eventID, memberID int64) (bool, error)
	AttendeesOf(ctx context.Context, eventID int64) ([]*Member, error)
}
