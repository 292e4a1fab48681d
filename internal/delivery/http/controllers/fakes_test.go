package controllers

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"clubevents/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func strPtr(s string) *string { return &s }

var (
	fallCruise = &domain.Event{ID: 1, Title: "Fall Cruise", Date: "2025-10-01", Location: "Scenic Byway", Description: strPtr("Join us for a fall foliage cruise.")}
	carsCoffee = &domain.Event{ID: 2, Title: "Cars & Coffee", Date: "2025-09-15", Location: "Downtown Cafe"}
	ken        = &domain.Member{ID: 1, Name: "Ken Bogart", Email: "ken@cincimiata.com"}
	jane       = &domain.Member{ID: 2, Name: "Jane Doe", Email: "jane@example.com"}
)

// fakeMemberService implements domain.MemberService for handler tests.
type fakeMemberService struct {
	members      []*domain.Member
	memberEvents map[int64][]*domain.Event
	err          error
	lastMemberID int64
}

func (f *fakeMemberService) ListMembers(ctx context.Context) ([]*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

func (f *fakeMemberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	f.lastMemberID = id
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (f *fakeMemberService) ListMemberEvents(ctx context.Context, memberID int64) ([]*domain.Event, error) {
	f.lastMemberID = memberID
	if f.err != nil {
		return nil, f.err
	}
	if _, err := f.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	return f.memberEvents[memberID], nil
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events    []*domain.Event
	attendees map[int64][]*domain.Member
	members   []*domain.Member
	err       error
	lastLimit int
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeEventService) ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.events) {
		return f.events[:limit], nil
	}
	return f.events, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventService) GetEventDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	event, err := f.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	attendees := f.attendees[id]
	if attendees == nil {
		attendees = []*domain.Member{}
	}
	return &domain.EventDetail{Event: event, Attendees: attendees, Members: f.members}, nil
}

// fakeRSVPService implements domain.RSVPService for handler tests.
type fakeRSVPService struct {
	confirmRSVP    *domain.RSVP
	confirmCreated bool
	confirmErr     error
	cancelRemoved  bool
	cancelErr      error
	attendees      []*domain.Member
	attendeesErr   error
	lastEventID    int64
	lastMemberID   int64
	confirmCalls   int
	cancelCalls    int
}

func (f *fakeRSVPService) Confirm(ctx context.Context, eventID, memberID int64) (*domain.RSVP, bool, error) {
	f.confirmCalls++
	f.lastEventID, f.lastMemberID = eventID, memberID
	if f.confirmErr != nil {
		return nil, false, f.confirmErr
	}
	return f.confirmRSVP, f.confirmCreated, nil
}

func (f *fakeRSVPService) Cancel(ctx context.Context, eventID, memberID int64) (bool, error) {
	f.cancelCalls++
	f.lastEventID, f.lastMemberID = eventID, memberID
	if f.cancelErr != nil {
		return false, f.cancelErr
	}
	return f.cancelRemoved, nil
}

func (f *fakeRSVPService) AttendeesOf(ctx context.Context, eventID int64) ([]*domain.Member, error) {
	f.lastEventID = eventID
	if f.attendeesErr != nil {
		return nil, f.attendeesErr
	}
	return f.attendees, nil
}

// fakeRenderer implements domain.PageRenderer and records the last render.
type fakeRenderer struct {
	lastPage string
	lastData any
	err      error
}

func (f *fakeRenderer) Render(w io.Writer, page string, data any) error {
	f.lastPage, f.lastData = page, data
	if f.err != nil {
		return f.err
	}
	_, err := fmt.Fprintf(w, "<p>%s</p>", page)
	return err
}

// fakePinger implements Pinger.
type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }
