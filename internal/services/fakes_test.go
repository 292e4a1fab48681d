package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"clubevents/internal/domain"
)

const testTimeout = 5 * time.Second

// fakeMemberRepo implements domain.MemberRepository for tests.
type fakeMemberRepo struct {
	members  map[int64]*domain.Member
	nextID   int64
	err      error
	countErr error
	created  []*domain.Member
}

func newFakeMemberRepo(members ...*domain.Member) *fakeMemberRepo {
	f := &fakeMemberRepo{members: make(map[int64]*domain.Member)}
	for _, m := range members {
		f.members[m.ID] = m
		if m.ID > f.nextID {
			f.nextID = m.ID
		}
	}
	return f
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *domain.Member) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.members {
		if existing.Email == m.Email {
			return domain.ErrDuplicateEmail
		}
	}
	f.nextID++
	m.ID = f.nextID
	f.members[m.ID] = m
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.members[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (f *fakeMemberRepo) List(ctx context.Context) ([]*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Member
	for _, m := range f.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMemberRepo) Count(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.members), nil
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	events    map[int64]*domain.Event
	byMember  map[int64][]*domain.Event
	nextID    int64
	err       error
	lastLimit int
	getCalls  int
	created   []*domain.Event
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{events: make(map[int64]*domain.Event)}
	for _, e := range events {
		f.events[e.ID] = e
		if e.ID > f.nextID {
			f.nextID = e.ID
		}
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = f.nextID
	f.events[e.ID] = e
	f.created = append(f.created, e)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) sorted() []*domain.Event {
	var out []*domain.Event
	for _, e := range f.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(), nil
}

func (f *fakeEventRepo) ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := f.sorted()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEventRepo) ListByMemberID(ctx context.Context, memberID int64) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byMember[memberID], nil
}

func (f *fakeEventRepo) Count(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.events), nil
}

// fakeRSVPRepo implements domain.RSVPRepository with the same uniqueness rule as the
// real schema. createErrs and getErrs are consumed one per call before the normal behaviour.
type fakeRSVPRepo struct {
	rows       []*domain.RSVP
	members    *fakeMemberRepo
	nextID     int64
	createErrs []error
	getErrs    []error
	deleteErr  error
	listErr    error
	creates    int
	deletes    int
}

func newFakeRSVPRepo(members *fakeMemberRepo) *fakeRSVPRepo {
	return &fakeRSVPRepo{members: members}
}

func (f *fakeRSVPRepo) Create(ctx context.Context, rsvp *domain.RSVP) error {
	f.creates++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, r := range f.rows {
		if r.EventID == rsvp.EventID && r.MemberID == rsvp.MemberID {
			return domain.ErrAlreadyAttending
		}
	}
	f.nextID++
	rsvp.ID = f.nextID
	f.rows = append(f.rows, rsvp)
	return nil
}

func (f *fakeRSVPRepo) GetByEventAndMember(ctx context.Context, eventID, memberID int64) (*domain.RSVP, error) {
	if len(f.getErrs) > 0 {
		err := f.getErrs[0]
		f.getErrs = f.getErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	for _, r := range f.rows {
		if r.EventID == eventID && r.MemberID == memberID {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRSVPRepo) Delete(ctx context.Context, eventID, memberID int64) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.rows {
		if r.EventID == eventID && r.MemberID == memberID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRSVPRepo) ListAttendees(ctx context.Context, eventID int64) ([]*domain.Member, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Member
	for _, r := range f.rows {
		if r.EventID != eventID {
			continue
		}
		m, ok := f.members.members[r.MemberID]
		if !ok {
			return nil, fmt.Errorf("dangling rsvp %d", r.ID)
		}
		out = append(out, m)
	}
	return out, nil
}

// fixture returns repositories holding events [Fall Cruise(1), Cars & Coffee(2)] and
// members [Ken(1), Jane(2)].
func fixture() (*fakeEventRepo, *fakeMemberRepo, *fakeRSVPRepo) {
	events := newFakeEventRepo(
		&domain.Event{ID: 1, Title: "Fall Cruise", Date: "2025-10-01", Location: "Scenic Byway"},
		&domain.Event{ID: 2, Title: "Cars & Coffee", Date: "2025-09-15", Location: "Downtown Cafe"},
	)
	members := newFakeMemberRepo(
		&domain.Member{ID: 1, Name: "Ken Bogart", Email: "ken@cincimiata.com"},
		&domain.Member{ID: 2, Name: "Jane Doe", Email: "jane@example.com"},
	)
	return events, members, newFakeRSVPRepo(members)
}
