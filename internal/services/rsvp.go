package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubevents/internal/domain"
)

// confirmAttempts bounds Confirm when a concurrent Cancel removes the row between
// the rejected insert and the read of the existing RSVP.
const confirmAttempts = 2

type rsvpService struct {
	eventRepo      domain.EventRepository
	memberRepo     domain.MemberRepository
	rsvpRepo       domain.RSVPRepository
	contextTimeout time.Duration
}

// NewRSVPService creates an RSVPService with the given repositories.
func NewRSVPService(
	eventRepo domain.EventRepository,
	memberRepo domain.MemberRepository,
	rsvpRepo domain.RSVPRepository,
	timeout time.Duration,
) domain.RSVPService {
	return &rsvpService{
		eventRepo:      eventRepo,
		memberRepo:     memberRepo,
		rsvpRepo:       rsvpRepo,
		contextTimeout: timeout,
	}
}

func (s *rsvpService) Confirm(ctx context.Context, eventID, memberID int64) (*domain.RSVP, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.resolvePair(ctx, eventID, memberID); err != nil {
		return nil, false, err
	}

	var lastErr error
	for attempt := 0; attempt < confirmAttempts; attempt++ {
		rsvp := domain.NewRSVP(eventID, memberID, time.Now().UTC())
		err := s.rsvpRepo.Create(ctx, rsvp)
		switch {
		case err == nil:
			return rsvp, true, nil
		case errors.Is(err, domain.ErrAlreadyAttending):
			existing, err := s.rsvpRepo.GetByEventAndMember(ctx, eventID, memberID)
			if err == nil {
				return existing, false, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, false, fmt.Errorf("get rsvp: %w", err)
			}
			lastErr = err
		case errors.Is(err, domain.ErrNotFound):
			// The event or member disappeared after resolvePair.
			return nil, false, domain.ErrNotFound
		default:
			return nil, false, fmt.Errorf("create rsvp: %w", err)
		}
	}
	return nil, false, fmt.Errorf("confirm rsvp: %w: %w", domain.ErrRSVPConflict, lastErr)
}

func (s *rsvpService) Cancel(ctx context.Context, eventID, memberID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.resolvePair(ctx, eventID, memberID); err != nil {
		return false, err
	}
	if err := s.rsvpRepo.Delete(ctx, eventID, memberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete rsvp: %w", err)
	}
	return true, nil
}

func (s *rsvpService) AttendeesOf(ctx context.Context, eventID int64) ([]*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.resolveEvent(ctx, eventID); err != nil {
		return nil, err
	}
	members, err := s.rsvpRepo.ListAttendees(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	if members == nil {
		members = []*domain.Member{}
	}
	return members, nil
}

func (s *rsvpService) resolvePair(ctx context.Context, eventID, memberID int64) error {
	if err := s.resolveEvent(ctx, eventID); err != nil {
		return err
	}
	if memberID <= 0 {
		return domain.ErrMemberNotFound
	}
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrMemberNotFound
		}
		return fmt.Errorf("get member: %w", err)
	}
	return nil
}

func (s *rsvpService) resolveEvent(ctx context.Context, eventID int64) error {
	if eventID <= 0 {
		return domain.ErrEventNotFound
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	return nil
}
