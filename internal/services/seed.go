package services

import (
	"context"
	"fmt"
	"log/slog"

	"clubevents/internal/domain"
)

// SeedService loads the sample club data into an empty store.
type SeedService struct {
	memberRepo domain.MemberRepository
	eventRepo  domain.EventRepository
	logger     *slog.Logger
}

// NewSeedService returns a SeedService writing through the given repositories.
func NewSeedService(memberRepo domain.MemberRepository, eventRepo domain.EventRepository, logger *slog.Logger) *SeedService {
	return &SeedService{memberRepo: memberRepo, eventRepo: eventRepo, logger: logger}
}

// SampleMembers returns the members inserted into an empty members table.
func SampleMembers() []*domain.Member {
	return []*domain.Member{
		domain.NewMember("Ken Bogart", "ken@cincimiata.com"),
		domain.NewMember("Jane Doe", "jane@example.com"),
		domain.NewMember("John Smith", "john@example.com"),
	}
}

// SampleEvents returns the events inserted into an empty events table.
func SampleEvents() []*domain.Event {
	cruise := "Join us for a fall foliage cruise."
	coffee := "Monthly meet-up for Miata enthusiasts."
	return []*domain.Event{
		domain.NewEvent("Fall Cruise", "2025-10-01", "Scenic Byway", &cruise),
		domain.NewEvent("Cars & Coffee", "2025-09-15", "Downtown Cafe", &coffee),
	}
}

// Seed inserts the sample members if there are none and the sample events if there
// are none. Each table is checked independently, so running Seed again is a no-op.
func (s *SeedService) Seed(ctx context.Context) (membersAdded, eventsAdded int, err error) {
	n, err := s.memberRepo.Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count members: %w", err)
	}
	if n == 0 {
		for _, m := range SampleMembers() {
			if err := s.memberRepo.Create(ctx, m); err != nil {
				return membersAdded, 0, fmt.Errorf("create member %q: %w", m.Email, err)
			}
			membersAdded++
		}
	}

	n, err = s.eventRepo.Count(ctx)
	if err != nil {
		return membersAdded, 0, fmt.Errorf("count events: %w", err)
	}
	if n == 0 {
		for _, e := range SampleEvents() {
			if err := s.eventRepo.Create(ctx, e); err != nil {
				return membersAdded, eventsAdded, fmt.Errorf("create event %q: %w", e.Title, err)
			}
			eventsAdded++
		}
	}

	if membersAdded > 0 || eventsAdded > 0 {
		s.logger.InfoContext(ctx, "sample data added", "members", membersAdded, "events", eventsAdded)
	} else {
		s.logger.DebugContext(ctx, "sample data already present")
	}
	return membersAdded, eventsAdded, nil
}
