package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubevents/internal/domain"
)

type memberService struct {
	memberRepo     domain.MemberRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewMemberService creates a MemberService with the given repositories.
func NewMemberService(memberRepo domain.MemberRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.MemberService {
	return &memberService{
		memberRepo:     memberRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *memberService) ListMembers(ctx context.Context) ([]*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if members == nil {
		members = []*domain.Member{}
	}
	return members, nil
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

func (s *memberService) ListMemberEvents(ctx context.Context, memberID int64) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	events, err := s.eventRepo.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list member events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
