package domain

import "context"

// Member represents a registered club member.
// swagger:model Member
type Member struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewMember returns a new Member. ID is set by the repository on create.
func NewMember(name, email string) *Member {
	return &Member{Name: name, Email: email}
}

// MemberRepository defines storage operations for members.
type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id int64) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	Count(ctx context.Context) (int, error)
}

// MemberService defines the member directory operations.
type MemberService interface {
	ListMembers(ctx context.Context) ([]*Member, error)
	GetMember(ctx context.Context, id int64) (*Member, error)
	// ListMemberEvents returns the events the member has an RSVP for.
	ListMemberEvents(ctx context.Context, memberID int64) ([]*Event, error)
}
