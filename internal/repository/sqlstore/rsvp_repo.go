package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"clubevents/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{
		DB: db,
	}
}

// Create inserts without reading first; the unique (member_id, event_id) constraint
// decides whether the pair already exists.
func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO rsvps (event_id, member_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, rsvp.EventID, rsvp.MemberID, rsvp.CreatedAt).Scan(&rsvp.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyAttending
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *rsvpRepository) GetByEventAndMember(ctx context.Context, eventID, memberID int64) (*domain.RSVP, error) {
	query := `
		SELECT id, event_id, member_id, created_at
		FROM rsvps
		WHERE event_id = $1 AND member_id = $2
	`
	rsvp := &domain.RSVP{}
	err := r.DB.QueryRowContext(ctx, query, eventID, memberID).
		Scan(&rsvp.ID, &rsvp.EventID, &rsvp.MemberID, &rsvp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rsvp, nil
}

func (r *rsvpRepository) Delete(ctx context.Context, eventID, memberID int64) error {
	query := `DELETE FROM rsvps WHERE event_id = $1 AND member_id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, memberID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rsvpRepository) ListAttendees(ctx context.Context, eventID int64) ([]*domain.Member, error) {
	query := `
		SELECT m.id, m.name, m.email
		FROM rsvps r
		JOIN members m ON m.id = r.member_id
		WHERE r.event_id = $1
		ORDER BY r.id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}
