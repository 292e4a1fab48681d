package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"clubevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, date, location, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Title, e.Date, e.Location, nullString(e.Description)).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, title, date, location, description
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, title, date, location, description
		FROM events
		ORDER BY date, id
	`
	return r.list(ctx, query)
}

func (r *eventRepository) ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error) {
	query := `
		SELECT id, title, date, location, description
		FROM events
		ORDER BY date, id
		LIMIT $1
	`
	return r.list(ctx, query, limit)
}

func (r *eventRepository) ListByMemberID(ctx context.Context, memberID int64) ([]*domain.Event, error) {
	query := `
		SELECT e.id, e.title, e.date, e.location, e.description
		FROM events e
		JOIN rsvps r ON r.event_id = e.id
		WHERE r.member_id = $1
		ORDER BY e.date, e.id
	`
	return r.list(ctx, query, memberID)
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull sql.NullString
	if err := row.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &descNull); err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	return e, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
