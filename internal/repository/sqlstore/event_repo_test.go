package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"clubevents/internal/domain"
)

var eventColumns = []string{"id", "title", "date", "location", "description"}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	desc := "Join us for a fall foliage cruise."

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name:  "success with description",
			event: domain.NewEvent("Fall Cruise", "2025-10-01", "Scenic Byway", &desc),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, date, location, description\)`).
					WithArgs("Fall Cruise", "2025-10-01", "Scenic Byway", desc).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
			wantID: 1,
		},
		{
			name:  "success without description",
			event: domain.NewEvent("Cars & Coffee", "2025-09-15", "Downtown Cafe", nil),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs("Cars & Coffee", "2025-09-15", "Downtown Cafe", nil).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
			},
			wantID: 2,
		},
		{
			name:  "db error",
			event: domain.NewEvent("Fall Cruise", "2025-10-01", "Scenic Byway", nil),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewEventRepository(db).Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found with null description", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, date, location, description\s+FROM events\s+WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(eventColumns).
				AddRow(int64(2), "Cars & Coffee", "2025-09-15", "Downtown Cafe", nil))

		got, err := NewEventRepository(db).GetByID(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, &domain.Event{ID: 2, Title: "Cars & Coffee", Date: "2025-09-15", Location: "Downtown Cafe"}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, date, location, description`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(eventColumns))

		_, err = NewEventRepository(db).GetByID(ctx, 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventRepository_Lists(t *testing.T) {
	ctx := context.Background()
	desc := "Monthly meet-up for Miata enthusiasts."

	tests := []struct {
		name  string
		query string
		args  []driver.Value
		call  func(repo domain.EventRepository) ([]*domain.Event, error)
	}{
		{
			name:  "List orders by date",
			query: `SELECT id, title, date, location, description\s+FROM events\s+ORDER BY date, id`,
			call:  func(repo domain.EventRepository) ([]*domain.Event, error) { return repo.List(ctx) },
		},
		{
			name:  "ListUpcoming applies limit",
			query: `ORDER BY date, id\s+LIMIT \$1`,
			args:  []driver.Value{3},
			call:  func(repo domain.EventRepository) ([]*domain.Event, error) { return repo.ListUpcoming(ctx, 3) },
		},
		{
			name:  "ListByMemberID joins rsvps",
			query: `FROM events e\s+JOIN rsvps r ON r.event_id = e.id\s+WHERE r.member_id = \$1`,
			args:  []driver.Value{int64(1)},
			call:  func(repo domain.EventRepository) ([]*domain.Event, error) { return repo.ListByMemberID(ctx, 1) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			exp := mock.ExpectQuery(tt.query)
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args...)
			}
			exp.WillReturnRows(sqlmock.NewRows(eventColumns).
				AddRow(int64(2), "Cars & Coffee", "2025-09-15", "Downtown Cafe", desc).
				AddRow(int64(1), "Fall Cruise", "2025-10-01", "Scenic Byway", nil))

			got, err := tt.call(NewEventRepository(db))
			require.NoError(t, err)
			require.Len(t, got, 2)
			require.Equal(t, int64(2), got[0].ID)
			require.NotNil(t, got[0].Description)
			require.Equal(t, desc, *got[0].Description)
			require.Nil(t, got[1].Description)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM events`).WillReturnRows(sqlmock.NewRows(eventColumns))

	got, err := NewEventRepository(db).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
