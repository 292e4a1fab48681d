package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubevents/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func TestSeedService_Seed(t *testing.T) {
	t.Run("empty store gets sample data once", func(t *testing.T) {
		members := newFakeMemberRepo()
		events := newFakeEventRepo()
		svc := NewSeedService(members, events, testLogger)

		m, e, err := svc.Seed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, m)
		assert.Equal(t, 2, e)
		assert.Equal(t, "ken@cincimiata.com", members.created[0].Email)
		assert.Equal(t, "Fall Cruise", events.created[0].Title)
		require.NotNil(t, events.created[1].Description)
		assert.Equal(t, "Monthly meet-up for Miata enthusiasts.", *events.created[1].Description)

		m, e, err = svc.Seed(context.Background())
		require.NoError(t, err)
		assert.Zero(t, m)
		assert.Zero(t, e)
		assert.Len(t, members.created, 3)
		assert.Len(t, events.created, 2)
	})

	t.Run("tables are seeded independently", func(t *testing.T) {
		members := newFakeMemberRepo(&domain.Member{ID: 1, Name: "Existing", Email: "existing@example.com"})
		events := newFakeEventRepo()
		svc := NewSeedService(members, events, testLogger)

		m, e, err := svc.Seed(context.Background())
		require.NoError(t, err)
		assert.Zero(t, m)
		assert.Equal(t, 2, e)
	})

	t.Run("count error", func(t *testing.T) {
		members := newFakeMemberRepo()
		members.countErr = errors.New("db error")
		svc := NewSeedService(members, newFakeEventRepo(), testLogger)

		_, _, err := svc.Seed(context.Background())
		require.Error(t, err)
	})

	t.Run("event store error after members are seeded", func(t *testing.T) {
		events := newFakeEventRepo()
		events.err = errors.New("db error")
		svc := NewSeedService(newFakeMemberRepo(), events, testLogger)

		m, _, err := svc.Seed(context.Background())
		require.Error(t, err)
		assert.Equal(t, 3, m)
	})
}
