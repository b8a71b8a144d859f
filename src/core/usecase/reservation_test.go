package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbnb/src/core/domain"
)

func TestReservationService_ListForGuest(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	repo := &fakeRepo{
		users: []domain.User{{ID: 1, Email: "g@x.com"}, {ID: 2, Email: "h@x.com"}},
		reservations: []domain.ReservationWithProperty{
			{Reservation: domain.Reservation{ID: 10, GuestID: 1, StartDate: day(1)}},
			{Reservation: domain.Reservation{ID: 11, GuestID: 1, StartDate: day(5)}},
			{Reservation: domain.Reservation{ID: 12, GuestID: 1, StartDate: day(9)}},
		},
	}
	svc := NewReservationService(repo, repo, nopLogger())

	t.Run("limit caps results", func(t *testing.T) {
		got, err := svc.ListForGuest(ctx, 1, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		for _, r := range got {
			assert.Equal(t, int64(1), r.Reservation.GuestID)
		}
	})

	t.Run("guest without reservations", func(t *testing.T) {
		got, err := svc.ListForGuest(ctx, 2, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, domain.DefaultListLimit, repo.lastLimit)
	})

	t.Run("unknown guest", func(t *testing.T) {
		_, err := svc.ListForGuest(ctx, 99, 10)
		assert.True(t, domain.IsNotFound(err))
	})
}
