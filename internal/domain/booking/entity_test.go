//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminID() uuid.UUID {
	return uuid.MustParse("a0000000-0000-0000-0000-00000000000a")
}

func newFactoryAt(now time.Time) *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(now))
}

func mustBooking(t *testing.T, start string, minutes int) (*booking.Booking, error) {
	t.Helper()
	return builder.NewBookingBuilder().WithStart(start).WithDuration(minutes).BuildDomain()
}

type factoryCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestFactory(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.ArenaGreenachers, actual.Arena())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, 250, actual.Price().Pence())
		assert.False(t, actual.RequestedAt().IsZero())
		assert.Nil(t, actual.ReviewedBy())
	})

	t.Run("pricing follows duration", func(t *testing.T) {
		half, err := builder.NewBookingBuilder().WithDuration(30).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 250, half.Price().Pence())

		hour, err := builder.NewBookingBuilder().WithDuration(60).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 500, hour.Price().Pence())
	})

	t.Run("slot validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name:   "unknown arena",
				mutate: func(b *builder.BookingBuilder) { b.Arena = "PADDOCK" },
				errIs:  booking.ErrInvalidArena,
			},
			{
				name:   "forty-five minutes is not bookable",
				mutate: func(b *builder.BookingBuilder) { b.DurationMin = 45 },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.BookingBuilder) { b.DurationMin = 0 },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "before opening",
				mutate: func(b *builder.BookingBuilder) { b.Start = "07:30" },
				errIs:  booking.ErrInvalidTime,
			},
			{
				name:   "off the half-hour grid",
				mutate: func(b *builder.BookingBuilder) { b.Start = "10:15" },
				errIs:  booking.ErrInvalidTime,
			},
			{
				name: "hour slot would end after closing",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = "17:30"
					b.DurationMin = 60
				},
				errIs: booking.ErrInvalidTime,
			},
			{
				name: "last half-hour slot of the day",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = "17:30"
					b.DurationMin = 30
				},
			},
			{
				name: "slot in the past",
				mutate: func(b *builder.BookingBuilder) {
					b.Now = time.Date(2030, 6, 15, 12, 0, 0, 0, time.Local)
				},
				errIs: booking.ErrPastSlot,
			},
			{
				name: "merydown is bookable too",
				mutate: func(b *builder.BookingBuilder) {
					b.Arena = "MERYDOWN"
				},
			},
		})
	})

	t.Run("proxy booking starts approved with the admin as reviewer", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		arena, date, start := parseSlot(t, b)

		factory := newFactoryAt(b.Now)
		actual, err := factory.NewApproved(
			arena, date, start, booking.Duration(b.DurationMin),
			booking.NewAccountRequester(b.UserID), adminID(),
		)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusApproved, actual.Status())
		require.NotNil(t, actual.ReviewedBy())
		assert.Equal(t, adminID(), *actual.ReviewedBy())
		require.NotNil(t, actual.ReviewedAt())
	})

	t.Run("zero requester is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		arena, date, start := parseSlot(t, b)

		factory := newFactoryAt(b.Now)
		_, err := factory.NewRequest(arena, date, start, booking.Duration(b.DurationMin), booking.Requester{})
		require.ErrorIs(t, err, booking.ErrRequesterRequired)
	})
}

func TestWalkInRequester(t *testing.T) {
	t.Run("name and phone required", func(t *testing.T) {
		_, err := booking.NewWalkInRequester("", "07700900000")
		require.ErrorIs(t, err, booking.ErrWalkInDetailsRequired)

		_, err = booking.NewWalkInRequester("Jo Smith", "")
		require.ErrorIs(t, err, booking.ErrWalkInDetailsRequired)
	})

	t.Run("walk-in carries no account reference", func(t *testing.T) {
		r, err := booking.NewWalkInRequester("Jo Smith", "07700900000")
		require.NoError(t, err)

		assert.True(t, r.IsWalkIn())
		assert.Nil(t, r.UserID())
		assert.False(t, r.IsZero())
	})
}

func TestReview(t *testing.T) {
	now := time.Date(2030, 6, 2, 9, 0, 0, 0, time.Local)

	t.Run("approve from pending", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Approve(adminID(), now))

		assert.Equal(t, booking.StatusApproved, b.Status())
		require.NotNil(t, b.ReviewedBy())
		assert.Equal(t, adminID(), *b.ReviewedBy())
		assert.Equal(t, now, *b.ReviewedAt())
		assert.True(t, b.BlocksSchedule())
	})

	t.Run("deny frees the slot", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Deny(adminID(), now))

		assert.Equal(t, booking.StatusDenied, b.Status())
		assert.False(t, b.BlocksSchedule())
	})

	t.Run("reviewed bookings are terminal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Approve(adminID(), now))

		assert.ErrorIs(t, b.Approve(adminID(), now), booking.ErrAlreadyReviewed)
		assert.ErrorIs(t, b.Deny(adminID(), now), booking.ErrAlreadyReviewed)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})
}

func runFactoryCases(t *testing.T, cases []factoryCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func parseSlot(t *testing.T, b *builder.BookingBuilder) (booking.Arena, booking.Date, booking.TimeOfDay) {
	t.Helper()
	arena, err := booking.NewArena(b.Arena)
	require.NoError(t, err)
	date, err := booking.ParseDate(b.Date)
	require.NoError(t, err)
	start, err := booking.ParseTimeOfDay(b.Start)
	require.NoError(t, err)
	return arena, date, start
}
