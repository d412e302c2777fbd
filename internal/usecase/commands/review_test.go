//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/notification"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/internal/usecase/commands"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewBooking(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	now := time.Date(2030, 6, 2, 9, 0, 0, 0, time.UTC)

	newReview := func(uow *stubUoW, pub *stubPublisher) commands.ReviewCommands {
		return commands.NewReviewCommands(uow, clock.NewMockClock(now), pub)
	}

	pendingArena := func(uow *stubUoW, requesterID *uuid.UUID) uuid.UUID {
		id := uuid.New()
		uow.tx.reads.arenaBookings[id] = &shared.BookingSnapshot{
			ID:              id,
			RequesterUserID: requesterID,
			Status:          booking.StatusPending,
		}
		return id
	}

	t.Run("approve writes the status, a notification and an event", func(t *testing.T) {
		uow := newStubUoW()
		pub := &stubPublisher{}
		requesterID := uuid.New()
		bookingID := pendingArena(uow, &requesterID)

		err := newReview(uow, pub).ApproveArenaBooking(ctx, bookingID, adminID)

		require.NoError(t, err)
		require.Len(t, uow.tx.arena.reviews, 1)
		call := uow.tx.arena.reviews[0]
		assert.Equal(t, bookingID, call.id)
		assert.Equal(t, booking.StatusApproved, call.to)
		assert.Equal(t, adminID, call.adminID)
		assert.Equal(t, now, call.at)

		require.Len(t, uow.tx.notifications.created, 1)
		n := uow.tx.notifications.created[0]
		assert.Equal(t, requesterID, n.UserID())
		assert.Equal(t, notification.KindBookingApproved, n.Kind())
		require.NotNil(t, n.RelatedBookingID())
		assert.Equal(t, bookingID, *n.RelatedBookingID())

		require.Len(t, pub.events, 1)
		assert.Equal(t, shared.BookingTypeArena, pub.events[0].BookingType)
		assert.Equal(t, "APPROVED", pub.events[0].Status)
	})

	t.Run("deny notifies with the denied kind", func(t *testing.T) {
		uow := newStubUoW()
		pub := &stubPublisher{}
		requesterID := uuid.New()
		bookingID := pendingArena(uow, &requesterID)

		err := newReview(uow, pub).DenyArenaBooking(ctx, bookingID, adminID)

		require.NoError(t, err)
		require.Len(t, uow.tx.notifications.created, 1)
		assert.Equal(t, notification.KindBookingDenied, uow.tx.notifications.created[0].Kind())
	})

	t.Run("walk-in bookings produce no notification", func(t *testing.T) {
		uow := newStubUoW()
		pub := &stubPublisher{}
		bookingID := pendingArena(uow, nil)

		err := newReview(uow, pub).ApproveArenaBooking(ctx, bookingID, adminID)

		require.NoError(t, err)
		assert.Empty(t, uow.tx.notifications.created)
		assert.Len(t, pub.events, 1)
	})

	t.Run("second review loses", func(t *testing.T) {
		uow := newStubUoW()
		uow.tx.arena.reviewOK = false
		pub := &stubPublisher{}
		requesterID := uuid.New()
		bookingID := pendingArena(uow, &requesterID)

		err := newReview(uow, pub).DenyArenaBooking(ctx, bookingID, adminID)

		require.ErrorIs(t, err, commands.ErrAlreadyReviewed)
		assert.Empty(t, uow.tx.notifications.created)
		assert.Empty(t, pub.events)
	})

	t.Run("unknown booking", func(t *testing.T) {
		uow := newStubUoW()
		pub := &stubPublisher{}

		err := newReview(uow, pub).ApproveArenaBooking(ctx, uuid.New(), adminID)

		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("care bookings go through their own repository", func(t *testing.T) {
		uow := newStubUoW()
		pub := &stubPublisher{}
		requesterID := uuid.New()
		id := uuid.New()
		uow.tx.reads.careBookings[id] = &shared.BookingSnapshot{
			ID:              id,
			RequesterUserID: &requesterID,
			Status:          booking.StatusPending,
		}

		err := newReview(uow, pub).ApproveCareBooking(ctx, id, adminID)

		require.NoError(t, err)
		require.Len(t, uow.tx.care.reviews, 1)
		assert.Empty(t, uow.tx.arena.reviews)
		require.Len(t, pub.events, 1)
		assert.Equal(t, shared.BookingTypeCare, pub.events[0].BookingType)
	})

	t.Run("publish failure does not fail the review", func(t *testing.T) {
		uow := newStubUoW()
		pub := &stubPublisher{err: errors.New("broker down")}
		requesterID := uuid.New()
		bookingID := pendingArena(uow, &requesterID)

		err := newReview(uow, pub).ApproveArenaBooking(ctx, bookingID, adminID)

		require.NoError(t, err)
		require.Len(t, uow.tx.arena.reviews, 1)
	})
}
