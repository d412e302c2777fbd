//go:build e2e

package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	dombooking "stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/uow"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/internal/usecase/shared"
	"stable-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReserveSuite struct {
	e2e.SharedSuite
	uow     shared.UnitOfWork
	factory *dombooking.Factory
	userID  uuid.UUID
}

func (s *ReserveSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.uow = uow.NewPostgresUoW(s.DB)
	s.factory = dombooking.NewFactory(clock.NewRealClock())

	s.userID = uuid.New()
	_, err := s.DB.Exec(context.Background(), `
		INSERT INTO users (id, email, password_hash, full_name, role, status)
		VALUES ($1, 'rider@example.com', 'x', 'Test Rider', 'USER', 'ACTIVE')`,
		s.userID)
	require.NoError(s.T(), err, "failed to seed test user")
}

func TestReserveSuite(t *testing.T) {
	suite.Run(t, new(ReserveSuite))
}

func (s *ReserveSuite) newBooking(date, start string, durationMin int) *dombooking.Booking {
	t := s.T()
	t.Helper()

	d, err := dombooking.ParseDate(date)
	require.NoError(t, err)
	st, err := dombooking.ParseTimeOfDay(start)
	require.NoError(t, err)
	dur, err := dombooking.NewDuration(durationMin)
	require.NoError(t, err)

	b, err := s.factory.NewRequest(
		dombooking.ArenaGreenachers, d, st, dur,
		dombooking.NewAccountRequester(s.userID),
	)
	require.NoError(t, err)
	return b
}

func (s *ReserveSuite) reserve(ctx context.Context, b *dombooking.Booking) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ArenaBookings().Reserve(ctx, b)
	})
}

// Two simultaneous submissions for the same slot: exactly one wins, the
// other is rejected as a conflict.
func (s *ReserveSuite) TestConcurrentSubmissions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	first := s.newBooking("2031-03-10", "14:00", 30)
	second := s.newBooking("2031-03-10", "14:00", 30)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i, b := range []*dombooking.Booking{first, second} {
		go func(i int, b *dombooking.Booking) {
			defer wg.Done()
			errs[i] = s.reserve(ctx, b)
		}(i, b)
	}
	wg.Wait()

	var accepted, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			accepted++
		case infra.IsKind(err, infra.KindConflict):
			conflicted++
		default:
			s.T().Fatalf("unexpected reserve error: %v", err)
		}
	}
	s.Equal(1, accepted, "exactly one submission must win the slot")
	s.Equal(1, conflicted, "the loser must see a conflict")

	var count int
	err := s.DB.QueryRow(ctx, `
		SELECT count(*) FROM arena_bookings
		WHERE booking_date = '2031-03-10' AND start_min = 840`).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count, "only one row may exist for the slot")
}

func (s *ReserveSuite) TestBackToBackSlotsDoNotConflict() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.Require().NoError(s.reserve(ctx, s.newBooking("2031-03-11", "10:00", 30)))
	s.Require().NoError(s.reserve(ctx, s.newBooking("2031-03-11", "10:30", 30)))
}

func (s *ReserveSuite) TestDeniedBookingFreesTheSlot() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	blocked := s.newBooking("2031-03-12", "09:00", 30)
	s.Require().NoError(s.reserve(ctx, blocked))

	_, err := s.DB.Exec(ctx, `
		UPDATE arena_bookings SET status = 'DENIED', updated_at = now()
		WHERE id = $1`, blocked.ID())
	s.Require().NoError(err)

	s.Require().NoError(s.reserve(ctx, s.newBooking("2031-03-12", "09:00", 30)))
}
