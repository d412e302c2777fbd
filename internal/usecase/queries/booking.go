package queries

import (
	"context"
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrInvalidQuery    = errs.New("invalid query parameters")
)

type BookingQueries interface {
	// Availability enumerates the free start times for one arena, date and
	// duration. Recomputed on every call; nothing is cached.
	Availability(ctx context.Context, arena, date string, durationMin int) (*AvailabilityView, error)
	GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	DaySchedule(ctx context.Context, arena string, date time.Time) ([]BookedSlot, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) Availability(ctx context.Context, arenaStr, dateStr string, durationMin int) (*AvailabilityView, error) {
	arena, err := booking.NewArena(arenaStr)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	date, err := booking.ParseDate(dateStr)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	duration, err := booking.NewDuration(durationMin)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}

	slots, err := q.readStore.DaySchedule(ctx, arena.String(), date.At(0))
	if err != nil {
		return nil, err
	}

	booked := make([]booking.Interval, len(slots))
	for i, s := range slots {
		booked[i] = booking.NewInterval(booking.TimeOfDay(s.StartMin), booking.Duration(s.DurationMin))
	}

	starts := booking.CollectAvailableStarts(duration, booked)
	formatted := make([]string, len(starts))
	for i, start := range starts {
		formatted[i] = start.String()
	}

	return &AvailabilityView{
		Arena:           arena.String(),
		Date:            date.At(0),
		DurationMin:     int32(durationMin),
		AvailableStarts: formatted,
		BookedSlots:     slots,
	}, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}

	if !isAdmin && (view.UserID == nil || *view.UserID != actorID) {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
