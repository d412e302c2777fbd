//go:build unit || e2e

package builder

import (
	"time"

	dombooking "stable-booking-api/internal/domain/booking"
	reqdto "stable-booking-api/internal/handler/dto/request"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder assembles arena bookings for tests. Defaults describe a
// valid customer booking well in the future.
type BookingBuilder struct {
	Arena       string
	Date        string
	Start       string
	DurationMin int
	UserID      uuid.UUID
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Arena:       "GREENACHERS",
		Date:        "2030-06-15",
		Start:       "10:00",
		DurationMin: 30,
		UserID:      uuid.New(),
		Now:         time.Date(2030, 6, 1, 9, 0, 0, 0, time.Local),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithArena(arena string) *BookingBuilder {
	b.Arena = arena
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithStart(start string) *BookingBuilder {
	b.Start = start
	return b
}

func (b *BookingBuilder) WithDuration(minutes int) *BookingBuilder {
	b.DurationMin = minutes
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

// BuildDomain runs the slot through the factory exactly as a customer
// request would.
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	arena := dombooking.Arena(b.Arena)
	date, err := dombooking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	start, err := dombooking.ParseTimeOfDay(b.Start)
	if err != nil {
		return nil, err
	}

	factory := dombooking.NewFactory(clock.NewMockClock(b.Now))
	return factory.NewRequest(
		arena, date, start, dombooking.Duration(b.DurationMin),
		dombooking.NewAccountRequester(b.UserID),
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	arena := b.Arena
	return reqdto.CreateBookingRequest{
		Arena:       &arena,
		Date:        b.Date,
		Start:       b.Start,
		DurationMin: b.DurationMin,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	date, _ := time.ParseInLocation("2006-01-02", b.Date, time.Local)
	start, _ := dombooking.ParseTimeOfDay(b.Start)
	userID := b.UserID
	return &queries.BookingView{
		ID:          uuid.New(),
		Arena:       b.Arena,
		Date:        date,
		StartMin:    int32(start),
		DurationMin: int32(b.DurationMin),
		PricePence:  250,
		Status:      "PENDING",
		UserID:      &userID,
		RequestedAt: b.Now,
		CreatedAt:   b.Now,
	}
}
