package care

import (
	"errors"
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/service"
	"stable-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrHorseNameRequired = errors.New("horse name is required")
	ErrPastDate          = errors.New("booking date is in the past")
	ErrAlreadyReviewed   = errors.New("booking already reviewed")
)

// Booking is a horse-care booking: a named horse, a catalog service and a
// date. No time-of-day scheduling applies.
type Booking struct {
	id          uuid.UUID
	serviceID   uuid.UUID
	horseName   string
	date        booking.Date
	status      booking.Status
	requester   booking.Requester
	requestedAt time.Time
	reviewedBy  *uuid.UUID
	reviewedAt  *time.Time
	createdAt   time.Time
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

func (f *Factory) NewRequest(svc *service.Service, horseName string, date booking.Date, requester booking.Requester) (*Booking, error) {
	return f.build(svc, horseName, date, requester, booking.StatusPending, nil)
}

func (f *Factory) NewApproved(svc *service.Service, horseName string, date booking.Date, requester booking.Requester, adminID uuid.UUID) (*Booking, error) {
	return f.build(svc, horseName, date, requester, booking.StatusApproved, &adminID)
}

func (f *Factory) build(svc *service.Service, horseName string, date booking.Date, requester booking.Requester, status booking.Status, reviewer *uuid.UUID) (*Booking, error) {
	if horseName == "" {
		return nil, ErrHorseNameRequired
	}
	if requester.IsZero() {
		return nil, booking.ErrRequesterRequired
	}
	if !svc.Active() {
		return nil, service.ErrInactive
	}

	now := f.clock.Now()
	if date.At(0).Before(booking.DateOf(now).At(0)) {
		return nil, ErrPastDate
	}

	b := &Booking{
		id:          uuid.New(),
		serviceID:   svc.ID(),
		horseName:   horseName,
		date:        date,
		status:      status,
		requester:   requester,
		requestedAt: now,
	}
	if reviewer != nil {
		id := *reviewer
		at := now
		b.reviewedBy = &id
		b.reviewedAt = &at
	}
	return b, nil
}

func Reconstruct(
	id, serviceID uuid.UUID,
	horseName string,
	date booking.Date,
	status booking.Status,
	requester booking.Requester,
	requestedAt time.Time,
	reviewedBy *uuid.UUID,
	reviewedAt *time.Time,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		serviceID:   serviceID,
		horseName:   horseName,
		date:        date,
		status:      status,
		requester:   requester,
		requestedAt: requestedAt,
		reviewedBy:  reviewedBy,
		reviewedAt:  reviewedAt,
		createdAt:   createdAt,
	}
}

func (b *Booking) Approve(adminID uuid.UUID, at time.Time) error {
	return b.review(booking.StatusApproved, adminID, at)
}

func (b *Booking) Deny(adminID uuid.UUID, at time.Time) error {
	return b.review(booking.StatusDenied, adminID, at)
}

func (b *Booking) review(to booking.Status, adminID uuid.UUID, at time.Time) error {
	if b.status.Reviewed() {
		return ErrAlreadyReviewed
	}
	b.status = to
	b.reviewedBy = &adminID
	b.reviewedAt = &at
	return nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ServiceID() uuid.UUID         { return b.serviceID }
func (b *Booking) HorseName() string            { return b.horseName }
func (b *Booking) Date() booking.Date           { return b.date }
func (b *Booking) Status() booking.Status       { return b.status }
func (b *Booking) Requester() booking.Requester { return b.requester }
func (b *Booking) RequestedAt() time.Time       { return b.requestedAt }
func (b *Booking) ReviewedBy() *uuid.UUID       { return b.reviewedBy }
func (b *Booking) ReviewedAt() *time.Time       { return b.reviewedAt }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
