package booking

import (
	"errors"
	"time"

	"stable-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidArena          = errors.New("invalid arena")
	ErrInvalidDuration       = errors.New("invalid duration")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidTime           = errors.New("invalid time")
	ErrPastSlot              = errors.New("slot is in the past")
	ErrNegativePrice         = errors.New("price cannot be negative")
	ErrRequesterRequired     = errors.New("requester is required")
	ErrWalkInDetailsRequired = errors.New("walk-in name and phone are required")
	ErrAlreadyReviewed       = errors.New("booking already reviewed")
)

// Booking is an arena (sand-school) booking request.
type Booking struct {
	id          uuid.UUID
	arena       Arena
	date        Date
	interval    Interval
	price       Money
	status      Status
	requester   Requester
	requestedAt time.Time
	reviewedBy  *uuid.UUID
	reviewedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// Factory builds bookings against the wall clock and the current tariff.
type Factory struct {
	clock  clock.Clock
	tariff Tariff
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{
		clock:  c,
		tariff: DefaultTariff(),
	}
}

// NewRequest builds a customer-initiated booking in PENDING state.
func (f *Factory) NewRequest(arena Arena, date Date, start TimeOfDay, duration Duration, requester Requester) (*Booking, error) {
	return f.build(arena, date, start, duration, requester, StatusPending, nil)
}

// NewApproved builds an admin proxy booking, pre-authorized by the admin who
// placed it.
func (f *Factory) NewApproved(arena Arena, date Date, start TimeOfDay, duration Duration, requester Requester, adminID uuid.UUID) (*Booking, error) {
	return f.build(arena, date, start, duration, requester, StatusApproved, &adminID)
}

func (f *Factory) build(arena Arena, date Date, start TimeOfDay, duration Duration, requester Requester, status Status, reviewer *uuid.UUID) (*Booking, error) {
	if !arena.IsValid() {
		return nil, ErrInvalidArena
	}
	if !duration.IsValid() {
		return nil, ErrInvalidDuration
	}
	if requester.IsZero() {
		return nil, ErrRequesterRequired
	}
	if !WithinHours(start, duration) {
		return nil, ErrInvalidTime
	}

	now := f.clock.Now()
	if date.At(start).Before(now) {
		return nil, ErrPastSlot
	}

	price, err := f.tariff.PriceFor(duration)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		id:          uuid.New(),
		arena:       arena,
		date:        date,
		interval:    NewInterval(start, duration),
		price:       price,
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

func ReconstructBooking(
	id uuid.UUID,
	arena Arena,
	date Date,
	interval Interval,
	price Money,
	status Status,
	requester Requester,
	requestedAt time.Time,
	reviewedBy *uuid.UUID,
	reviewedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		arena:       arena,
		date:        date,
		interval:    interval,
		price:       price,
		status:      status,
		requester:   requester,
		requestedAt: requestedAt,
		reviewedBy:  reviewedBy,
		reviewedAt:  reviewedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Approve transitions PENDING to APPROVED. Terminal statuses cannot be
// reviewed again.
func (b *Booking) Approve(adminID uuid.UUID, at time.Time) error {
	return b.review(StatusApproved, adminID, at)
}

// Deny transitions PENDING to DENIED. A denied booking stops counting against
// the schedule.
func (b *Booking) Deny(adminID uuid.UUID, at time.Time) error {
	return b.review(StatusDenied, adminID, at)
}

func (b *Booking) review(to Status, adminID uuid.UUID, at time.Time) error {
	if b.status.Reviewed() {
		return ErrAlreadyReviewed
	}
	b.status = to
	b.reviewedBy = &adminID
	b.reviewedAt = &at
	return nil
}

// BlocksSchedule reports whether this booking counts against availability.
func (b *Booking) BlocksSchedule() bool {
	return b.status != StatusDenied
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Arena() Arena           { return b.arena }
func (b *Booking) Date() Date             { return b.date }
func (b *Booking) Interval() Interval     { return b.interval }
func (b *Booking) Start() TimeOfDay       { return b.interval.Start() }
func (b *Booking) End() TimeOfDay         { return b.interval.End() }
func (b *Booking) Duration() Duration     { return b.interval.Duration() }
func (b *Booking) Price() Money           { return b.price }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Requester() Requester   { return b.requester }
func (b *Booking) RequestedAt() time.Time { return b.requestedAt }
func (b *Booking) ReviewedBy() *uuid.UUID { return b.reviewedBy }
func (b *Booking) ReviewedAt() *time.Time { return b.reviewedAt }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
