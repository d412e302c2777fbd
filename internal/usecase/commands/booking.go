package commands

import (
	"context"

	"stable-booking-api/internal/domain/booking"
	reqdto "stable-booking-api/internal/handler/dto/request"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/errs"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDomainValidation = errs.New("domain validation error")
	ErrSlotConflict     = errs.New("slot conflict")
	ErrAccountNotActive = errs.New("account not active")
)

type BookingCommands interface {
	// Submit places a customer booking request in PENDING state.
	Submit(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (uuid.UUID, error)
	// SubmitProxy places a pre-approved booking on behalf of a registered
	// customer or a walk-in.
	SubmitProxy(ctx context.Context, req reqdto.ProxyBookingRequest, adminID uuid.UUID) (uuid.UUID, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
}

func NewBookingCommands(uow shared.UnitOfWork, factory *booking.Factory) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		factory: factory,
	}
}

func (c *bookingCommandsImpl) Submit(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (uuid.UUID, error) {
	requester, err := c.bookingRequester(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}

	slot, err := parseSlot(req.ArenaOrDefault(), req.Date, req.Start, req.DurationMin)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	b, err := c.factory.NewRequest(slot.arena, slot.date, slot.start, slot.duration, requester)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	return b.ID(), c.reserve(ctx, b)
}

func (c *bookingCommandsImpl) SubmitProxy(ctx context.Context, req reqdto.ProxyBookingRequest, adminID uuid.UUID) (uuid.UUID, error) {
	requester, err := resolveRequester(ctx, c.uow.Reads(), req.UserID, req.CustomerName, req.CustomerPhone)
	if err != nil {
		return uuid.Nil, err
	}

	slot, err := parseSlot(req.Arena, req.Date, req.Start, req.DurationMin)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	b, err := c.factory.NewApproved(slot.arena, slot.date, slot.start, slot.duration, requester, adminID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	return b.ID(), c.reserve(ctx, b)
}

// reserve delegates the conflict check to the single atomic repository path.
func (c *bookingCommandsImpl) reserve(ctx context.Context, b *booking.Booking) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ArenaBookings().Reserve(ctx, b)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrSlotConflict)
		}
		return err
	}
	return nil
}

// bookingRequester checks the account may book and wraps it as the requester.
func (c *bookingCommandsImpl) bookingRequester(ctx context.Context, userID uuid.UUID) (booking.Requester, error) {
	snapshot, err := c.uow.Reads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Requester{}, errs.Mark(err, ErrUserNotFound)
		}
		return booking.Requester{}, err
	}
	if !snapshot.CanBook() {
		return booking.Requester{}, ErrAccountNotActive
	}
	return booking.NewAccountRequester(userID), nil
}

// resolveRequester enforces the proxy rule: a registered user id or walk-in
// details, never both, never neither.
func resolveRequester(ctx context.Context, reads shared.CommandReads, userID *uuid.UUID, name, phone *string) (booking.Requester, error) {
	hasWalkIn := name != nil || phone != nil

	switch {
	case userID != nil && hasWalkIn:
		return booking.Requester{}, errs.Mark(booking.ErrRequesterRequired, ErrDomainValidation)
	case userID != nil:
		if _, err := reads.UserByID(ctx, *userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return booking.Requester{}, errs.Mark(err, ErrUserNotFound)
			}
			return booking.Requester{}, err
		}
		return booking.NewAccountRequester(*userID), nil
	case hasWalkIn:
		var n, p string
		if name != nil {
			n = *name
		}
		if phone != nil {
			p = *phone
		}
		requester, err := booking.NewWalkInRequester(n, p)
		if err != nil {
			return booking.Requester{}, errs.Mark(err, ErrDomainValidation)
		}
		return requester, nil
	default:
		return booking.Requester{}, errs.Mark(booking.ErrRequesterRequired, ErrDomainValidation)
	}
}

type slot struct {
	arena    booking.Arena
	date     booking.Date
	start    booking.TimeOfDay
	duration booking.Duration
}

func parseSlot(arenaStr, dateStr, startStr string, durationMin int) (slot, error) {
	arena, err := booking.NewArena(arenaStr)
	if err != nil {
		return slot{}, err
	}
	date, err := booking.ParseDate(dateStr)
	if err != nil {
		return slot{}, err
	}
	start, err := booking.ParseTimeOfDay(startStr)
	if err != nil {
		return slot{}, err
	}
	duration, err := booking.NewDuration(durationMin)
	if err != nil {
		return slot{}, err
	}
	return slot{arena: arena, date: date, start: start, duration: duration}, nil
}
