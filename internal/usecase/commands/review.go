package commands

import (
	"context"
	"log/slog"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/notification"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/internal/pkg/errs"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrAlreadyReviewed = errs.New("booking already reviewed")
)

type ReviewCommands interface {
	ApproveArenaBooking(ctx context.Context, bookingID, adminID uuid.UUID) error
	DenyArenaBooking(ctx context.Context, bookingID, adminID uuid.UUID) error
	ApproveCareBooking(ctx context.Context, bookingID, adminID uuid.UUID) error
	DenyCareBooking(ctx context.Context, bookingID, adminID uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
}

func NewReviewCommands(uow shared.UnitOfWork, c clock.Clock, publisher shared.EventPublisher) ReviewCommands {
	return &reviewCommandsImpl{
		uow:       uow,
		clock:     c,
		publisher: publisher,
	}
}

func (r *reviewCommandsImpl) ApproveArenaBooking(ctx context.Context, bookingID, adminID uuid.UUID) error {
	return r.review(ctx, shared.BookingTypeArena, bookingID, adminID, booking.StatusApproved)
}

func (r *reviewCommandsImpl) DenyArenaBooking(ctx context.Context, bookingID, adminID uuid.UUID) error {
	return r.review(ctx, shared.BookingTypeArena, bookingID, adminID, booking.StatusDenied)
}

func (r *reviewCommandsImpl) ApproveCareBooking(ctx context.Context, bookingID, adminID uuid.UUID) error {
	return r.review(ctx, shared.BookingTypeCare, bookingID, adminID, booking.StatusApproved)
}

func (r *reviewCommandsImpl) DenyCareBooking(ctx context.Context, bookingID, adminID uuid.UUID) error {
	return r.review(ctx, shared.BookingTypeCare, bookingID, adminID, booking.StatusDenied)
}

// review settles the booking exactly once. The conditional update refuses
// bookings that already left PENDING, so concurrent reviewers cannot both
// win. The notification row commits with the status change; the queue event
// goes out after commit, best effort.
func (r *reviewCommandsImpl) review(ctx context.Context, bookingType string, bookingID, adminID uuid.UUID, to booking.Status) error {
	now := r.clock.Now()

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := r.findBooking(ctx, tx, bookingType, bookingID)
		if err != nil {
			return err
		}

		var updated bool
		if bookingType == shared.BookingTypeArena {
			updated, err = tx.ArenaBookings().MarkReviewed(ctx, bookingID, to, adminID, now)
		} else {
			updated, err = tx.CareBookings().MarkReviewed(ctx, bookingID, to, adminID, now)
		}
		if err != nil {
			return err
		}
		if !updated {
			return ErrAlreadyReviewed
		}

		if snapshot.RequesterUserID != nil {
			kind := notification.KindBookingApproved
			if to == booking.StatusDenied {
				kind = notification.KindBookingDenied
			}
			n := notification.New(*snapshot.RequesterUserID, kind, &bookingID)
			if err := tx.Notifications().Create(ctx, n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	event := shared.ReviewedEvent{
		BookingID:   bookingID,
		BookingType: bookingType,
		Status:      to.String(),
		ReviewedBy:  adminID,
		ReviewedAt:  now,
	}
	if err := r.publisher.PublishReviewed(ctx, event); err != nil {
		slog.Warn("failed to publish review event",
			"booking_id", bookingID, "error", err.Error())
	}
	return nil
}

func (r *reviewCommandsImpl) findBooking(ctx context.Context, tx shared.Tx, bookingType string, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snapshot *shared.BookingSnapshot
		err      error
	)
	if bookingType == shared.BookingTypeArena {
		snapshot, err = tx.Reads().ArenaBookingByID(ctx, bookingID)
	} else {
		snapshot, err = tx.Reads().CareBookingByID(ctx, bookingID)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return snapshot, nil
}
