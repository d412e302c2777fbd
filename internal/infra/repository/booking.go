package repository

import (
	"context"
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type ArenaBookingRepository struct {
	db db.DBTX
}

func NewArenaBookingRepository(dbtx db.DBTX) *ArenaBookingRepository {
	return &ArenaBookingRepository{db: dbtx}
}

// Reserve is the single authoritative reserve path for arena slots. It takes
// a per-(arena, date) advisory lock, re-checks the half-open interval against
// committed non-denied bookings, then inserts. The schema's exclusion
// constraint backstops the check; violations also surface as CONFLICT.
// Must run inside a transaction: the advisory lock is xact-scoped.
func (r *ArenaBookingRepository) Reserve(ctx context.Context, b *booking.Booking) error {
	lockKey := b.Arena().String() + ":" + b.Date().String()
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return infra.WrapRepoErr("failed to lock arena schedule", err)
	}

	var conflicting bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM arena_bookings
			WHERE arena = $1
			  AND booking_date = $2
			  AND status IN ('PENDING', 'APPROVED')
			  AND start_min < $3
			  AND start_min + duration_min > $4
		)`,
		b.Arena().String(), b.Date().At(0), int(b.End()), int(b.Start()),
	).Scan(&conflicting)
	if err != nil {
		return infra.WrapRepoErr("failed to check slot conflicts", err)
	}
	if conflicting {
		return infra.WrapRepoErr("slot already booked", nil, infra.KindConflict)
	}

	req := b.Requester()
	var customerName, customerPhone *string
	if w := req.WalkIn(); w != nil {
		customerName = &w.Name
		customerPhone = &w.Phone
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO arena_bookings (
			id, arena, booking_date, start_min, duration_min, price_pence,
			status, user_id, customer_name, customer_phone, is_walk_in,
			requested_at, reviewed_by, reviewed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		b.ID(), b.Arena().String(), b.Date().At(0), int(b.Start()), b.Duration().Minutes(),
		b.Price().Pence(), b.Status().String(), req.UserID(), customerName, customerPhone,
		req.IsWalkIn(), b.RequestedAt(), b.ReviewedBy(), b.ReviewedAt(),
	)
	if err != nil {
		return mapPgError("failed to insert arena booking", err)
	}
	return nil
}

func (r *ArenaBookingRepository) MarkReviewed(ctx context.Context, id uuid.UUID, to booking.Status, adminID uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE arena_bookings
		SET status = $2, reviewed_by = $3, reviewed_at = $4, updated_at = now()
		WHERE id = $1 AND status = 'PENDING'`,
		id, to.String(), adminID, at,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to review arena booking", err)
	}
	return tag.RowsAffected() == 1, nil
}
