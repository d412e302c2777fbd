package repository

import (
	"context"
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/care"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type CareBookingRepository struct {
	db db.DBTX
}

func NewCareBookingRepository(dbtx db.DBTX) *CareBookingRepository {
	return &CareBookingRepository{db: dbtx}
}

func (r *CareBookingRepository) Create(ctx context.Context, b *care.Booking) error {
	req := b.Requester()
	var customerName, customerPhone *string
	if w := req.WalkIn(); w != nil {
		customerName = &w.Name
		customerPhone = &w.Phone
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO care_bookings (
			id, service_id, horse_name, booking_date, status,
			user_id, customer_name, customer_phone, is_walk_in,
			requested_at, reviewed_by, reviewed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID(), b.ServiceID(), b.HorseName(), b.Date().At(0), b.Status().String(),
		req.UserID(), customerName, customerPhone, req.IsWalkIn(),
		b.RequestedAt(), b.ReviewedBy(), b.ReviewedAt(),
	)
	if err != nil {
		return mapPgError("failed to insert care booking", err)
	}
	return nil
}

func (r *CareBookingRepository) MarkReviewed(ctx context.Context, id uuid.UUID, to booking.Status, adminID uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE care_bookings
		SET status = $2, reviewed_by = $3, reviewed_at = $4, updated_at = now()
		WHERE id = $1 AND status = 'PENDING'`,
		id, to.String(), adminID, at,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to review care booking", err)
	}
	return tag.RowsAffected() == 1, nil
}
