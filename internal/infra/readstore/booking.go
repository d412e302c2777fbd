package readstore

import (
	"context"
	"time"

	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"
	"stable-booking-api/internal/pkg/pgconv"
	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `
	id, arena, booking_date, start_min, duration_min, price_pence, status,
	user_id, customer_name, customer_phone, is_walk_in,
	requested_at, reviewed_by, reviewed_at, created_at`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingViewColumns+` FROM arena_bookings WHERE id = $1`, id)
	v, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return v, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingViewColumns+`
		FROM arena_bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC, start_min DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return result, nil
}

// DaySchedule returns the slots that block the grid for one arena and date.
// Denied bookings do not block.
func (r *BookingReadStore) DaySchedule(ctx context.Context, arena string, date time.Time) ([]queries.BookedSlot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT start_min, duration_min
		FROM arena_bookings
		WHERE arena = $1 AND booking_date = $2 AND status IN ('PENDING', 'APPROVED')
		ORDER BY start_min`, arena, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load day schedule", err)
	}
	defer rows.Close()

	var result []queries.BookedSlot
	for rows.Next() {
		var s queries.BookedSlot
		if err := rows.Scan(&s.StartMin, &s.DurationMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan day schedule row", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load day schedule", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.Arena, &v.Date, &v.StartMin, &v.DurationMin, &v.PricePence, &v.Status,
		&v.UserID, &v.CustomerName, &v.CustomerPhone, &v.IsWalkIn,
		&v.RequestedAt, &v.ReviewedBy, &v.ReviewedAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
