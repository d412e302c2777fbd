package readstore

import (
	"context"
	"time"

	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"
	"stable-booking-api/internal/usecase/queries"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

// Stats aggregates the dashboard counters in one round trip.
// Revenue counts approved bookings dated on or after monthStart.
func (r *StatsReadStore) Stats(ctx context.Context, monthStart time.Time) (*queries.AdminStatsView, error) {
	var v queries.AdminStatsView
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM arena_bookings WHERE status = 'PENDING')
				+ (SELECT count(*) FROM care_bookings WHERE status = 'PENDING'),
			(SELECT count(*) FROM users WHERE status = 'PENDING_APPROVAL'),
			(SELECT count(*) FROM users WHERE status = 'ACTIVE'),
			COALESCE((SELECT sum(price_pence) FROM arena_bookings
				WHERE status = 'APPROVED' AND booking_date >= $1), 0)
				+ COALESCE((SELECT sum(s.price_pence) FROM care_bookings cb
					JOIN services s ON s.id = cb.service_id
					WHERE cb.status = 'APPROVED' AND cb.booking_date >= $1), 0)`,
		monthStart,
	).Scan(&v.PendingBookings, &v.PendingAccounts, &v.ActiveAccounts, &v.MonthRevenuePence)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load admin stats", err)
	}
	return &v, nil
}

// PendingQueue merges arena and care bookings awaiting review, newest first.
func (r *StatsReadStore) PendingQueue(ctx context.Context) ([]*queries.PendingBookingItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, 'ARENA' AS type,
			arena || ' ' || lpad((start_min / 60)::text, 2, '0') || ':' || lpad((start_min % 60)::text, 2, '0')
				|| ' (' || duration_min || ' min)' AS summary,
			booking_date, user_id, customer_name, is_walk_in, requested_at
		FROM arena_bookings
		WHERE status = 'PENDING'
		UNION ALL
		SELECT cb.id, 'CARE' AS type,
			s.name || ' for ' || cb.horse_name AS summary,
			cb.booking_date, cb.user_id, cb.customer_name, cb.is_walk_in, cb.requested_at
		FROM care_bookings cb
		JOIN services s ON s.id = cb.service_id
		WHERE cb.status = 'PENDING'
		ORDER BY requested_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load pending queue", err)
	}
	defer rows.Close()

	var result []*queries.PendingBookingItem
	for rows.Next() {
		var v queries.PendingBookingItem
		if err := rows.Scan(&v.ID, &v.Type, &v.Summary, &v.Date, &v.UserID, &v.CustomerName, &v.IsWalkIn, &v.RequestedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending queue row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load pending queue", err)
	}
	return result, nil
}
