package readstore

import (
	"context"

	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"
	"stable-booking-api/internal/pkg/pgconv"
	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const careViewColumns = `
	cb.id, cb.service_id, s.name, cb.horse_name, cb.booking_date, cb.status,
	cb.user_id, cb.customer_name, cb.customer_phone, cb.is_walk_in,
	cb.requested_at, cb.reviewed_by, cb.reviewed_at, cb.created_at`

type CareReadStore struct {
	db db.DBTX
}

func NewCareReadStore(dbtx db.DBTX) *CareReadStore {
	return &CareReadStore{db: dbtx}
}

func (r *CareReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CareBookingView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+careViewColumns+`
		FROM care_bookings cb
		JOIN services s ON s.id = cb.service_id
		WHERE cb.id = $1`, id)
	v, err := scanCareView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("care booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find care booking by ID", err)
	}
	return v, nil
}

func (r *CareReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.CareBookingView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+careViewColumns+`
		FROM care_bookings cb
		JOIN services s ON s.id = cb.service_id
		WHERE cb.user_id = $1
		ORDER BY cb.booking_date DESC, cb.requested_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list care bookings", err)
	}
	defer rows.Close()

	var result []*queries.CareBookingView
	for rows.Next() {
		v, err := scanCareView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan care booking row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list care bookings", err)
	}
	return result, nil
}

func scanCareView(row pgx.Row) (*queries.CareBookingView, error) {
	var v queries.CareBookingView
	err := row.Scan(
		&v.ID, &v.ServiceID, &v.ServiceName, &v.HorseName, &v.Date, &v.Status,
		&v.UserID, &v.CustomerName, &v.CustomerPhone, &v.IsWalkIn,
		&v.RequestedAt, &v.ReviewedBy, &v.ReviewedAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
