package readstore

import (
	"context"

	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"
	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

func (r *NotificationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*queries.NotificationView, error) {
	query := `
		SELECT id, kind, title, message, related_booking_id, read, created_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Kind, &v.Title, &v.Message, &v.RelatedBookingID, &v.Read, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return result, nil
}
