package repository

import (
	"context"

	"stable-booking-api/internal/domain/notification"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (id, user_id, kind, title, message, related_booking_id, read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID(), n.UserID(), string(n.Kind()), n.Title(), n.Message(),
		n.RelatedBookingID(), n.Read(),
	)
	if err != nil {
		return mapPgError("failed to insert notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark notification read", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return nil
}
