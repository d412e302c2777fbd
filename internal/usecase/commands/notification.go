package commands

import (
	"context"

	"stable-booking-api/internal/pkg/errs"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

// MarkRead scopes the update to the owner, so reading someone else's
// notification id comes back as not found.
func (n *notificationCommandsImpl) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, err := tx.Notifications().MarkRead(ctx, notificationID, userID)
		if err != nil {
			return err
		}
		if !updated {
			return ErrNotificationNotFound
		}
		return nil
	})
}

func (n *notificationCommandsImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkAllRead(ctx, userID)
	})
}
