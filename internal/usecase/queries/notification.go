package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*NotificationView, error)
}

type NotificationReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*NotificationView, error) {
	return q.readStore.FindByUserID(ctx, userID, unreadOnly)
}
