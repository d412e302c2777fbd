package queries

import (
	"context"
	"time"

	"stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatusFilter = errs.New("invalid status filter")

type AdminQueries interface {
	Stats(ctx context.Context) (*AdminStatsView, error)
	PendingBookings(ctx context.Context) ([]*PendingBookingItem, error)
	Users(ctx context.Context, statusFilter *string) ([]*UserView, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type StatsReadStore interface {
	Stats(ctx context.Context, monthStart time.Time) (*AdminStatsView, error)
	PendingQueue(ctx context.Context) ([]*PendingBookingItem, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, status *string) ([]*UserView, error)
}

type adminQueriesImpl struct {
	stats StatsReadStore
	users UserReadStore
	clock clock.Clock
}

func NewAdminQueries(stats StatsReadStore, users UserReadStore, c clock.Clock) AdminQueries {
	return &adminQueriesImpl{
		stats: stats,
		users: users,
		clock: c,
	}
}

func (q *adminQueriesImpl) Stats(ctx context.Context) (*AdminStatsView, error) {
	now := q.clock.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return q.stats.Stats(ctx, monthStart)
}

func (q *adminQueriesImpl) PendingBookings(ctx context.Context) ([]*PendingBookingItem, error) {
	return q.stats.PendingQueue(ctx)
}

func (q *adminQueriesImpl) Users(ctx context.Context, statusFilter *string) ([]*UserView, error) {
	if statusFilter != nil {
		if _, err := user.NewStatus(*statusFilter); err != nil {
			return nil, errs.Mark(err, ErrInvalidStatusFilter)
		}
	}
	return q.users.List(ctx, statusFilter)
}

func (q *adminQueriesImpl) UserByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	return q.users.FindByID(ctx, id)
}
