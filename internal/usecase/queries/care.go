package queries

import (
	"context"

	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CareQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*CareBookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CareBookingView, error)
}

type CareReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CareBookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*CareBookingView, error)
}

type careQueriesImpl struct {
	readStore CareReadStore
}

func NewCareQueries(readStore CareReadStore) CareQueries {
	return &careQueriesImpl{readStore: readStore}
}

func (q *careQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*CareBookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}

	if !isAdmin && (view.UserID == nil || *view.UserID != actorID) {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *careQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*CareBookingView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
