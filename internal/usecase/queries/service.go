package queries

import (
	"context"

	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.New("service not found")

type ServiceQueries interface {
	// List returns active services for customers; admins see the full catalog.
	List(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, activeOnly bool) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*ServiceView, error) {
	return q.readStore.List(ctx, !includeInactive)
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, err
	}
	return view, nil
}
