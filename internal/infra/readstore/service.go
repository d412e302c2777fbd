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

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, price_pence, duration_min, active, created_at
		FROM services WHERE id = $1`, id)
	v, err := scanServiceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return v, nil
}

func (r *ServiceReadStore) List(ctx context.Context, activeOnly bool) ([]*queries.ServiceView, error) {
	query := `
		SELECT id, name, description, price_pence, duration_min, active, created_at
		FROM services`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var result []*queries.ServiceView
	for rows.Next() {
		v, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	return result, nil
}

func scanServiceView(row pgx.Row) (*queries.ServiceView, error) {
	var v queries.ServiceView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.PricePence, &v.DurationMin, &v.Active, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
