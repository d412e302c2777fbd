package repository

import (
	"context"

	"stable-booking-api/internal/domain/service"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) Create(ctx context.Context, s *service.Service) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO services (id, name, description, price_pence, duration_min, active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID(), s.Name(), s.Description(), s.Price().Pence(), s.DurationMinutes(),
		s.Active(), s.CreatedBy(),
	)
	if err != nil {
		return mapPgError("failed to insert service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *service.Service) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE services
		SET name = $2, description = $3, price_pence = $4, duration_min = $5, updated_at = now()
		WHERE id = $1`,
		s.ID(), s.Name(), s.Description(), s.Price().Pence(), s.DurationMinutes(),
	)
	if err != nil {
		return false, mapPgError("failed to update service", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ServiceRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE services SET active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to toggle service", err)
	}
	return tag.RowsAffected() == 1, nil
}
