package repository

import (
	"context"
	"time"

	"stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

// Create persists a new account. created_at is left to the database default.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, phone, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Email().String(), u.PasswordHash(), u.FullName(), u.Phone(),
		u.Role().String(), u.Status().String(),
	)
	if err != nil {
		return mapPgError("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status user.Status, adminID uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET status = $2, reviewed_by = $3, reviewed_at = $4, updated_at = now()
		WHERE id = $1`,
		id, status.String(), adminID, at,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update user status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, mapPgError("failed to delete user", err)
	}
	return tag.RowsAffected() == 1, nil
}
