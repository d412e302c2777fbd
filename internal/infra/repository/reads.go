package repository

import (
	"context"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/infra/db"
	"stable-booking-api/internal/pkg/pgconv"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the lookups commands need before deciding to write.
// It runs on whatever DBTX it is bound to, so inside a transaction it sees
// the transaction's own writes.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.scanUser(r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, full_name, phone, role, status, created_at
		FROM users WHERE id = $1`, id))
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.scanUser(r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, full_name, phone, role, status, created_at
		FROM users WHERE email = $1`, email))
}

type pgRow interface {
	Scan(dest ...any) error
}

func (r *CommandReads) scanUser(row pgRow) (*shared.UserSnapshot, error) {
	var (
		s      shared.UserSnapshot
		role   string
		status string
	)
	err := row.Scan(&s.ID, &s.Email, &s.PasswordHash, &s.FullName, &s.Phone, &role, &status, &s.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch user", err)
	}
	s.Role = user.Role(role)
	s.Status = user.Status(status)
	return &s, nil
}

func (r *CommandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var s shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price_pence, duration_min, active, created_by, created_at
		FROM services WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Description, &s.PricePence, &s.DurationMinutes, &s.Active, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch service", err)
	}
	return &s, nil
}

func (r *CommandReads) ArenaBookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.scanBookingSnapshot(ctx, `
		SELECT id, user_id, status FROM arena_bookings WHERE id = $1`, id, "arena booking")
}

func (r *CommandReads) CareBookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.scanBookingSnapshot(ctx, `
		SELECT id, user_id, status FROM care_bookings WHERE id = $1`, id, "care booking")
}

func (r *CommandReads) scanBookingSnapshot(ctx context.Context, query string, id uuid.UUID, label string) (*shared.BookingSnapshot, error) {
	var (
		s      shared.BookingSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.RequesterUserID, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(label+" not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch "+label, err)
	}
	s.Status = booking.Status(status)
	return &s, nil
}
