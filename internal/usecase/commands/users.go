package commands

import (
	"context"

	"stable-booking-api/internal/domain/notification"
	"stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/internal/pkg/errs"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errs.New("user not found")
	ErrAdminProtected = errs.New("admin accounts cannot be suspended or deleted")
	ErrSelfDelete     = errs.New("cannot delete own account")
)

type UserCommands interface {
	Approve(ctx context.Context, targetID, adminID uuid.UUID) error
	Deny(ctx context.Context, targetID, adminID uuid.UUID) error
	Suspend(ctx context.Context, targetID, adminID uuid.UUID) error
	Reactivate(ctx context.Context, targetID, adminID uuid.UUID) error
	Delete(ctx context.Context, targetID, adminID uuid.UUID) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, c clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:   uow,
		clock: c,
	}
}

func (u *userCommandsImpl) Approve(ctx context.Context, targetID, adminID uuid.UUID) error {
	return u.transition(ctx, targetID, adminID, user.StatusActive, notification.KindAccountApproved, false)
}

func (u *userCommandsImpl) Deny(ctx context.Context, targetID, adminID uuid.UUID) error {
	return u.transition(ctx, targetID, adminID, user.StatusSuspended, notification.KindAccountDenied, false)
}

// Suspend blocks an active account. Admin accounts are protected.
func (u *userCommandsImpl) Suspend(ctx context.Context, targetID, adminID uuid.UUID) error {
	return u.transition(ctx, targetID, adminID, user.StatusSuspended, notification.KindAccountSuspended, true)
}

func (u *userCommandsImpl) Reactivate(ctx context.Context, targetID, adminID uuid.UUID) error {
	return u.transition(ctx, targetID, adminID, user.StatusActive, notification.KindAccountReactivated, false)
}

func (u *userCommandsImpl) Delete(ctx context.Context, targetID, adminID uuid.UUID) error {
	if targetID == adminID {
		return ErrSelfDelete
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := findUser(ctx, tx, targetID)
		if err != nil {
			return err
		}
		if snapshot.Role == user.RoleAdmin {
			return ErrAdminProtected
		}

		deleted, err := tx.Users().Delete(ctx, targetID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrUserNotFound
		}
		return nil
	})
}

func (u *userCommandsImpl) transition(ctx context.Context, targetID, adminID uuid.UUID, to user.Status, kind notification.Kind, protectAdmins bool) error {
	now := u.clock.Now()

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := findUser(ctx, tx, targetID)
		if err != nil {
			return err
		}
		if protectAdmins && snapshot.Role == user.RoleAdmin {
			return ErrAdminProtected
		}

		updated, err := tx.Users().UpdateStatus(ctx, targetID, to, adminID, now)
		if err != nil {
			return err
		}
		if !updated {
			return ErrUserNotFound
		}

		return tx.Notifications().Create(ctx, notification.New(targetID, kind, nil))
	})
}

func findUser(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.UserSnapshot, error) {
	snapshot, err := tx.Reads().UserByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	return snapshot, nil
}
