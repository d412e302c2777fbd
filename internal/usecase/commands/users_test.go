//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stable-booking-api/internal/domain/notification"
	"stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/internal/usecase/commands"
	"stable-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLifecycleCommands(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	now := time.Date(2030, 6, 2, 9, 0, 0, 0, time.UTC)

	newCmd := func(uow *stubUoW) commands.UserCommands {
		return commands.NewUserCommands(uow, clock.NewMockClock(now))
	}

	addPending := func(uow *stubUoW) uuid.UUID {
		snapshot := builder.NewUserBuilder().WithStatus(user.StatusPendingApproval).BuildSnapshot()
		uow.tx.reads.addUser(snapshot)
		return snapshot.ID
	}

	transitions := []struct {
		name   string
		run    func(cmd commands.UserCommands, targetID uuid.UUID) error
		status user.Status
		kind   notification.Kind
	}{
		{
			name:   "approve",
			run:    func(cmd commands.UserCommands, id uuid.UUID) error { return cmd.Approve(ctx, id, adminID) },
			status: user.StatusActive,
			kind:   notification.KindAccountApproved,
		},
		{
			name:   "deny",
			run:    func(cmd commands.UserCommands, id uuid.UUID) error { return cmd.Deny(ctx, id, adminID) },
			status: user.StatusSuspended,
			kind:   notification.KindAccountDenied,
		},
		{
			name:   "suspend",
			run:    func(cmd commands.UserCommands, id uuid.UUID) error { return cmd.Suspend(ctx, id, adminID) },
			status: user.StatusSuspended,
			kind:   notification.KindAccountSuspended,
		},
		{
			name:   "reactivate",
			run:    func(cmd commands.UserCommands, id uuid.UUID) error { return cmd.Reactivate(ctx, id, adminID) },
			status: user.StatusActive,
			kind:   notification.KindAccountReactivated,
		},
	}

	for _, tc := range transitions {
		t.Run(tc.name+" updates status and notifies", func(t *testing.T) {
			uow := newStubUoW()
			targetID := addPending(uow)

			require.NoError(t, tc.run(newCmd(uow), targetID))

			require.Len(t, uow.tx.users.updates, 1)
			call := uow.tx.users.updates[0]
			assert.Equal(t, targetID, call.id)
			assert.Equal(t, tc.status, call.status)
			assert.Equal(t, adminID, call.adminID)

			require.Len(t, uow.tx.notifications.created, 1)
			n := uow.tx.notifications.created[0]
			assert.Equal(t, targetID, n.UserID())
			assert.Equal(t, tc.kind, n.Kind())
			assert.Nil(t, n.RelatedBookingID())
		})
	}

	t.Run("unknown target", func(t *testing.T) {
		uow := newStubUoW()

		err := newCmd(uow).Approve(ctx, uuid.New(), adminID)

		require.ErrorIs(t, err, commands.ErrUserNotFound)
		assert.Empty(t, uow.tx.notifications.created)
	})

	t.Run("admins cannot be suspended", func(t *testing.T) {
		uow := newStubUoW()
		admin := builder.NewUserBuilder().AsAdmin().BuildSnapshot()
		uow.tx.reads.addUser(admin)

		err := newCmd(uow).Suspend(ctx, admin.ID, adminID)

		require.ErrorIs(t, err, commands.ErrAdminProtected)
		assert.Empty(t, uow.tx.users.updates)
	})

	t.Run("delete removes the account", func(t *testing.T) {
		uow := newStubUoW()
		targetID := addPending(uow)

		require.NoError(t, newCmd(uow).Delete(ctx, targetID, adminID))
		require.Len(t, uow.tx.users.deleted, 1)
		assert.Equal(t, targetID, uow.tx.users.deleted[0])
	})

	t.Run("admins cannot be deleted", func(t *testing.T) {
		uow := newStubUoW()
		admin := builder.NewUserBuilder().AsAdmin().BuildSnapshot()
		uow.tx.reads.addUser(admin)

		err := newCmd(uow).Delete(ctx, admin.ID, adminID)

		require.ErrorIs(t, err, commands.ErrAdminProtected)
		assert.Empty(t, uow.tx.users.deleted)
	})

	t.Run("admins cannot delete themselves", func(t *testing.T) {
		uow := newStubUoW()

		err := newCmd(uow).Delete(ctx, adminID, adminID)

		require.ErrorIs(t, err, commands.ErrSelfDelete)
		assert.Empty(t, uow.tx.users.deleted)
	})
}
