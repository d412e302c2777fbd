//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/pkg/jwt"
	"stable-booking-api/internal/pkg/password"
	"stable-booking-api/internal/usecase/commands"
	"stable-booking-api/internal/usecase/shared"
	"stable-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *jwt.Service {
	return jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("new account waits for approval", func(t *testing.T) {
		uow := newStubUoW()
		tokens := newStubTokenStore()
		cmd := commands.NewAuthCommands(uow, testJWTService(), tokens)

		id, err := cmd.Register(ctx, builder.NewAuthBuilder().BuildRegisterDTO())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		require.Len(t, uow.tx.users.created, 1)

		created := uow.tx.users.created[0]
		assert.Equal(t, user.StatusPendingApproval, created.Status())
		assert.Equal(t, user.RoleUser, created.Role())
		assert.NotEqual(t, "password123", created.PasswordHash(), "password must be hashed")
	})

	t.Run("invalid email", func(t *testing.T) {
		uow := newStubUoW()
		cmd := commands.NewAuthCommands(uow, testJWTService(), newStubTokenStore())

		req := builder.NewAuthBuilder().BuildRegisterDTO()
		req.Email = "not-an-email"

		_, err := cmd.Register(ctx, req)

		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, uow.tx.users.created)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uow := newStubUoW()
		uow.tx.users.createErr = duplicateKeyErr()
		cmd := commands.NewAuthCommands(uow, testJWTService(), newStubTokenStore())

		_, err := cmd.Register(ctx, builder.NewAuthBuilder().BuildRegisterDTO())

		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	registeredUser := func(t *testing.T, uow *stubUoW, status user.Status) *shared.UserSnapshot {
		t.Helper()
		hash, err := password.HashPassword("password123")
		require.NoError(t, err)
		snapshot := builder.NewUserBuilder().WithStatus(status).BuildSnapshot()
		snapshot.PasswordHash = hash
		uow.tx.reads.addUser(snapshot)
		return snapshot
	}

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		uow := newStubUoW()
		tokens := newStubTokenStore()
		snapshot := registeredUser(t, uow, user.StatusActive)
		cmd := commands.NewAuthCommands(uow, testJWTService(), tokens)

		result, err := cmd.Login(ctx, builder.NewAuthBuilder().BuildLoginDTO())

		require.NoError(t, err)
		assert.Equal(t, snapshot.ID, result.UserID)
		assert.Equal(t, user.StatusActive, result.Status)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)
		assert.Len(t, tokens.stored, 1, "refresh jti must be allowlisted")
	})

	t.Run("pending accounts may log in", func(t *testing.T) {
		uow := newStubUoW()
		registeredUser(t, uow, user.StatusPendingApproval)
		cmd := commands.NewAuthCommands(uow, testJWTService(), newStubTokenStore())

		result, err := cmd.Login(ctx, builder.NewAuthBuilder().BuildLoginDTO())

		require.NoError(t, err)
		assert.Equal(t, user.StatusPendingApproval, result.Status)
	})

	t.Run("wrong password", func(t *testing.T) {
		uow := newStubUoW()
		registeredUser(t, uow, user.StatusActive)
		cmd := commands.NewAuthCommands(uow, testJWTService(), newStubTokenStore())

		req := builder.NewAuthBuilder().BuildLoginDTO()
		req.Password = "wrong-password"

		_, err := cmd.Login(ctx, req)

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email reads the same as a bad password", func(t *testing.T) {
		uow := newStubUoW()
		cmd := commands.NewAuthCommands(uow, testJWTService(), newStubTokenStore())

		_, err := cmd.Login(ctx, builder.NewAuthBuilder().BuildLoginDTO())

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	login := func(t *testing.T, cmd commands.AuthCommands, uow *stubUoW) *commands.LoginResult {
		t.Helper()
		hash, err := password.HashPassword("password123")
		require.NoError(t, err)
		snapshot := builder.NewUserBuilder().BuildSnapshot()
		snapshot.PasswordHash = hash
		uow.tx.reads.addUser(snapshot)

		result, err := cmd.Login(ctx, builder.NewAuthBuilder().BuildLoginDTO())
		require.NoError(t, err)
		return result
	}

	t.Run("rotation revokes the old token", func(t *testing.T) {
		uow := newStubUoW()
		tokens := newStubTokenStore()
		cmd := commands.NewAuthCommands(uow, testJWTService(), tokens)
		result := login(t, cmd, uow)

		pair, err := cmd.Refresh(ctx, result.TokenPair.RefreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEqual(t, result.TokenPair.RefreshToken, pair.RefreshToken)
		require.Len(t, tokens.revoked, 1)
		assert.Len(t, tokens.stored, 1, "only the fresh jti stays allowlisted")
	})

	t.Run("a rotated token cannot be replayed", func(t *testing.T) {
		uow := newStubUoW()
		tokens := newStubTokenStore()
		cmd := commands.NewAuthCommands(uow, testJWTService(), tokens)
		result := login(t, cmd, uow)

		_, err := cmd.Refresh(ctx, result.TokenPair.RefreshToken)
		require.NoError(t, err)

		_, err = cmd.Refresh(ctx, result.TokenPair.RefreshToken)
		require.ErrorIs(t, err, commands.ErrTokenRevoked)
	})

	t.Run("garbage token", func(t *testing.T) {
		cmd := commands.NewAuthCommands(newStubUoW(), testJWTService(), newStubTokenStore())

		_, err := cmd.Refresh(ctx, "not-a-jwt")

		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("access token is not accepted as a refresh token", func(t *testing.T) {
		uow := newStubUoW()
		tokens := newStubTokenStore()
		cmd := commands.NewAuthCommands(uow, testJWTService(), tokens)
		result := login(t, cmd, uow)

		_, err := cmd.Refresh(ctx, result.TokenPair.AccessToken)

		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the refresh token", func(t *testing.T) {
		uow := newStubUoW()
		tokens := newStubTokenStore()
		cmd := commands.NewAuthCommands(uow, testJWTService(), tokens)

		hash, err := password.HashPassword("password123")
		require.NoError(t, err)
		snapshot := builder.NewUserBuilder().BuildSnapshot()
		snapshot.PasswordHash = hash
		uow.tx.reads.addUser(snapshot)

		result, err := cmd.Login(ctx, builder.NewAuthBuilder().BuildLoginDTO())
		require.NoError(t, err)

		require.NoError(t, cmd.Logout(ctx, result.TokenPair.RefreshToken))
		assert.Empty(t, tokens.stored)
	})

	t.Run("invalid token", func(t *testing.T) {
		cmd := commands.NewAuthCommands(newStubUoW(), testJWTService(), newStubTokenStore())

		err := cmd.Logout(ctx, "not-a-jwt")

		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})
}
