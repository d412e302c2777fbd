package commands

import (
	"context"
	"log/slog"
	"time"

	"stable-booking-api/internal/domain/user"
	reqdto "stable-booking-api/internal/handler/dto/request"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/errs"
	"stable-booking-api/internal/pkg/jwt"
	"stable-booking-api/internal/pkg/password"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
	ErrTokenRevoked       = errs.New("refresh token revoked")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	Status    user.Status
	TokenPair TokenPair
}

// RefreshTokenStore is the allowlist of live refresh token ids.
type RefreshTokenStore interface {
	Store(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error
	Valid(ctx context.Context, jti string, userID uuid.UUID) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	tokens     RefreshTokenStore
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, tokens RefreshTokenStore) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		tokens:     tokens,
	}
}

// Register creates an account awaiting admin approval.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(email, hash, &req.FullName, req.Phone)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, newUser)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrEmailTaken)
		}
		return uuid.Nil, err
	}

	return newUser.ID(), nil
}

// Login authenticates any registered account. Accounts that are not ACTIVE
// can hold a session but are turned away from booking operations.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	snapshot, err := a.uow.Reads().UserByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(snapshot.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := a.issueTokens(ctx, snapshot.ID, snapshot.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:    snapshot.ID,
		Role:      snapshot.Role,
		Status:    snapshot.Status,
		TokenPair: *pair,
	}, nil
}

// Refresh rotates the refresh token: the presented jti is revoked and a fresh
// pair is issued.
func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	valid, err := a.tokens.Valid(ctx, claims.ID, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	snapshot, err := a.uow.Reads().UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if err := a.tokens.Revoke(ctx, claims.ID); err != nil {
		slog.Warn("failed to revoke rotated refresh token", "jti", claims.ID, "error", err.Error())
	}

	return a.issueTokens(ctx, snapshot.ID, snapshot.Role)
}

func (a *authCommandsImpl) Logout(ctx context.Context, refreshToken string) error {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return errs.Mark(err, ErrTokenValidation)
	}
	return a.tokens.Revoke(ctx, claims.ID)
}

func (a *authCommandsImpl) issueTokens(ctx context.Context, userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, jti, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.tokens.Store(ctx, jti, userID, a.jwtService.RefreshTTL()); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
