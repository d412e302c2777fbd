package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stable-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Refresh token allowlist: refresh:{jti} -> user id. A refresh token is
// accepted only while its jti is present; logout and rotation delete it.
const keyRefreshToken = "refresh:%s"

type RefreshTokenStore struct {
	client *redis.Client
}

func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

func (s *RefreshTokenStore) Store(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error {
	key := fmt.Sprintf(keyRefreshToken, jti)
	if err := s.client.Set(ctx, key, userID.String(), ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store refresh token")
	}
	return nil
}

// Valid reports whether the jti is allowlisted for the given user.
func (s *RefreshTokenStore) Valid(ctx context.Context, jti string, userID uuid.UUID) (bool, error) {
	key := fmt.Sprintf(keyRefreshToken, jti)
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errs.Wrap(err, "failed to check refresh token")
	}
	return val == userID.String(), nil
}

func (s *RefreshTokenStore) Revoke(ctx context.Context, jti string) error {
	key := fmt.Sprintf(keyRefreshToken, jti)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errs.Wrap(err, "failed to revoke refresh token")
	}
	return nil
}
