package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sample-user-api/internal/model"
)

const tokenKeyPrefix = "token:"

// TokenRepository caches one session token per username. Expiry is delegated
// entirely to the store's own TTL; nothing here evicts actively.
type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{client: client}
}

func (r *TokenRepository) Store(ctx context.Context, username string, token string, ttl time.Duration) error {
	err := r.client.SetEx(ctx, tokenKeyPrefix+username, token, ttl).Err()
	if err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Find(ctx context.Context, username string) (string, error) {
	token, err := r.client.Get(ctx, tokenKeyPrefix+username).Result()
	if errors.Is(err, redis.Nil) {
		return "", model.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find session token: %w", err)
	}
	return token, nil
}
