package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sample-user-api/internal/model"
)

// Credentials live under their own key prefix so a cached session token can
// never overwrite the password hash for the same username.
const credentialKeyPrefix = "cred:"

type CredentialRepository struct {
	client *redis.Client
}

func NewCredentialRepository(client *redis.Client) *CredentialRepository {
	return &CredentialRepository{client: client}
}

func (r *CredentialRepository) Save(ctx context.Context, username string, cred model.Credential) error {
	key := credentialKeyPrefix + username
	err := r.client.HSet(ctx, key, "password", cred.PasswordHash, "role", cred.Role).Err()
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *CredentialRepository) Find(ctx context.Context, username string) (model.Credential, error) {
	fields, err := r.client.HGetAll(ctx, credentialKeyPrefix+username).Result()
	if err != nil {
		return model.Credential{}, fmt.Errorf("find credential: %w", err)
	}
	if len(fields) == 0 {
		return model.Credential{}, model.ErrUserNotFound
	}

	return model.Credential{
		PasswordHash: fields["password"],
		Role:         fields["role"],
	}, nil
}

func (r *CredentialRepository) Exists(ctx context.Context, username string) (bool, error) {
	n, err := r.client.Exists(ctx, credentialKeyPrefix+username).Result()
	if err != nil {
		return false, fmt.Errorf("check credential exists: %w", err)
	}
	return n > 0, nil
}
