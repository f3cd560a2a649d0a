package service

import (
	"context"
	"strings"

	"sample-user-api/internal/model"
)

type UserStore interface {
	Insert(ctx context.Context, name string, role string) (string, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Create(ctx context.Context, name string, role string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(role) == "" {
		return "", model.ErrMissingField
	}
	return s.users.Insert(ctx, name, role)
}

// Delete reports whether exactly one record was removed. A malformed id
// surfaces as model.ErrMalformedID from the store.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	return s.users.Delete(ctx, id)
}
