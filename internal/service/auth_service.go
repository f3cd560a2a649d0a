package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sample-user-api/internal/model"
)

const defaultRole = "user"

type CredentialStore interface {
	Save(ctx context.Context, username string, cred model.Credential) error
	Find(ctx context.Context, username string) (model.Credential, error)
	Exists(ctx context.Context, username string) (bool, error)
}

type TokenStore interface {
	Store(ctx context.Context, username string, token string, ttl time.Duration) error
	Find(ctx context.Context, username string) (string, error)
}

type AuthService struct {
	credentials CredentialStore
	tokens      TokenStore
	jwtSecret   []byte
	sessionTTL  time.Duration
}

func NewAuthService(jwtSecret string, sessionTTL time.Duration, credentials CredentialStore, tokens TokenStore) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if sessionTTL <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	return &AuthService{
		credentials: credentials,
		tokens:      tokens,
		jwtSecret:   []byte(jwtSecret),
		sessionTTL:  sessionTTL,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, username string, password string, role string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.ErrMissingField
	}

	exists, err := s.credentials.Exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrUserAlreadyExists
	}

	if strings.TrimSpace(role) == "" {
		role = defaultRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	return s.credentials.Save(ctx, username, model.Credential{
		PasswordHash: string(hash),
		Role:         role,
	})
}

// Login verifies the password and caches a fresh session token under the
// username, overwriting any prior one. A lookup that comes back without a
// usable hash is an invalid-credentials failure, not a fault.
func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", model.ErrMissingField
	}

	cred, err := s.credentials.Find(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if cred.PasswordHash == "" {
		return "", model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.signToken(username)
	if err != nil {
		return "", err
	}

	if err := s.tokens.Store(ctx, username, token, s.sessionTTL); err != nil {
		return "", err
	}

	return token, nil
}

// Authorize resolves the identity claimed by the token and accepts it only if
// it is exactly the token currently cached for that identity. An absent cache
// entry covers both "never logged in" and "expired".
func (s *AuthService) Authorize(ctx context.Context, token string) (string, error) {
	username, err := s.parseIdentity(token)
	if err != nil {
		return "", model.ErrUnauthorized
	}

	cached, err := s.tokens.Find(ctx, username)
	if errors.Is(err, model.ErrTokenNotFound) {
		return "", model.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if cached != token {
		return "", model.ErrUnauthorized
	}

	return username, nil
}

func (s *AuthService) signToken(username string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(s.sessionTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) parseIdentity(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", model.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", model.ErrUnauthorized
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return "", model.ErrUnauthorized
	}

	return username, nil
}
