package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"sample-user-api/internal/model"
)

type authorizer interface {
	Authorize(ctx context.Context, token string) (string, error)
}

type contextKey string

const identityContextKey contextKey = "auth_identity"

// tokenCookieName is the fallback transport when no Authorization header is
// present.
const tokenCookieName = "access_token"

type AuthMiddleware struct {
	auth authorizer
}

func NewAuthMiddleware(auth authorizer) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth short-circuits with 401 when the bearer credential is absent or
// does not match the cached session for its claimed identity.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeUnauthorized(w, "Missing access token")
			return
		}

		identity, err := m.auth.Authorize(r.Context(), token)
		if err != nil {
			writeUnauthorized(w, "Invalid access token")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityContextKey).(string)
	return identity, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		token := strings.TrimSpace(header[7:])
		return token, token != ""
	}

	if cookie, err := r.Cookie(tokenCookieName); err == nil {
		token := strings.TrimSpace(cookie.Value)
		return token, token != ""
	}

	return "", false
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.MessageResponse{Message: message})
}
