package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sample-user-api/internal/model"
)

type fakeAuthorizer struct {
	valid    string
	identity string
}

func (a *fakeAuthorizer) Authorize(_ context.Context, token string) (string, error) {
	if token == a.valid {
		return a.identity, nil
	}
	return "", model.ErrUnauthorized
}

func newAuthTestHandler(t *testing.T) (http.Handler, *string) {
	t.Helper()
	mw := NewAuthMiddleware(&fakeAuthorizer{valid: "good-token", identity: "alice"})

	var seenIdentity string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenIdentity, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	return mw.RequireAuth(next), &seenIdentity
}

func TestRequireAuth_HeaderTransport(t *testing.T) {
	handler, seenIdentity := newAuthTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", *seenIdentity)
}

func TestRequireAuth_CookieTransport(t *testing.T) {
	handler, seenIdentity := newAuthTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "good-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", *seenIdentity)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	handler, _ := newAuthTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Missing access token"}`, rec.Body.String())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler, _ := newAuthTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid access token"}`, rec.Body.String())
}

func TestRequireAuth_HeaderTakesPrecedenceOverCookie(t *testing.T) {
	handler, _ := newAuthTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "good-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
