package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sample-user-api/internal/model"
	"sample-user-api/pkg/apierror"
)

func TestWriteError_UnknownErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("store exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message": "Unexpected server error"}`, rec.Body.String())
}

func TestWriteError_APIErrorKeepsStatusAndMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, apierror.New(http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body").WithDetails("unexpected EOF"))

	// Details feed the log, never the wire body.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid JSON body"}`, rec.Body.String())
}

func TestWriteError_SentinelMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{model.ErrMissingField, http.StatusUnauthorized, "Missing username or password"},
		{model.ErrUserAlreadyExists, http.StatusBadRequest, "Username already exists"},
		{model.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{model.ErrUnauthorized, http.StatusUnauthorized, "Invalid access token"},
		{model.ErrTokenNotFound, http.StatusUnauthorized, "Invalid access token"},
		{model.ErrMalformedID, http.StatusBadRequest, "Invalid user id"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, tc.err)

		assert.Equal(t, tc.status, rec.Code, "error %v", tc.err)
		assert.JSONEq(t, `{"message": "`+tc.message+`"}`, rec.Body.String(), "error %v", tc.err)
	}
}

func TestAuthHandler_InvalidJSONBody(t *testing.T) {
	h := NewAuthHandler(nil)

	req := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid JSON body"}`, rec.Body.String())
}

func TestHealthHandler_ReportsUnavailableStore(t *testing.T) {
	h := NewHealthHandler(map[string]func(context.Context) error{
		"resource store": func(context.Context) error { return errors.New("down") },
	})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message": "resource store unavailable"}`, rec.Body.String())
}
