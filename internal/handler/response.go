package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sample-user-api/internal/model"
	"sample-user-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeError renders every failure as a flat {message} payload. Auth-flow
// sentinels map here; handlers with id- or field-specific wording render
// their own messages before reaching this.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Details != "" {
			slog.Warn("request rejected", "code", apiErr.Code, "details", apiErr.Details)
		}
		writeMessage(w, apiErr.HTTPStatus, apiErr.Message)
	case errors.Is(err, model.ErrMissingField):
		writeMessage(w, http.StatusUnauthorized, "Missing username or password")
	case errors.Is(err, model.ErrUserAlreadyExists):
		writeMessage(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrTokenNotFound):
		writeMessage(w, http.StatusUnauthorized, "Invalid access token")
	case errors.Is(err, model.ErrMalformedID):
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "Unexpected server error")
	}
}
