package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sample-user-api/internal/model"
	"sample-user-api/internal/service"
	"sample-user-api/pkg/apierror"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.UserListResponse{Data: users})
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New(http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body").WithDetails(err.Error()))
		return
	}

	if _, err := h.service.Create(r.Context(), payload.Name, payload.Role); err != nil {
		if errors.Is(err, model.ErrMissingField) {
			writeMessage(w, http.StatusBadRequest, "Missing name or role")
			return
		}
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "User created successfully!")
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			writeMessage(w, http.StatusBadRequest, fmt.Sprintf("Invalid user id %s", id))
			return
		}
		writeError(w, err)
		return
	}

	// A missing record still reports 200; only the message differs.
	if !deleted {
		writeMessage(w, http.StatusOK, fmt.Sprintf("No User found with id %s", id))
		return
	}

	writeMessage(w, http.StatusOK, fmt.Sprintf("User with id: %s deleted successfully!", id))
}
