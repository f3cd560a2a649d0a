package handler

import (
	"encoding/json"
	"net/http"

	"sample-user-api/internal/model"
	"sample-user-api/internal/service"
	"sample-user-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New(http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body").WithDetails(err.Error()))
		return
	}

	if err := h.service.Register(r.Context(), payload.Username, payload.Password, payload.Role); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New(http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body").WithDetails(err.Error()))
		return
	}

	token, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{AccessToken: token})
}
