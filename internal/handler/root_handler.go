package handler

import (
	"context"
	"net/http"
)

// Welcome serves the static root payload.
func Welcome(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "Welcome to sample.com")
}

type HealthHandler struct {
	checks map[string]func(context.Context) error
}

func NewHealthHandler(checks map[string]func(context.Context) error) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	for name, check := range h.checks {
		if err := check(r.Context()); err != nil {
			writeMessage(w, http.StatusServiceUnavailable, name+" unavailable")
			return
		}
	}

	writeMessage(w, http.StatusOK, "ok")
}
