package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/apperr"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// UserHandler serves admin account management endpoints.
type UserHandler struct {
	uc     authUsecase
	logger logx.Logger
}

// NewUserHandler wires an authUsecase into HTTP handlers.
func NewUserHandler(uc authUsecase, logger logx.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// List handles GET /api/users. Passwords are never returned.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	users, err := h.uc.List(ctx)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, usersToResponse(users))
}

// Save handles POST /api/users (create or replace an admin account).
func (h *UserHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveUserRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	err := h.uc.Save(ctx, req.toModel())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, userDTO{Username: req.Username})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "username and password are required")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /api/users/{username}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username, err := url.PathUnescape(chi.URLParam(r, "username"))
	if err != nil || username == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid username")
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	err = h.uc.Delete(ctx, username)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Refused):
		writeError(h.logger, w, r, http.StatusConflict, "cannot delete the last admin account")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
