package handlers

import (
	"net/http"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	uc     authUsecase
	logger logx.Logger
}

// NewAuthHandler wires an authUsecase into HTTP handlers.
func NewAuthHandler(uc authUsecase, logger logx.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	ok, err := h.uc.ValidateLogin(ctx, req.Username, req.Password)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		writeError(h.logger, w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loginResponse{Success: true, Username: req.Username})
}
