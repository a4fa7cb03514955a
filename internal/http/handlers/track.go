package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/apperr"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// TrackHandler serves the public shipment lookup endpoints.
type TrackHandler struct {
	uc     trackingUsecase
	logger logx.Logger
}

// NewTrackHandler wires a trackingUsecase into the public tracking handlers.
func NewTrackHandler(uc trackingUsecase, logger logx.Logger) *TrackHandler {
	return &TrackHandler{uc: uc, logger: logger}
}

// ByCode handles GET /api/track/{code}.
func (h *TrackHandler) ByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	ship, err := h.uc.Get(ctx, code)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, ship)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid code")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// ByPhone handles GET /api/track/phone/{phone}. The phone segment may be
// URL-encoded and in any local format.
func (h *TrackHandler) ByPhone(w http.ResponseWriter, r *http.Request) {
	phone, err := url.PathUnescape(chi.URLParam(r, "phone"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid phone")
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	ship, err := h.uc.TrackByPhone(ctx, phone)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, ship)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid phone")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "no active shipment for this phone")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
