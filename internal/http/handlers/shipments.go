package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/apperr"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// ShipmentHandler serves shipment management endpoints.
type ShipmentHandler struct {
	uc     trackingUsecase
	logger logx.Logger
}

// NewShipmentHandler wires a trackingUsecase into HTTP handlers.
func NewShipmentHandler(uc trackingUsecase, logger logx.Logger) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, logger: logger}
}

// List handles GET /api/shipments. The response is keyed by tracking code.
func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	ships, err := h.uc.List(ctx)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ships)
}

// Get handles GET /api/shipments/{code}.
func (h *ShipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /api/shipments.
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	ship, err := h.uc.Create(ctx, req.toInput())
	switch {
	case err == nil:
		w.Header().Set("Location", "/api/shipments/"+ship.Code)
		writeJSON(h.logger, w, r, http.StatusCreated, ship)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "origin, destination and a valid status are required")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateLocation handles PUT /api/shipments/{code}/location.
func (h *ShipmentHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req updateLocationRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	ship, err := h.uc.UpdateLocation(ctx, code, req.toUpdate())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, ship)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateStatus handles PUT /api/shipments/{code}/status.
func (h *ShipmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	ship, err := h.uc.UpdateStatus(ctx, code, domain.TrackingStatus(req.Status), req.UpdatedBy)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, ship)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid status")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /api/shipments/{code}.
func (h *ShipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	err := h.uc.Delete(ctx, code)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid code")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
