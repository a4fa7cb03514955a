package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// DriverHandler serves driver management endpoints.
type DriverHandler struct {
	store  driverStore
	logger logx.Logger
}

// NewDriverHandler wires a driverStore into HTTP handlers.
func NewDriverHandler(store driverStore, logger logx.Logger) *DriverHandler {
	return &DriverHandler{store: store, logger: logger}
}

// List handles GET /api/drivers.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	drivers, err := h.store.ListDrivers(ctx)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, drivers)
}

// Save handles POST /api/drivers (create or replace by id).
func (h *DriverHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d := req.toModel()
	if d.ID == "" || d.Name == "" || d.Phone == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "id, name and phone are required")
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	if err := h.store.SaveDriver(ctx, d); err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, d)
}

// Delete handles DELETE /api/drivers/{id}.
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withStorageTimeout(r.Context())
	defer cancel()

	if err := h.store.DeleteDriver(ctx, id); err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}
