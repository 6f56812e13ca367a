package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// checkHealth answers 503 while the database does not respond.
func (h *Handler) checkHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		h.writeJSON(w, r, models.HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
