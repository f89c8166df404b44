// Package status serves the liveness endpoints of the service.
package status

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// StatusHealthy is the only status the health probe reports. If the process
// can answer, it is healthy.
const StatusHealthy = "healthy"

// Handler serves the root banner and the health probe.
type Handler struct {
	serviceName string
}

// NewHandler creates a handler announcing serviceName on the root route.
func NewHandler(serviceName string) *Handler {
	return &Handler{
		serviceName: serviceName,
	}
}

// RegisterRoutes attaches the status endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/api/health", h.handleHealth)
}

type rootResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Message: fmt.Sprintf("%s is running", h.serviceName),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: StatusHealthy})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
