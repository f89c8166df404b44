package portfolio

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP API layer for the portfolio catalog.
type Handler struct {
	service Service
}

// NewHandler is the constructor for the Handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches the catalog endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/projects", h.handleGetProjects)
	r.Get("/api/skills", h.handleGetSkills)
}

type projectsResponse struct {
	Projects []Project `json:"projects"`
}

type skillsResponse struct {
	Skills []Skill `json:"skills"`
}

func (h *Handler) handleGetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not fetch projects")
		return
	}

	writeJSON(w, http.StatusOK, projectsResponse{Projects: projects})
}

// handleGetSkills serves /api/skills, honoring an optional ?category= filter.
func (h *Handler) handleGetSkills(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	skills, err := h.service.GetSkills(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not fetch skills")
		return
	}

	writeJSON(w, http.StatusOK, skillsResponse{Skills: skills})
}

// writeJSON is a helper function to send json formatted responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError sends a standardized json error message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}
