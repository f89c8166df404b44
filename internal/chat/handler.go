package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP API layer for the chat endpoint.
type Handler struct {
	service Service
}

// NewHandler creates a new handler injecting the service.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches the chat endpoint to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/chat", h.handleProcessChat)
}

// handleProcessChat decodes the conversation and returns the service's reply.
func (h *Handler) handleProcessChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	response, err := h.service.ProcessChat(r.Context(), &req)
	if err != nil {
		var chatErr *Error
		if errors.As(err, &chatErr) && chatErr.Code == ErrorInvalidInput {
			writeError(w, http.StatusBadRequest, chatErr.Reason)
			return
		}
		writeError(w, http.StatusInternalServerError, "Could not process chat")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError sends an error body in the {"detail": ...} shape the frontend reads.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}
