package httpapp

import (
	"net/http"

	"github.com/tunevault/tunevault/internal/httpapp/dto"
)

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Music platform API is running",
	})
}

// Genres is public: the genre list leaks nothing and clients need it
// before authenticating to build upload and filter forms.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.DB.ListGenres()
	if err != nil {
		h.Logger.Error("Failed to list genres", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, dto.NewGenreResponseList(genres))
}
