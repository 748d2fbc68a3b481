package httpapp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tunevault/tunevault/internal/domain"
	"github.com/tunevault/tunevault/internal/httpapp/dto"
	"github.com/tunevault/tunevault/internal/store"
)

// PendingTracks returns the review queue: every track, newest first,
// with moderation fields included.
func (h *Handler) PendingTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.DB.ListAllTracks("", "")
	if err != nil {
		h.Logger.Error("Failed to list tracks", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, dto.NewTrackDetailResponseList(tracks))
}

// AllTracks lists every track with optional status and genre filters
// from the query string.
func (h *Handler) AllTracks(w http.ResponseWriter, r *http.Request) {
	status := domain.TrackStatus(r.URL.Query().Get("status"))
	if status != "" && !domain.ValidTrackStatus(status) {
		h.writeValidationErrors(w, []dto.ValidationError{
			{Field: "status", Message: "must be one of: pending, approved, rejected, processing"},
		})
		return
	}

	tracks, err := h.DB.ListAllTracks(status, r.URL.Query().Get("genre"))
	if err != nil {
		h.Logger.Error("Failed to list tracks", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, dto.NewTrackDetailResponseList(tracks))
}

// UpdateTrackStatus applies a moderation update and notifies the track's
// artist of the resulting status, including the ISRC once assigned.
func (h *Handler) UpdateTrackStatus(w http.ResponseWriter, r *http.Request) {
	track, err := h.DB.GetTrackByID(chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Track not found")
		return
	}
	if err != nil {
		h.Logger.Error("Failed to load track", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req dto.TrackStatusUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidationErrors(w, errs)
		return
	}

	if err := h.DB.UpdateTrackModeration(track.ID, req.ToUpdates()); err != nil {
		if errors.Is(err, store.ErrISRCTaken) {
			h.writeValidationErrors(w, []dto.ValidationError{
				{Field: "isrc", Message: "this ISRC is already assigned to another track"},
			})
			return
		}
		h.Logger.Error("Failed to update track status", "error", err, "track_id", track.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.DB.GetTrackByID(track.ID)
	if err != nil {
		h.Logger.Error("Failed to reload track", "error", err, "track_id", track.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.notifyStatusUpdate(updated)

	h.Logger.Info("Track moderated", "track_id", updated.ID, "status", updated.Status)
	h.writeJSON(w, http.StatusOK, dto.NewTrackDetailResponse(updated))
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DB.GetAdminStats()
	if err != nil {
		h.Logger.Error("Failed to compute stats", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, dto.NewStatsResponse(stats))
}

func (h *Handler) ArtistList(w http.ResponseWriter, r *http.Request) {
	artists, err := h.DB.ListUsersByRole(domain.RoleArtist)
	if err != nil {
		h.Logger.Error("Failed to list artists", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.UserResponse, 0, len(artists))
	for _, a := range artists {
		out = append(out, dto.NewUserResponse(a))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// notifyStatusUpdate tells the artist where their track landed. Sent on
// every moderation update, even one that did not change the status, so
// the artist also hears about ISRC or lyrics-only changes.
func (h *Handler) notifyStatusUpdate(track *store.TrackDetail) {
	status := string(track.Status)
	message := fmt.Sprintf("Your track %q has been %s.", track.Title, status)
	if track.ISRC != nil {
		message += fmt.Sprintf(" ISRC: %s", *track.ISRC)
	}

	n := &domain.Notification{
		UserID:  track.ArtistID,
		Type:    domain.NotificationType("track_" + status),
		Title:   "Track " + capitalize(status),
		Message: message,
		TrackID: &track.ID,
	}
	if err := h.DB.CreateNotification(n); err != nil {
		h.Logger.Error("Failed to create status notification", "error", err, "track_id", track.ID)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
