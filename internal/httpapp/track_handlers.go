package httpapp

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tunevault/tunevault/internal/audiometa"
	"github.com/tunevault/tunevault/internal/domain"
	"github.com/tunevault/tunevault/internal/httpapp/dto"
	"github.com/tunevault/tunevault/internal/store"
)

const maxUploadMemory = 32 << 20 // 32 MB in memory, larger parts spill to disk

// UploadTrack receives the multipart upload form, stores the blobs and
// creates the track in pending review state.
func (h *Handler) UploadTrack(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var req dto.UploadRequest
	if err := h.formDecoder.Decode(&req, r.MultipartForm.Value); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	errs := req.Validate()

	audio, audioHeader, err := r.FormFile("audio_file")
	if err != nil {
		errs = append(errs, dto.ValidationError{Field: "audio_file", Message: "is required"})
	} else {
		defer audio.Close()
	}
	if len(errs) > 0 {
		h.writeValidationErrors(w, errs)
		return
	}

	trackID := uuid.New().String()

	audioPath, err := h.Storage.SaveAudio(trackID, audioHeader.Filename, audio)
	if err != nil {
		h.Logger.Error("Failed to store audio file", "error", err, "track_id", trackID)
		h.writeError(w, http.StatusInternalServerError, "Failed to store audio file")
		return
	}

	// Best-effort probe: duration, plus tag fallbacks for fields the
	// form left empty.
	var meta *audiometa.Meta
	if m, err := audiometa.Probe(h.Storage.AbsPath(audioPath)); err == nil {
		meta = m
	} else {
		h.Logger.Warn("Audio probe failed", "error", err, "track_id", trackID)
		meta = &audiometa.Meta{}
	}

	genreName := req.GenreName
	if genreName == "" {
		genreName = meta.Genre
	}

	var genreID *int64
	if genreName != "" {
		genre, err := h.DB.GetOrCreateGenre(genreName)
		if err != nil {
			h.Logger.Error("Failed to resolve genre", "error", err, "genre", genreName)
			h.writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		genreID = &genre.ID
	}

	var coverPath *string
	if cover, coverHeader, err := r.FormFile("cover_art"); err == nil {
		defer cover.Close()
		p, err := h.Storage.SaveCover(trackID, coverHeader.Filename, cover)
		if err != nil {
			h.Logger.Error("Failed to store cover art", "error", err, "track_id", trackID)
			h.writeError(w, http.StatusInternalServerError, "Failed to store cover art")
			return
		}
		coverPath = &p
	} else if len(meta.CoverData) > 0 {
		p, err := h.Storage.SaveCoverBytes(trackID, audiometa.CoverExt(meta.CoverMIME), meta.CoverData)
		if err == nil {
			coverPath = &p
		}
	}

	track := &domain.Track{
		ID:           trackID,
		Title:        req.Title,
		ArtistID:     user.ID,
		GenreID:      genreID,
		ReleaseDate:  req.ReleaseDate,
		Duration:     meta.DurationSecs,
		AudioFile:    audioPath,
		CoverArt:     coverPath,
		Lyrics:       req.Lyrics,
		LyricsStatus: domain.LyricsStatusPending,
		Status:       domain.TrackStatusPending,
	}

	if err := h.DB.CreateTrack(track); err != nil {
		h.Storage.Remove(audioPath)
		if coverPath != nil {
			h.Storage.Remove(*coverPath)
		}
		h.Logger.Error("Failed to create track", "error", err, "track_id", trackID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.notifyUploadReceived(user.ID, track)

	detail, err := h.DB.GetTrackByID(trackID)
	if err != nil {
		h.Logger.Error("Failed to reload created track", "error", err, "track_id", trackID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.Info("Track uploaded", "track_id", trackID, "artist_id", user.ID, "title", track.Title)
	h.writeJSON(w, http.StatusCreated, dto.NewTrackDetailResponse(detail))
}

func (h *Handler) ArtistTracks(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	tracks, err := h.DB.ListTracksByArtist(user.ID)
	if err != nil {
		h.Logger.Error("Failed to list artist tracks", "error", err, "artist_id", user.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, dto.NewTrackDetailResponseList(tracks))
}

// GetTrack returns one track. Artists can only read their own tracks;
// listeners and admins can read any.
func (h *Handler) GetTrack(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

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

	if user.Role == domain.RoleArtist && track.ArtistID != user.ID {
		h.writeError(w, http.StatusForbidden, "Access denied")
		return
	}

	h.writeJSON(w, http.StatusOK, dto.NewTrackDetailResponse(track))
}

func (h *Handler) UpdateTrack(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

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

	if track.ArtistID != user.ID {
		h.writeError(w, http.StatusForbidden, "Access denied")
		return
	}

	var req dto.TrackUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidationErrors(w, errs)
		return
	}

	updates := req.ToUpdates()
	if req.GenreName != nil {
		if *req.GenreName == "" {
			updates["genre_id"] = nil
		} else {
			genre, err := h.DB.GetOrCreateGenre(*req.GenreName)
			if err != nil {
				h.Logger.Error("Failed to resolve genre", "error", err, "genre", *req.GenreName)
				h.writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			updates["genre_id"] = genre.ID
		}
	}

	if err := h.DB.UpdateTrackPartial(track.ID, updates); err != nil {
		h.Logger.Error("Failed to update track", "error", err, "track_id", track.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.DB.GetTrackByID(track.ID)
	if err != nil {
		h.Logger.Error("Failed to reload track", "error", err, "track_id", track.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, dto.NewTrackDetailResponse(updated))
}

func (h *Handler) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

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

	if track.ArtistID != user.ID {
		h.writeError(w, http.StatusForbidden, "Access denied")
		return
	}

	if err := h.DB.DeleteTrack(track.ID); err != nil {
		h.Logger.Error("Failed to delete track", "error", err, "track_id", track.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Blobs are removed after the row so a failed delete never leaves a
	// track pointing at missing files.
	h.Storage.Remove(track.AudioFile)
	if track.CoverArt != nil {
		h.Storage.Remove(*track.CoverArt)
	}

	h.Logger.Info("Track deleted", "track_id", track.ID, "artist_id", user.ID)
	w.WriteHeader(http.StatusNoContent)
}

// RecordPlay bumps the play counter and appends a history row in one
// transaction. Only listener accounts are linked to the history row;
// plays by artists and admins are recorded anonymously.
func (h *Handler) RecordPlay(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	var listenerID *int64
	if user.Role == domain.RoleListener {
		listenerID = &user.ID
	}

	play := &domain.PlayHistory{
		TrackID:    chi.URLParam(r, "id"),
		ListenerID: listenerID,
		IPAddress:  clientIP(r),
		UserAgent:  r.UserAgent(),
	}

	if err := h.DB.RecordPlay(play); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Track not found")
			return
		}
		h.Logger.Error("Failed to record play", "error", err, "track_id", play.TrackID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Play recorded"})
}

func clientIP(r *http.Request) *string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return nil
	}
	return &host
}

func (h *Handler) notifyUploadReceived(userID int64, track *domain.Track) {
	n := &domain.Notification{
		UserID:  userID,
		Type:    domain.NotificationTrackProcessing,
		Title:   "Track Uploaded",
		Message: fmt.Sprintf("Your track %q has been uploaded and is pending review.", track.Title),
		TrackID: &track.ID,
	}
	if err := h.DB.CreateNotification(n); err != nil {
		h.Logger.Error("Failed to create upload notification", "error", err, "track_id", track.ID)
	}
}
