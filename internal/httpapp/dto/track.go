package dto

import (
	"time"

	"github.com/tunevault/tunevault/internal/store"
)

// UploadRequest carries the non-file fields of the multipart upload
// form. The audio and cover blobs are read straight from the request.
type UploadRequest struct {
	Title       string `form:"title"`
	GenreName   string `form:"genre_name"`
	ReleaseDate string `form:"release_date"`
	Lyrics      string `form:"lyrics"`
}

func (r *UploadRequest) Validate() []ValidationError {
	var errs []ValidationError
	if r.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "is required"})
	}
	if r.ReleaseDate == "" {
		errs = append(errs, ValidationError{Field: "release_date", Message: "is required"})
	} else {
		errs = append(errs, validateReleaseDate(&r.ReleaseDate)...)
	}
	return errs
}

// TrackUpdateRequest is the owner's partial update. Moderation fields
// (status, isrc, lyrics_status, admin_notes) are deliberately absent.
type TrackUpdateRequest struct {
	Title       *string `json:"title"`
	GenreName   *string `json:"genre_name"`
	ReleaseDate *string `json:"release_date"`
	Lyrics      *string `json:"lyrics"`
}

func (r *TrackUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	if r.Title != nil && *r.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "cannot be empty"})
	}
	errs = append(errs, validateReleaseDate(r.ReleaseDate)...)
	return errs
}

// ToUpdates returns the column map for the store. Genre resolution
// happens in the handler (get-or-create by name), not here.
func (r *TrackUpdateRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.ReleaseDate != nil {
		updates["release_date"] = *r.ReleaseDate
	}
	if r.Lyrics != nil {
		updates["lyrics"] = *r.Lyrics
	}
	return updates
}

// TrackStatusUpdateRequest is the administrator's moderation update.
// Partial: nil fields stay unchanged.
type TrackStatusUpdateRequest struct {
	Status       *string `json:"status"`
	LyricsStatus *string `json:"lyrics_status"`
	ISRC         *string `json:"isrc"`
	AdminNotes   *string `json:"admin_notes"`
}

func (r *TrackStatusUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateTrackStatus(r.Status)...)
	errs = append(errs, validateLyricsStatus(r.LyricsStatus)...)
	errs = append(errs, validateISRC(r.ISRC)...)
	return errs
}

func (r *TrackStatusUpdateRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.LyricsStatus != nil {
		updates["lyrics_status"] = *r.LyricsStatus
	}
	if r.ISRC != nil {
		updates["isrc"] = *r.ISRC
	}
	if r.AdminNotes != nil {
		updates["admin_notes"] = *r.AdminNotes
	}
	return updates
}

// TrackResponse is the public track representation: nested artist and
// genre, no file references and no admin notes.
type TrackResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Artist       UserResponse   `json:"artist"`
	Genre        *GenreResponse `json:"genre"`
	ReleaseDate  string         `json:"release_date"`
	Duration     *int           `json:"duration"`
	Lyrics       string         `json:"lyrics"`
	LyricsStatus string         `json:"lyrics_status"`
	ISRC         *string        `json:"isrc"`
	Status       string         `json:"status"`
	PlayCount    int            `json:"play_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TrackDetailResponse adds the fields reserved for owners and
// administrators: file references and moderation notes.
type TrackDetailResponse struct {
	TrackResponse
	AudioFile  string  `json:"audio_file"`
	CoverArt   *string `json:"cover_art"`
	AdminNotes string  `json:"admin_notes"`
}

func NewTrackResponse(t *store.TrackDetail) TrackResponse {
	resp := TrackResponse{
		ID:    t.ID,
		Title: t.Title,
		Artist: UserResponse{
			ID:          t.ArtistID,
			Email:       t.ArtistEmail,
			DisplayName: t.ArtistDisplayName,
			Role:        t.ArtistRole,
			IsVerified:  t.ArtistVerified,
			CreatedAt:   t.ArtistCreatedAt,
		},
		ReleaseDate:  t.ReleaseDate,
		Duration:     t.Duration,
		Lyrics:       t.Lyrics,
		LyricsStatus: string(t.LyricsStatus),
		ISRC:         t.ISRC,
		Status:       string(t.Status),
		PlayCount:    t.PlayCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.GenreID != nil && t.GenreName != nil {
		genre := GenreResponse{ID: *t.GenreID, Name: *t.GenreName}
		if t.GenreDescription != nil {
			genre.Description = *t.GenreDescription
		}
		resp.Genre = &genre
	}
	return resp
}

func NewTrackDetailResponse(t *store.TrackDetail) TrackDetailResponse {
	return TrackDetailResponse{
		TrackResponse: NewTrackResponse(t),
		AudioFile:     t.AudioFile,
		CoverArt:      t.CoverArt,
		AdminNotes:    t.AdminNotes,
	}
}

func NewTrackResponseList(tracks []*store.TrackDetail) []TrackResponse {
	out := make([]TrackResponse, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, NewTrackResponse(t))
	}
	return out
}

func NewTrackDetailResponseList(tracks []*store.TrackDetail) []TrackDetailResponse {
	out := make([]TrackDetailResponse, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, NewTrackDetailResponse(t))
	}
	return out
}
