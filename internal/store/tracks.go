package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tunevault/tunevault/internal/domain"
)

// TrackDetail is a track row joined with its owning artist and optional
// genre, scanned in one query so listings avoid per-row lookups.
type TrackDetail struct {
	domain.Track
	ArtistEmail       string    `db:"artist_email"`
	ArtistDisplayName string    `db:"artist_display_name"`
	ArtistRole        string    `db:"artist_role"`
	ArtistVerified    bool      `db:"artist_is_verified"`
	ArtistCreatedAt   time.Time `db:"artist_created_at"`
	GenreName         *string   `db:"genre_name"`
	GenreDescription  *string   `db:"genre_description"`
}

const trackDetailSelect = `SELECT t.*,
	u.email AS artist_email,
	u.display_name AS artist_display_name,
	u.role AS artist_role,
	u.is_verified AS artist_is_verified,
	u.created_at AS artist_created_at,
	g.name AS genre_name,
	g.description AS genre_description
FROM tracks t
JOIN users u ON u.id = t.artist_id
LEFT JOIN genres g ON g.id = t.genre_id`

func (db *DB) CreateTrack(track *domain.Track) error {
	now := time.Now()
	track.CreatedAt = now
	track.UpdatedAt = now

	query := `INSERT INTO tracks (
		id, title, artist_id, genre_id, release_date, duration,
		audio_file, cover_art, lyrics, lyrics_status, isrc, status,
		play_count, admin_notes, created_at, updated_at
	) VALUES (
		:id, :title, :artist_id, :genre_id, :release_date, :duration,
		:audio_file, :cover_art, :lyrics, :lyrics_status, :isrc, :status,
		:play_count, :admin_notes, :created_at, :updated_at
	)`

	if _, err := db.NamedExec(query, track); err != nil {
		if isUniqueViolation(err, "tracks.isrc") {
			return ErrISRCTaken
		}
		return fmt.Errorf("failed to create track: %w", err)
	}
	return nil
}

func (db *DB) GetTrackByID(id string) (*TrackDetail, error) {
	var track TrackDetail
	err := db.Get(&track, trackDetailSelect+` WHERE t.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &track, nil
}

func (db *DB) ListTracksByArtist(artistID int64) ([]*TrackDetail, error) {
	query := trackDetailSelect + ` WHERE t.artist_id = ? ORDER BY t.created_at DESC`
	return selectTracks(db, query, artistID)
}

// ListAllTracks returns every track newest first, optionally filtered
// by status and/or genre name.
func (db *DB) ListAllTracks(status domain.TrackStatus, genreName string) ([]*TrackDetail, error) {
	query := trackDetailSelect
	var conds []string
	var args []interface{}

	if status != "" {
		conds = append(conds, "t.status = ?")
		args = append(args, status)
	}
	if genreName != "" {
		conds = append(conds, "g.name = ?")
		args = append(args, genreName)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.created_at DESC"

	return selectTracks(db, query, args...)
}

// UpdateTrackPartial applies an allow-listed partial update to a track
// row. Only owner-editable columns are accepted here; moderation fields
// go through UpdateTrackModeration.
func (db *DB) UpdateTrackPartial(id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedColumns := map[string]bool{
		"title":        true,
		"genre_id":     true,
		"release_date": true,
		"lyrics":       true,
		"cover_art":    true,
	}

	return db.updateTrack(id, updates, allowedColumns)
}

// UpdateTrackModeration applies the administrator-only fields: status,
// lyrics_status, isrc and admin_notes.
func (db *DB) UpdateTrackModeration(id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedColumns := map[string]bool{
		"status":        true,
		"lyrics_status": true,
		"isrc":          true,
		"admin_notes":   true,
	}

	return db.updateTrack(id, updates, allowedColumns)
}

func (db *DB) updateTrack(id string, updates map[string]interface{}, allowedColumns map[string]bool) error {
	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)

	for col, val := range updates {
		if !allowedColumns[col] {
			return fmt.Errorf("invalid column name: %s", col)
		}
		setClauses = append(setClauses, col+" = ?")
		args = append(args, val)
	}

	args = append(args, time.Now(), id)

	query := fmt.Sprintf("UPDATE tracks SET %s, updated_at = ? WHERE id = ?", strings.Join(setClauses, ", "))

	result, err := db.Exec(query, args...)
	if err != nil {
		if isUniqueViolation(err, "tracks.isrc") {
			return ErrISRCTaken
		}
		return fmt.Errorf("failed to update track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTrack removes a track; play history and notifications that
// reference it go with it via FK cascade.
func (db *DB) DeleteTrack(id string) error {
	result, err := db.Exec(`DELETE FROM tracks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func selectTracks(q sqlx.Queryer, query string, args ...interface{}) ([]*TrackDetail, error) {
	var tracks []*TrackDetail
	err := sqlx.Select(q, &tracks, query, args...)
	return tracks, err
}
