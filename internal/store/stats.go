package store

import (
	"fmt"

	"github.com/tunevault/tunevault/internal/domain"
)

// AdminStats is the point-in-time aggregate for the admin dashboard.
// Always recomputed from persisted state; nothing is cached.
type AdminStats struct {
	TotalTracks    int `db:"total_tracks" json:"total_tracks"`
	PendingTracks  int `db:"pending_tracks" json:"pending_tracks"`
	ApprovedTracks int `db:"approved_tracks" json:"approved_tracks"`
	RejectedTracks int `db:"rejected_tracks" json:"rejected_tracks"`
	TotalArtists   int `db:"-" json:"total_artists"`
	TotalListeners int `db:"-" json:"total_listeners"`
}

func (db *DB) GetAdminStats() (*AdminStats, error) {
	var stats AdminStats

	query := `SELECT
		COUNT(*) AS total_tracks,
		SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END) AS pending_tracks,
		SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END) AS approved_tracks,
		SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END) AS rejected_tracks
	FROM tracks`

	row := db.QueryRow(query)
	var pending, approved, rejected *int
	if err := row.Scan(&stats.TotalTracks, &pending, &approved, &rejected); err != nil {
		return nil, fmt.Errorf("failed to aggregate track stats: %w", err)
	}
	// SUM over zero rows is NULL
	if pending != nil {
		stats.PendingTracks = *pending
	}
	if approved != nil {
		stats.ApprovedTracks = *approved
	}
	if rejected != nil {
		stats.RejectedTracks = *rejected
	}

	artists, err := db.CountUsersByRole(domain.RoleArtist)
	if err != nil {
		return nil, fmt.Errorf("failed to count artists: %w", err)
	}
	listeners, err := db.CountUsersByRole(domain.RoleListener)
	if err != nil {
		return nil, fmt.Errorf("failed to count listeners: %w", err)
	}
	stats.TotalArtists = artists
	stats.TotalListeners = listeners

	return &stats, nil
}
