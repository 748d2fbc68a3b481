package dto

import (
	"github.com/tunevault/tunevault/internal/store"
)

type StatsResponse struct {
	TotalTracks    int `json:"total_tracks"`
	PendingTracks  int `json:"pending_tracks"`
	ApprovedTracks int `json:"approved_tracks"`
	RejectedTracks int `json:"rejected_tracks"`
	TotalArtists   int `json:"total_artists"`
	TotalListeners int `json:"total_listeners"`
}

func NewStatsResponse(s *store.AdminStats) StatsResponse {
	return StatsResponse{
		TotalTracks:    s.TotalTracks,
		PendingTracks:  s.PendingTracks,
		ApprovedTracks: s.ApprovedTracks,
		RejectedTracks: s.RejectedTracks,
		TotalArtists:   s.TotalArtists,
		TotalListeners: s.TotalListeners,
	}
}
