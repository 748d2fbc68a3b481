package store

import (
	"testing"

	"github.com/tunevault/tunevault/internal/domain"
)

func TestDB_GetAdminStats_Empty(t *testing.T) {
	db := setupTestDB(t)

	stats, err := db.GetAdminStats()
	if err != nil {
		t.Fatalf("GetAdminStats failed: %v", err)
	}
	if stats.TotalTracks != 0 || stats.PendingTracks != 0 || stats.TotalArtists != 0 {
		t.Errorf("Expected zero stats on empty db, got %+v", stats)
	}
}

func TestDB_GetAdminStats(t *testing.T) {
	db := setupTestDB(t)

	artist := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	createTestUser(t, db, "l1@example.com", domain.RoleListener)
	createTestUser(t, db, "l2@example.com", domain.RoleListener)
	createTestUser(t, db, "admin@example.com", domain.RoleAdmin)

	t1 := createTestTrack(t, db, artist.ID)
	createTestTrack(t, db, artist.ID)
	t3 := createTestTrack(t, db, artist.ID)

	if err := db.UpdateTrackModeration(t1.ID, map[string]interface{}{"status": "approved"}); err != nil {
		t.Fatalf("UpdateTrackModeration failed: %v", err)
	}
	if err := db.UpdateTrackModeration(t3.ID, map[string]interface{}{"status": "rejected"}); err != nil {
		t.Fatalf("UpdateTrackModeration failed: %v", err)
	}

	stats, err := db.GetAdminStats()
	if err != nil {
		t.Fatalf("GetAdminStats failed: %v", err)
	}
	if stats.TotalTracks != 3 {
		t.Errorf("Expected 3 total tracks, got %d", stats.TotalTracks)
	}
	if stats.PendingTracks != 1 {
		t.Errorf("Expected 1 pending track, got %d", stats.PendingTracks)
	}
	if stats.ApprovedTracks != 1 {
		t.Errorf("Expected 1 approved track, got %d", stats.ApprovedTracks)
	}
	if stats.RejectedTracks != 1 {
		t.Errorf("Expected 1 rejected track, got %d", stats.RejectedTracks)
	}
	if stats.TotalArtists != 1 {
		t.Errorf("Expected 1 artist, got %d", stats.TotalArtists)
	}
	if stats.TotalListeners != 2 {
		t.Errorf("Expected 2 listeners, got %d", stats.TotalListeners)
	}
}
