package store

import (
	"errors"
	"testing"

	"github.com/tunevault/tunevault/internal/domain"
)

func TestDB_CreateAndGetTrack(t *testing.T) {
	db := setupTestDB(t)

	artist := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	genre, err := db.GetOrCreateGenre("Rock")
	if err != nil {
		t.Fatalf("GetOrCreateGenre failed: %v", err)
	}

	track := createTestTrack(t, db, artist.ID)
	if err := db.UpdateTrackPartial(track.ID, map[string]interface{}{"genre_id": genre.ID}); err != nil {
		t.Fatalf("UpdateTrackPartial failed: %v", err)
	}

	fetched, err := db.GetTrackByID(track.ID)
	if err != nil {
		t.Fatalf("GetTrackByID failed: %v", err)
	}
	if fetched.Title != "Test Track" {
		t.Errorf("Expected title Test Track, got %s", fetched.Title)
	}
	if fetched.Status != domain.TrackStatusPending {
		t.Errorf("Expected status pending, got %s", fetched.Status)
	}
	if fetched.LyricsStatus != domain.LyricsStatusPending {
		t.Errorf("Expected lyrics status pending, got %s", fetched.LyricsStatus)
	}
	if fetched.ArtistEmail != "artist@example.com" {
		t.Errorf("Expected joined artist email, got %s", fetched.ArtistEmail)
	}
	if fetched.GenreName == nil || *fetched.GenreName != "Rock" {
		t.Errorf("Expected joined genre Rock, got %v", fetched.GenreName)
	}
	if fetched.PlayCount != 0 {
		t.Errorf("Expected play count 0, got %d", fetched.PlayCount)
	}

	if _, err := db.GetTrackByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDB_ListTracks(t *testing.T) {
	db := setupTestDB(t)

	a1 := createTestUser(t, db, "a1@example.com", domain.RoleArtist)
	a2 := createTestUser(t, db, "a2@example.com", domain.RoleArtist)

	t1 := createTestTrack(t, db, a1.ID)
	createTestTrack(t, db, a1.ID)
	createTestTrack(t, db, a2.ID)

	mine, err := db.ListTracksByArtist(a1.ID)
	if err != nil {
		t.Fatalf("ListTracksByArtist failed: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("Expected 2 tracks for artist, got %d", len(mine))
	}

	all, err := db.ListAllTracks("", "")
	if err != nil {
		t.Fatalf("ListAllTracks failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 tracks, got %d", len(all))
	}

	// Status filter
	if err := db.UpdateTrackModeration(t1.ID, map[string]interface{}{"status": "approved"}); err != nil {
		t.Fatalf("UpdateTrackModeration failed: %v", err)
	}
	approved, err := db.ListAllTracks(domain.TrackStatusApproved, "")
	if err != nil {
		t.Fatalf("ListAllTracks with status failed: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != t1.ID {
		t.Errorf("Expected only the approved track, got %d rows", len(approved))
	}

	// Genre filter
	genre, _ := db.GetOrCreateGenre("Jazz")
	if err := db.UpdateTrackPartial(t1.ID, map[string]interface{}{"genre_id": genre.ID}); err != nil {
		t.Fatalf("UpdateTrackPartial failed: %v", err)
	}
	jazz, err := db.ListAllTracks("", "Jazz")
	if err != nil {
		t.Fatalf("ListAllTracks with genre failed: %v", err)
	}
	if len(jazz) != 1 || jazz[0].ID != t1.ID {
		t.Errorf("Expected only the Jazz track, got %d rows", len(jazz))
	}
}

func TestDB_UpdateTrackModeration_ISRCUnique(t *testing.T) {
	db := setupTestDB(t)

	artist := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	t1 := createTestTrack(t, db, artist.ID)
	t2 := createTestTrack(t, db, artist.ID)

	isrc := "USRC12345678"
	if err := db.UpdateTrackModeration(t1.ID, map[string]interface{}{"isrc": isrc}); err != nil {
		t.Fatalf("First ISRC assignment failed: %v", err)
	}

	err := db.UpdateTrackModeration(t2.ID, map[string]interface{}{"isrc": isrc})
	if !errors.Is(err, ErrISRCTaken) {
		t.Fatalf("Expected ErrISRCTaken, got %v", err)
	}

	// Loser must be untouched, winner must keep the code
	second, _ := db.GetTrackByID(t2.ID)
	if second.ISRC != nil {
		t.Errorf("Expected second track ISRC to stay empty, got %v", *second.ISRC)
	}
	first, _ := db.GetTrackByID(t1.ID)
	if first.ISRC == nil || *first.ISRC != isrc {
		t.Errorf("Expected first track to keep ISRC %s", isrc)
	}
}

func TestDB_UpdateTrack_ColumnAllowLists(t *testing.T) {
	db := setupTestDB(t)

	artist := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	track := createTestTrack(t, db, artist.ID)

	// Moderation fields are not owner-editable
	if err := db.UpdateTrackPartial(track.ID, map[string]interface{}{"status": "approved"}); err == nil {
		t.Error("Expected error updating status through owner path")
	}
	if err := db.UpdateTrackPartial(track.ID, map[string]interface{}{"isrc": "USRC12345678"}); err == nil {
		t.Error("Expected error updating isrc through owner path")
	}
	// Content fields are not moderation-editable
	if err := db.UpdateTrackModeration(track.ID, map[string]interface{}{"title": "Hijacked"}); err == nil {
		t.Error("Expected error updating title through moderation path")
	}

	if err := db.UpdateTrackModeration("missing", map[string]interface{}{"status": "approved"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDB_LyricsStatusIndependent(t *testing.T) {
	db := setupTestDB(t)

	artist := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	track := createTestTrack(t, db, artist.ID)

	if err := db.UpdateTrackModeration(track.ID, map[string]interface{}{"lyrics_status": "approved"}); err != nil {
		t.Fatalf("UpdateTrackModeration failed: %v", err)
	}

	fetched, _ := db.GetTrackByID(track.ID)
	if fetched.LyricsStatus != domain.LyricsStatusApproved {
		t.Errorf("Expected lyrics status approved, got %s", fetched.LyricsStatus)
	}
	if fetched.Status != domain.TrackStatusPending {
		t.Errorf("Expected track status untouched, got %s", fetched.Status)
	}
}

func TestDB_DeleteTrack_Cascades(t *testing.T) {
	db := setupTestDB(t)

	artist := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	listener := createTestUser(t, db, "listener@example.com", domain.RoleListener)
	track := createTestTrack(t, db, artist.ID)

	if err := db.RecordPlay(&domain.PlayHistory{TrackID: track.ID, ListenerID: &listener.ID}); err != nil {
		t.Fatalf("RecordPlay failed: %v", err)
	}
	if err := db.CreateNotification(&domain.Notification{
		UserID:  artist.ID,
		Type:    domain.NotificationTrackProcessing,
		Title:   "Track Uploaded",
		Message: "msg",
		TrackID: &track.ID,
	}); err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}

	if err := db.DeleteTrack(track.ID); err != nil {
		t.Fatalf("DeleteTrack failed: %v", err)
	}

	if _, err := db.GetTrackByID(track.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected track gone, got %v", err)
	}
	plays, _ := db.CountPlaysByTrack(track.ID)
	if plays != 0 {
		t.Errorf("Expected play history cascade, got %d rows", plays)
	}
	notifications, _ := db.CountNotificationsByTrack(track.ID)
	if notifications != 0 {
		t.Errorf("Expected notification cascade, got %d rows", notifications)
	}

	if err := db.DeleteTrack(track.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}
