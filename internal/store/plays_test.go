package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/tunevault/tunevault/internal/domain"
)

func TestDB_RecordPlay(t *testing.T) {
	db := setupTestDB(t)

	artist := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	listener := createTestUser(t, db, "listener@example.com", domain.RoleListener)
	track := createTestTrack(t, db, artist.ID)

	ip := "10.0.0.1"
	play := &domain.PlayHistory{
		TrackID:    track.ID,
		ListenerID: &listener.ID,
		IPAddress:  &ip,
		UserAgent:  "test-agent",
	}
	if err := db.RecordPlay(play); err != nil {
		t.Fatalf("RecordPlay failed: %v", err)
	}
	if play.ID == 0 {
		t.Error("Expected play ID to be assigned")
	}

	fetched, _ := db.GetTrackByID(track.ID)
	if fetched.PlayCount != 1 {
		t.Errorf("Expected play count 1, got %d", fetched.PlayCount)
	}

	plays, err := db.ListPlaysByTrack(track.ID)
	if err != nil {
		t.Fatalf("ListPlaysByTrack failed: %v", err)
	}
	if len(plays) != 1 {
		t.Fatalf("Expected 1 play row, got %d", len(plays))
	}
	if plays[0].ListenerID == nil || *plays[0].ListenerID != listener.ID {
		t.Errorf("Expected listener %d on play row", listener.ID)
	}
	if plays[0].UserAgent != "test-agent" {
		t.Errorf("Expected user agent test-agent, got %s", plays[0].UserAgent)
	}

	// Anonymous play: no listener reference
	if err := db.RecordPlay(&domain.PlayHistory{TrackID: track.ID}); err != nil {
		t.Fatalf("Anonymous RecordPlay failed: %v", err)
	}
	fetched, _ = db.GetTrackByID(track.ID)
	if fetched.PlayCount != 2 {
		t.Errorf("Expected play count 2, got %d", fetched.PlayCount)
	}
}

func TestDB_RecordPlay_MissingTrack(t *testing.T) {
	db := setupTestDB(t)

	err := db.RecordPlay(&domain.PlayHistory{TrackID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	count, _ := db.CountPlaysByTrack("missing")
	if count != 0 {
		t.Errorf("Expected no orphan play rows, got %d", count)
	}
}

func TestDB_RecordPlay_Concurrent(t *testing.T) {
	db := setupTestDB(t)

	artist := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	track := createTestTrack(t, db, artist.ID)

	const plays = 20
	var wg sync.WaitGroup
	errCh := make(chan error, plays)
	for i := 0; i < plays; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- db.RecordPlay(&domain.PlayHistory{TrackID: track.ID})
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("Concurrent RecordPlay failed: %v", err)
		}
	}

	fetched, _ := db.GetTrackByID(track.ID)
	if fetched.PlayCount != plays {
		t.Errorf("Expected play count %d, got %d", plays, fetched.PlayCount)
	}
	count, _ := db.CountPlaysByTrack(track.ID)
	if count != plays {
		t.Errorf("Expected %d history rows, got %d", plays, count)
	}
}
