package store

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/tunevault/tunevault/internal/domain"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, email string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:        email,
		DisplayName:  "Test User",
		Role:         role,
		IsActive:     true,
		PasswordHash: "x",
	}
	if err := db.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func createTestTrack(t *testing.T, db *DB, artistID int64) *domain.Track {
	t.Helper()
	track := &domain.Track{
		ID:           uuid.New().String(),
		Title:        "Test Track",
		ArtistID:     artistID,
		ReleaseDate:  "2024-01-15",
		AudioFile:    "audio/test.mp3",
		LyricsStatus: domain.LyricsStatusPending,
		Status:       domain.TrackStatusPending,
	}
	if err := db.CreateTrack(track); err != nil {
		t.Fatalf("CreateTrack failed: %v", err)
	}
	return track
}
