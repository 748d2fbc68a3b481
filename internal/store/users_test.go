package store

import (
	"errors"
	"testing"

	"github.com/tunevault/tunevault/internal/domain"
)

func TestDB_CreateAndGetUser(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "artist@example.com", domain.RoleArtist)
	if user.ID == 0 {
		t.Fatal("Expected user ID to be assigned")
	}

	fetched, err := db.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if fetched.Email != "artist@example.com" {
		t.Errorf("Expected email artist@example.com, got %s", fetched.Email)
	}
	if fetched.Role != domain.RoleArtist {
		t.Errorf("Expected role artist, got %s", fetched.Role)
	}

	byEmail, err := db.GetUserByEmail("artist@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("Expected ID %d, got %d", user.ID, byEmail.ID)
	}

	if _, err := db.GetUserByEmail("nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDB_CreateUser_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	createTestUser(t, db, "taken@example.com", domain.RoleListener)

	dup := &domain.User{
		Email:        "taken@example.com",
		Role:         domain.RoleArtist,
		IsActive:     true,
		PasswordHash: "y",
	}
	if err := db.CreateUser(dup); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestDB_UpdateUserPartial(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "bio@example.com", domain.RoleArtist)

	err := db.UpdateUserPartial(user.ID, map[string]interface{}{
		"display_name": "New Name",
		"bio":          "New bio",
	})
	if err != nil {
		t.Fatalf("UpdateUserPartial failed: %v", err)
	}

	fetched, _ := db.GetUserByID(user.ID)
	if fetched.DisplayName != "New Name" {
		t.Errorf("Expected display name New Name, got %s", fetched.DisplayName)
	}
	if fetched.Bio != "New bio" {
		t.Errorf("Expected bio New bio, got %s", fetched.Bio)
	}

	// Email and role are not updatable here
	if err := db.UpdateUserPartial(user.ID, map[string]interface{}{"email": "evil@example.com"}); err == nil {
		t.Error("Expected error for disallowed column")
	}
	if err := db.UpdateUserPartial(user.ID, map[string]interface{}{"role": "admin"}); err == nil {
		t.Error("Expected error for disallowed column")
	}

	if err := db.UpdateUserPartial(99999, map[string]interface{}{"bio": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDB_ListAndCountUsersByRole(t *testing.T) {
	db := setupTestDB(t)

	createTestUser(t, db, "a1@example.com", domain.RoleArtist)
	createTestUser(t, db, "a2@example.com", domain.RoleArtist)
	createTestUser(t, db, "l1@example.com", domain.RoleListener)

	artists, err := db.ListUsersByRole(domain.RoleArtist)
	if err != nil {
		t.Fatalf("ListUsersByRole failed: %v", err)
	}
	if len(artists) != 2 {
		t.Errorf("Expected 2 artists, got %d", len(artists))
	}

	count, err := db.CountUsersByRole(domain.RoleListener)
	if err != nil {
		t.Fatalf("CountUsersByRole failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 listener, got %d", count)
	}
}
