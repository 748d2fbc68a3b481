package auth

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("Expected hash, got plaintext")
	}

	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("Expected matching password to verify")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("Expected wrong password to fail")
	}
	if CheckPasswordHash("correct horse battery staple", "not-a-hash") {
		t.Error("Expected malformed hash to fail")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("Expected distinct salts to produce distinct hashes")
	}
}
