package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_SaveAndRemove(t *testing.T) {
	root := t.TempDir()
	s, err := New(root)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	rel, err := s.SaveAudio("track-1", "My Song.MP3", strings.NewReader("audio-bytes"))
	if err != nil {
		t.Fatalf("SaveAudio failed: %v", err)
	}
	if rel != filepath.Join("audio", "track-1.mp3") {
		t.Errorf("Expected id-derived lowercase name, got %s", rel)
	}

	data, err := os.ReadFile(s.AbsPath(rel))
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != "audio-bytes" {
		t.Errorf("Expected file content audio-bytes, got %s", data)
	}

	if err := s.Remove(rel); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(s.AbsPath(rel)); !os.IsNotExist(err) {
		t.Error("Expected file to be removed")
	}

	// Removing again is not an error
	if err := s.Remove(rel); err != nil {
		t.Errorf("Expected idempotent remove, got %v", err)
	}
	if err := s.Remove(""); err != nil {
		t.Errorf("Expected empty path remove to be a no-op, got %v", err)
	}
}

func TestStore_SaveCoverBytes(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	rel, err := s.SaveCoverBytes("track-2", ".jpg", []byte{0xFF, 0xD8})
	if err != nil {
		t.Fatalf("SaveCoverBytes failed: %v", err)
	}
	if rel != filepath.Join("covers", "track-2.jpg") {
		t.Errorf("Unexpected cover path %s", rel)
	}
	if _, err := os.Stat(s.AbsPath(rel)); err != nil {
		t.Errorf("Expected cover file on disk: %v", err)
	}
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".mp3", ".mp3"},
		{".FLAC", ".flac"},
		{"png", ".png"},
		{"", ".bin"},
		{`.mp3"?*`, ".mp3"},
		{`.a/b\c`, ".abc"},
	}
	for _, tt := range tests {
		if got := normalizeExt(tt.in); got != tt.want {
			t.Errorf("normalizeExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
