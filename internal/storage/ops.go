// Package storage persists uploaded blobs on the local filesystem.
// Audio and cover art live under separate subdirectories of the
// configured uploads root; stored names are derived from the track ID,
// never from client-supplied filenames.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	audioDir = "audio"
	coverDir = "covers"

	dirPermissions  = 0o755
	filePermissions = 0o644
)

type Store struct {
	root string
}

func New(root string) (*Store, error) {
	for _, sub := range []string{audioDir, coverDir} {
		if err := os.MkdirAll(filepath.Join(root, sub), dirPermissions); err != nil {
			return nil, fmt.Errorf("failed to create uploads dir %s: %w", sub, err)
		}
	}
	return &Store{root: root}, nil
}

// SaveAudio writes an uploaded audio stream under the track's ID,
// keeping the original extension. Returns the path relative to the
// uploads root; that relative path is what gets persisted.
func (s *Store) SaveAudio(trackID, originalName string, r io.Reader) (string, error) {
	return s.save(audioDir, trackID, originalName, r)
}

// SaveCover writes an uploaded cover art stream under the track's ID.
func (s *Store) SaveCover(trackID, originalName string, r io.Reader) (string, error) {
	return s.save(coverDir, trackID, originalName, r)
}

// SaveCoverBytes persists cover art extracted from embedded audio tags.
func (s *Store) SaveCoverBytes(trackID, ext string, data []byte) (string, error) {
	rel := filepath.Join(coverDir, trackID+normalizeExt(ext))
	if err := os.WriteFile(filepath.Join(s.root, rel), data, filePermissions); err != nil {
		return "", fmt.Errorf("failed to write cover art: %w", err)
	}
	return rel, nil
}

func (s *Store) save(sub, trackID, originalName string, r io.Reader) (string, error) {
	rel := filepath.Join(sub, trackID+normalizeExt(filepath.Ext(originalName)))

	f, err := os.OpenFile(filepath.Join(s.root, rel), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return rel, nil
}

// Remove deletes a stored blob by its relative path. Missing files are
// not an error; the row is already gone or was never written.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// AbsPath resolves a stored relative path against the uploads root.
func (s *Store) AbsPath(rel string) string {
	return filepath.Join(s.root, rel)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ".bin"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	// strip anything weird a client could smuggle in an extension
	mapped := strings.Map(func(r rune) rune {
		if strings.ContainsRune("<>:\"/\\|?*", r) {
			return -1
		}
		return r
	}, ext)
	return mapped
}
