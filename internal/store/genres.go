package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tunevault/tunevault/internal/domain"
)

// GetOrCreateGenre resolves a genre by name, inserting it first if
// absent. Insert-then-lookup rather than check-then-insert: under
// concurrent uploads with the same new name the UNIQUE constraint on
// genres.name is the backstop, and the loser of the race falls through
// to the lookup instead of surfacing a hard failure.
func (db *DB) GetOrCreateGenre(name string) (*domain.Genre, error) {
	_, err := db.Exec(
		`INSERT INTO genres (name, created_at) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
		name, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert genre: %w", err)
	}

	var genre domain.Genre
	if err := db.Get(&genre, `SELECT * FROM genres WHERE name = ?`, name); err != nil {
		return nil, fmt.Errorf("failed to load genre %q: %w", name, err)
	}
	return &genre, nil
}

func (db *DB) GetGenreByID(id int64) (*domain.Genre, error) {
	var genre domain.Genre
	err := db.Get(&genre, `SELECT * FROM genres WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (db *DB) ListGenres() ([]*domain.Genre, error) {
	var genres []*domain.Genre
	err := db.Select(&genres, `SELECT * FROM genres ORDER BY name ASC`)
	return genres, err
}
