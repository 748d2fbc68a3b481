package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tunevault/tunevault/internal/domain"
)

// RecordPlay inserts a play-history row and bumps the track's play
// count as one transaction. The increment is expressed as an atomic
// add in SQL, never read-modify-write, so concurrent plays on the same
// track cannot lose updates.
func (db *DB) RecordPlay(play *domain.PlayHistory) error {
	play.PlayedAt = time.Now()

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin play transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.Exec(
		`UPDATE tracks SET play_count = play_count + 1 WHERE id = ?`,
		play.TrackID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment play count: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	result, err := tx.Exec(
		`INSERT INTO play_history (track_id, listener_id, played_at, ip_address, user_agent)
		 VALUES (?, ?, ?, ?, ?)`,
		play.TrackID, play.ListenerID, play.PlayedAt, play.IPAddress, play.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert play history: %w", err)
	}
	if play.ID, err = result.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read play history id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit play transaction: %w", err)
	}
	return nil
}

func (db *DB) ListPlaysByTrack(trackID string) ([]*domain.PlayHistory, error) {
	var plays []*domain.PlayHistory
	err := db.Select(&plays,
		`SELECT * FROM play_history WHERE track_id = ? ORDER BY played_at DESC`, trackID)
	return plays, err
}

func (db *DB) CountPlaysByTrack(trackID string) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM play_history WHERE track_id = ?`, trackID)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return count, err
}
