package store

import (
	"fmt"
	"time"

	"github.com/tunevault/tunevault/internal/domain"
)

func (db *DB) CreateNotification(n *domain.Notification) error {
	n.CreatedAt = time.Now()

	result, err := db.Exec(
		`INSERT INTO notifications (user_id, notification_type, title, message, track_id, is_read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.UserID, n.Type, n.Title, n.Message, n.TrackID, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	if n.ID, err = result.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read notification id: %w", err)
	}
	return nil
}

func (db *DB) ListNotificationsByUser(userID int64) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := db.Select(&notifications,
		`SELECT * FROM notifications WHERE user_id = ? ORDER BY created_at DESC`, userID)
	return notifications, err
}

// MarkNotificationRead flips the read flag. Scoped to the owning user:
// somebody else's notification id behaves as not-found.
func (db *DB) MarkNotificationRead(id, userID int64) error {
	result, err := db.Exec(
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) CountNotificationsByTrack(trackID string) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM notifications WHERE track_id = ?`, trackID)
	return count, err
}
