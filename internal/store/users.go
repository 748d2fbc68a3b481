package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tunevault/tunevault/internal/domain"
)

func (db *DB) CreateUser(user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `INSERT INTO users (
		email, display_name, bio, profile_picture, role,
		is_verified, is_active, password_hash, created_at, updated_at
	) VALUES (
		:email, :display_name, :bio, :profile_picture, :role,
		:is_verified, :is_active, :password_hash, :created_at, :updated_at
	) RETURNING id`

	rows, err := db.NamedQuery(query, user)
	if err != nil {
		if isUniqueViolation(err, "users.email") {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&user.ID); err != nil {
			return fmt.Errorf("failed to scan user id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) GetUserByID(id int64) (*domain.User, error) {
	var user domain.User
	err := db.Get(&user, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := db.Get(&user, `SELECT * FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserPartial applies an allow-listed partial update to a user row.
func (db *DB) UpdateUserPartial(id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedColumns := map[string]bool{
		"display_name":    true,
		"bio":             true,
		"profile_picture": true,
	}

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)

	for col, val := range updates {
		if !allowedColumns[col] {
			return fmt.Errorf("invalid column name: %s", col)
		}
		setClauses = append(setClauses, col+" = ?")
		args = append(args, val)
	}

	args = append(args, time.Now(), id)

	query := fmt.Sprintf("UPDATE users SET %s, updated_at = ? WHERE id = ?", strings.Join(setClauses, ", "))

	result, err := db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
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

func (db *DB) ListUsersByRole(role domain.Role) ([]*domain.User, error) {
	var users []*domain.User
	err := db.Select(&users, `SELECT * FROM users WHERE role = ? ORDER BY created_at DESC`, role)
	return users, err
}

func (db *DB) CountUsersByRole(role domain.Role) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM users WHERE role = ?`, role)
	return count, err
}
