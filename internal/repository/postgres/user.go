package postgres

import (
	"database/sql"
	"fmt"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates the user and links the default word set in a
// single transaction. Idempotent: an existing user is left untouched.
func (r *UserRepo) EnsureUserExists(userID int64) error {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`
	if err := r.db.QueryRow(query, userID).Scan(&exists); err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertUser := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := tx.Exec(insertUser, userID); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	seedLinks := `
		INSERT INTO user_words (user_id, word_id)
		SELECT $1, id
		FROM words
		WHERE is_custom = FALSE
		ON CONFLICT (user_id, word_id) DO NOTHING
	`
	if _, err := tx.Exec(seedLinks, userID); err != nil {
		return fmt.Errorf("seed default links: %w", err)
	}

	return tx.Commit()
}
