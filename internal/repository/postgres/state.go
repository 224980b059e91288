package postgres

import (
	"database/sql"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// StateRepo implements repository.StateRepository
type StateRepo struct {
	db *sql.DB
}

// NewStateRepo creates a new session state repository
func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// GetState returns the user's session state, nil when none exists
func (r *StateRepo) GetState(userID int64) (*domain.SessionState, error) {
	var s domain.SessionState
	var wordID sql.NullInt64
	query := `
		SELECT user_id, current_word_id, last_interaction
		FROM user_states
		WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(&s.UserID, &wordID, &s.LastInteraction)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if wordID.Valid {
		s.CurrentWordID = int(wordID.Int64)
	}

	return &s, nil
}

// SetState upserts the user's current word, refreshing last_interaction.
// The word must exist.
func (r *StateRepo) SetState(userID int64, wordID int) error {
	var exists bool
	check := `SELECT EXISTS (SELECT 1 FROM words WHERE id = $1)`
	if err := r.db.QueryRow(check, wordID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return repository.ErrWordNotFound
	}

	query := `
		INSERT INTO user_states (user_id, current_word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET current_word_id = EXCLUDED.current_word_id,
		    last_interaction = NOW()
	`
	_, err := r.db.Exec(query, userID, wordID)
	return err
}

// ClearState removes the user's session state, no-op when absent
func (r *StateRepo) ClearState(userID int64) error {
	query := `
		DELETE FROM user_states
		WHERE user_id = $1
	`
	_, err := r.db.Exec(query, userID)
	return err
}
