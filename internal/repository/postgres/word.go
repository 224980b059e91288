package postgres

import (
	"database/sql"
	"fmt"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// UpsertWord inserts a word or, when the English term already exists,
// refreshes its translation. The custom flag is never changed on conflict,
// so re-adding a default word does not make it deletable.
func (r *WordRepo) UpsertWord(english, russian string, isCustom bool) (int, error) {
	var id int
	query := `
		INSERT INTO words (english, russian, is_custom)
		VALUES ($1, $2, $3)
		ON CONFLICT (english) DO UPDATE
		SET russian = EXCLUDED.russian
		RETURNING id
	`
	err := r.db.QueryRow(query, english, russian, isCustom).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetWordByID returns a word by its catalog id
func (r *WordRepo) GetWordByID(id int) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT id, english, russian, is_custom
		FROM words
		WHERE id = $1
	`
	err := r.db.QueryRow(query, id).Scan(&w.ID, &w.English, &w.Russian, &w.IsCustom)

	if err == sql.ErrNoRows {
		return nil, repository.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// GetVisibleWords returns all words the user holds a non-deleted link to
func (r *WordRepo) GetVisibleWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT w.id, w.english, w.russian, w.is_custom
		FROM words w
		JOIN user_words uw ON w.id = uw.word_id
		WHERE uw.user_id = $1 AND uw.is_deleted = FALSE
		ORDER BY w.id
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.English, &w.Russian, &w.IsCustom); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// HasVisibleWord reports whether the user holds a non-deleted link to the word
func (r *WordRepo) HasVisibleWord(userID int64, wordID int) (bool, error) {
	var visible bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_words
			WHERE user_id = $1 AND word_id = $2 AND is_deleted = FALSE
		)
	`
	err := r.db.QueryRow(query, userID, wordID).Scan(&visible)
	return visible, err
}

// AddWord upserts the word as custom and the user's visibility link in one
// transaction. A previously deleted link is flipped back to visible.
func (r *WordRepo) AddWord(userID int64, english, russian string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var wordID int
	upsertWord := `
		INSERT INTO words (english, russian, is_custom)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (english) DO UPDATE
		SET russian = EXCLUDED.russian
		RETURNING id
	`
	if err := tx.QueryRow(upsertWord, english, russian).Scan(&wordID); err != nil {
		return fmt.Errorf("upsert word: %w", err)
	}

	upsertLink := `
		INSERT INTO user_words (user_id, word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, word_id)
		DO UPDATE SET is_deleted = FALSE
	`
	if _, err := tx.Exec(upsertLink, userID, wordID); err != nil {
		return fmt.Errorf("upsert link: %w", err)
	}

	return tx.Commit()
}

// DeleteWord soft-deletes the user's link to a word. The shared catalog row
// and other users' links are untouched.
func (r *WordRepo) DeleteWord(userID int64, wordID int) error {
	query := `
		UPDATE user_words
		SET is_deleted = TRUE
		WHERE user_id = $1 AND word_id = $2
	`
	_, err := r.db.Exec(query, userID, wordID)
	return err
}

// SeedDefaults upserts the default catalog in one transaction
func (r *WordRepo) SeedDefaults(pairs []domain.WordPair) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO words (english, russian, is_custom)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (english) DO UPDATE
		SET russian = EXCLUDED.russian
	`
	for _, p := range pairs {
		if _, err := tx.Exec(query, p.English, p.Russian); err != nil {
			return fmt.Errorf("seed word %q: %w", p.English, err)
		}
	}

	return tx.Commit()
}
