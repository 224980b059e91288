package repository

import (
	"errors"

	"wordtrainer/internal/domain"
)

// ErrWordNotFound is returned when a word lookup misses
var ErrWordNotFound = errors.New("word not found")

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUserExists(userID int64) error
}

// WordRepository defines catalog and visibility-link operations
type WordRepository interface {
	UpsertWord(english, russian string, isCustom bool) (int, error)
	GetWordByID(id int) (*domain.Word, error)
	GetVisibleWords(userID int64) ([]domain.Word, error)
	HasVisibleWord(userID int64, wordID int) (bool, error)
	AddWord(userID int64, english, russian string) error
	DeleteWord(userID int64, wordID int) error
	SeedDefaults(pairs []domain.WordPair) error
}

// StateRepository defines session state operations
type StateRepository interface {
	GetState(userID int64) (*domain.SessionState, error)
	SetState(userID int64, wordID int) error
	ClearState(userID int64) error
}
