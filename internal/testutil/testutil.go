package testutil

import (
	"time"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int, english, russian string, isCustom bool) domain.Word {
	return domain.Word{
		ID:       id,
		English:  english,
		Russian:  russian,
		IsCustom: isCustom,
	}
}

// NewTestState creates a test session state
func NewTestState(userID int64, wordID int) *domain.SessionState {
	return &domain.SessionState{
		UserID:          userID,
		CurrentWordID:   wordID,
		LastInteraction: time.Now(),
	}
}
