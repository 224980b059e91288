package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// maxTermLen matches the words table column limit
const maxTermLen = 50

// WordService handles catalog and visibility business logic
type WordService struct {
	wordRepo repository.WordRepository
	userRepo repository.UserRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, userRepo repository.UserRepository) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		userRepo: userRepo,
	}
}

// VisibleWords returns the user's practice set. The user is registered
// first, so a brand-new user always gets the default set.
func (s *WordService) VisibleWords(userID int64) ([]domain.Word, error) {
	if err := s.userRepo.EnsureUserExists(userID); err != nil {
		return nil, err
	}
	return s.wordRepo.GetVisibleWords(userID)
}

// AddWord validates and stores a word-translation pair for the user.
// Re-adding a word the user previously deleted makes it visible again.
func (s *WordService) AddWord(userID int64, english, russian string) error {
	english = strings.TrimSpace(english)
	russian = strings.TrimSpace(russian)

	if english == "" || russian == "" {
		return fmt.Errorf("word and translation cannot be empty")
	}
	if utf8.RuneCountInString(english) > maxTermLen || utf8.RuneCountInString(russian) > maxTermLen {
		return fmt.Errorf("word and translation must be at most %d characters", maxTermLen)
	}

	if err := s.userRepo.EnsureUserExists(userID); err != nil {
		return err
	}
	return s.wordRepo.AddWord(userID, english, russian)
}

// DeleteWord hides a word from the user's practice set by soft-deleting the
// visibility link. The custom-only policy is enforced by the quiz flow, not
// here, so the storage layer never silently filters a delete.
func (s *WordService) DeleteWord(userID int64, wordID int) error {
	return s.wordRepo.DeleteWord(userID, wordID)
}
