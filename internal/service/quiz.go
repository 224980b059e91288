package service

import (
	"errors"
	"math/rand"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"

	"go.uber.org/zap"
)

const maxDistractors = 3

// ErrNoActiveWord is returned when the user has no card in play
var ErrNoActiveWord = errors.New("no active word")

// ErrDefaultWord is returned when a user tries to delete a non-custom word
var ErrDefaultWord = errors.New("default words cannot be deleted")

// Card is a quiz prompt: the target word plus a shuffled multiple-choice
// set of at most 4 English terms, target included.
type Card struct {
	Target  domain.Word
	Options []string
}

// AnswerResult is the verdict on a submitted answer
type AnswerResult struct {
	Correct bool
	Word    domain.Word
}

// QuizService drives the flashcard flow: drawing cards, judging answers
// and deleting the word in play.
type QuizService struct {
	words     *WordService
	wordRepo  repository.WordRepository
	stateRepo repository.StateRepository
	logger    *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(
	words *WordService,
	wordRepo repository.WordRepository,
	stateRepo repository.StateRepository,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		words:     words,
		wordRepo:  wordRepo,
		stateRepo: stateRepo,
		logger:    logger,
	}
}

// NextCard draws a random card from the user's visible words and records it
// as the word in play. Returns nil when the user has no words.
func (s *QuizService) NextCard(userID int64) (*Card, error) {
	words, err := s.words.VisibleWords(userID)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}

	target := words[rand.Intn(len(words))]

	others := make([]domain.Word, 0, len(words)-1)
	for _, w := range words {
		if w.ID != target.ID {
			others = append(others, w)
		}
	}
	rand.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if len(others) > maxDistractors {
		others = others[:maxDistractors]
	}

	options := make([]string, 0, len(others)+1)
	options = append(options, target.English)
	for _, w := range others {
		options = append(options, w.English)
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	if err := s.stateRepo.SetState(userID, target.ID); err != nil {
		return nil, err
	}

	s.logger.Debug("Card drawn",
		zap.Int64("user_id", userID),
		zap.String("english", target.English),
		zap.Int("options", len(options)),
	)

	return &Card{Target: target, Options: options}, nil
}

// CheckAnswer judges the submitted text against the word in play by exact
// string match. Stale session state (word gone or no longer visible to the
// user) is treated as no active word.
func (s *QuizService) CheckAnswer(userID int64, answer string) (*AnswerResult, error) {
	state, err := s.stateRepo.GetState(userID)
	if err != nil {
		return nil, err
	}
	if state == nil || state.CurrentWordID == 0 {
		return nil, ErrNoActiveWord
	}

	visible, err := s.wordRepo.HasVisibleWord(userID, state.CurrentWordID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNoActiveWord
	}

	word, err := s.wordRepo.GetWordByID(state.CurrentWordID)
	if errors.Is(err, repository.ErrWordNotFound) {
		return nil, ErrNoActiveWord
	}
	if err != nil {
		return nil, err
	}

	return &AnswerResult{
		Correct: answer == word.English,
		Word:    *word,
	}, nil
}

// DeleteCurrentWord removes the word in play from the user's practice set.
// Only custom words may be deleted. The session state is cleared so the
// deleted word is no longer referenced.
func (s *QuizService) DeleteCurrentWord(userID int64) (*domain.Word, error) {
	state, err := s.stateRepo.GetState(userID)
	if err != nil {
		return nil, err
	}
	if state == nil || state.CurrentWordID == 0 {
		return nil, ErrNoActiveWord
	}

	word, err := s.wordRepo.GetWordByID(state.CurrentWordID)
	if err != nil {
		return nil, err
	}

	if !word.IsCustom {
		return nil, ErrDefaultWord
	}

	if err := s.words.DeleteWord(userID, word.ID); err != nil {
		return nil, err
	}

	if err := s.stateRepo.ClearState(userID); err != nil {
		s.logger.Warn("Failed to clear state after delete",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	s.logger.Info("Word deleted",
		zap.Int64("user_id", userID),
		zap.String("english", word.English),
	)

	return word, nil
}

// ClearSession drops the user's session state
func (s *QuizService) ClearSession(userID int64) error {
	return s.stateRepo.ClearState(userID)
}
