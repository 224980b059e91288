package handler

import (
	"fmt"
	"strings"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages: control buttons first, then the
// add-word dialogue by conversational mode, then quiz answers.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch text {
	case btnStartLearning:
		h.ResetState(userID)
		if err := h.quizService.ClearSession(userID); err != nil {
			h.logger.Error("Failed to clear session", zap.Error(err), zap.Int64("user_id", userID))
			return c.Send("Произошла ошибка. Попробуйте позже.")
		}
		return h.sendNextCard(c)

	case btnNextCard:
		h.ResetState(userID)
		return h.sendNextCard(c)

	case btnAddWord:
		return h.handleAddWordStart(c)

	case btnDeleteWord:
		return h.handleDeleteWord(c)
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingWord:
		// First dialogue step done, stash the word and ask for the translation
		h.SetState(userID, &domain.StateData{
			State:          domain.StateWaitingTranslation,
			PendingEnglish: text,
		})
		return c.Send("Теперь введите перевод:")

	case domain.StateWaitingTranslation:
		return h.handleTranslationReceived(c, state.PendingEnglish, text)

	default:
		return h.handleAnswer(c, text)
	}
}

// handleAddWordStart opens the two-step add-word dialogue
func (h *Handler) handleAddWordStart(c tele.Context) error {
	userID := c.Sender().ID

	// The card in play is abandoned once the dialogue starts
	if err := h.quizService.ClearSession(userID); err != nil {
		h.logger.Error("Failed to clear session", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
	return c.Send("Введите английское слово:")
}

// handleTranslationReceived finishes the add-word dialogue. On blank input
// the dialogue stays open so the user can retry the translation.
func (h *Handler) handleTranslationReceived(c tele.Context, english, russian string) error {
	userID := c.Sender().ID

	english = strings.TrimSpace(english)
	russian = strings.TrimSpace(russian)

	if english == "" || russian == "" {
		return c.Send("Ошибка: не указано слово или перевод")
	}

	if err := h.wordService.AddWord(userID, english, russian); err != nil {
		h.logger.Error("Failed to add word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("english", english),
		)
		return c.Send("Не удалось добавить слово. Попробуйте позже.")
	}

	h.logger.Info("Word added",
		zap.Int64("user_id", userID),
		zap.String("english", english),
		zap.String("russian", russian),
	)

	h.ResetState(userID)

	if err := c.Send(fmt.Sprintf("Слово '%s' добавлено!", english)); err != nil {
		return err
	}

	return h.sendNextCard(c)
}
