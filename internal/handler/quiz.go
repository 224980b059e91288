package handler

import (
	"errors"
	"fmt"

	"wordtrainer/internal/repository"
	"wordtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// sendNextCard draws a card and presents the choice keyboard. A user with
// an empty practice set is prompted to add a word instead.
func (h *Handler) sendNextCard(c tele.Context) error {
	userID := c.Sender().ID

	card, err := h.quizService.NextCard(userID)
	if err != nil {
		h.logger.Error("Failed to draw card", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Нажмите 'Дальше ⏭' для продолжения", nextMarkup())
	}

	if card == nil {
		return c.Send(
			"У вас пока нет слов для изучения. Добавьте первое слово!",
			addWordMarkup(),
		)
	}

	wordType := "📚 Стандартное слово"
	if card.Target.IsCustom {
		wordType = "🆕 Ваше слово"
	}

	text := fmt.Sprintf("Выбери перевод слова:\n☐ %s\n<i>%s</i>", card.Target.Russian, wordType)

	return c.Send(text, cardMarkup(card.Options), tele.ModeHTML)
}

// handleAnswer judges free text against the word in play
func (h *Handler) handleAnswer(c tele.Context, answer string) error {
	userID := c.Sender().ID

	result, err := h.quizService.CheckAnswer(userID, answer)
	if errors.Is(err, service.ErrNoActiveWord) {
		return c.Send("Нажмите 'Дальше ⏭' для новой карточки", nextMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to check answer", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	var verdict string
	if result.Correct {
		verdict = fmt.Sprintf("%s ✅", answer)
	} else {
		verdict = fmt.Sprintf("%s ❌\nПравильно: %s", answer, result.Word.English)
	}

	if err := c.Send(verdict, nextMarkup()); err != nil {
		return err
	}

	return h.sendNextCard(c)
}

// handleDeleteWord removes the word in play from the user's practice set
func (h *Handler) handleDeleteWord(c tele.Context) error {
	userID := c.Sender().ID

	// Leaving the add-word dialogue, if one was open
	h.ResetState(userID)

	word, err := h.quizService.DeleteCurrentWord(userID)

	switch {
	case errors.Is(err, service.ErrNoActiveWord):
		if err := c.Send("Нет активного слова для удаления"); err != nil {
			return err
		}

	case errors.Is(err, repository.ErrWordNotFound):
		if err := c.Send("Ошибка: слово не найдено"); err != nil {
			return err
		}

	case errors.Is(err, service.ErrDefaultWord):
		msg := "⛔ Стандартные слова нельзя удалить!\n" +
			"Вы можете удалять только слова, которые добавили сами."
		if err := c.Send(msg); err != nil {
			return err
		}

	case err != nil:
		h.logger.Error("Failed to delete word", zap.Error(err), zap.Int64("user_id", userID))
		if err := c.Send("❌ Не удалось удалить слово. Попробуйте позже."); err != nil {
			return err
		}

	default:
		h.logger.Info("User deleted word",
			zap.Int64("user_id", userID),
			zap.String("english", word.English),
		)
		if err := c.Send("✅ Слово успешно удалено!"); err != nil {
			return err
		}
	}

	return h.sendNextCard(c)
}
