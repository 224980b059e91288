package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const welcomeText = "Привет 👋 Давай попрактикуемся в английском языке. " +
	"Тренировки можешь проходить в удобном для себя темпе.\n\n" +
	"У тебя есть возможность использовать тренажёр как конструктор:\n" +
	"- Добавить слово ➕\n" +
	"- Удалить слово 🔙\n\n" +
	"Ну что, начнём ⬇️"

// handleStart handles /start and /help commands
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Drop any card in play and any half-finished add-word dialogue
	h.ResetState(userID)
	if err := h.quizService.ClearSession(userID); err != nil {
		h.logger.Error("Failed to clear session", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	return c.Send(welcomeText, welcomeMarkup())
}
