package middleware

import (
	"wordtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// EnsureUser registers the sender lazily on every update, so a brand-new
// user is seeded with the default word set before any handler runs.
func EnsureUser(userService *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := userService.EnsureUserExists(sender.ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Error(err),
					zap.Int64("user_id", sender.ID),
				)
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			return next(c)
		}
	}
}
