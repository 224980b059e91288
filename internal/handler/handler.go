package handler

import (
	"sync"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	wordService *service.WordService
	quizService *service.QuizService
	logger      *zap.Logger

	// Conversational modes for the add-word dialogue (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordService *service.WordService,
	quizService *service.QuizService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		wordService: wordService,
		quizService: quizService,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleStart)

	// All other interactions arrive as text (reply keyboard buttons included)
	h.bot.Handle(tele.OnText, h.handleText)
}

// GetState returns user's current conversational mode
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's conversational mode
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle mode, dropping any transient dialogue data
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}
