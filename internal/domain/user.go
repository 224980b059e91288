package domain

import "time"

// User represents a bot user
type User struct {
	UserID    int64
	FirstSeen time.Time
}

// SessionState is the persisted "what word is this user being quizzed on"
// record. CurrentWordID is 0 when no card is active.
type SessionState struct {
	UserID          int64
	CurrentWordID   int
	LastInteraction time.Time
}

// UserState represents user's current conversational mode
type UserState string

const (
	StateIdle               UserState = "idle"
	StateWaitingWord        UserState = "waiting_word"
	StateWaitingTranslation UserState = "waiting_translation"
)

// StateData holds temporary data for user's current mode.
// PendingEnglish carries the English text between the two
// add-word dialogue steps.
type StateData struct {
	State          UserState
	PendingEnglish string
}
