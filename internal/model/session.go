package model

import "time"

// SessionMessage is one exchange inside a conversation session.
type SessionMessage struct {
	Text        string    `json:"text"`
	Translation string    `json:"translation"`
	Sender      string    `json:"sender"` // "a" or "b", the participant tag
	Timestamp   time.Time `json:"timestamp"`
}

// ConversationSession is a completed two-party conversation, persisted
// once at session end.
type ConversationSession struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId,omitempty"`
	LanguageA       string           `json:"languageA"`
	LanguageB       string           `json:"languageB"`
	Messages        []SessionMessage `json:"messages"`
	DurationSeconds int              `json:"durationSeconds"`
	CreatedAt       time.Time        `json:"createdAt"`
}
