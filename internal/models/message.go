package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one message of a scout conversation.
type ChatMessage struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	FromCurrentUser bool      `json:"isFromCurrentUser"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewChatMessage(text string, fromCurrentUser bool, at time.Time) ChatMessage {
	return ChatMessage{
		ID:              uuid.NewString(),
		Text:            text,
		FromCurrentUser: fromCurrentUser,
		Timestamp:       at,
	}
}
