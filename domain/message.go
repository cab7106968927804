package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a message observed on the chat platform.
// Content lives only as long as the scoring call; it is never persisted.
type ChatMessage struct {
	ID        uuid.UUID
	Guild     string
	Channel   string
	Author    string
	IsBot     bool
	Content   string
	CreatedAt time.Time
}

func (m ChatMessage) Scope() Scope {
	return Scope{Guild: m.Guild, Channel: m.Channel}
}
