package event

import (
	"time"

	"toxicity-coach/domain"

	"github.com/google/uuid"
)

type Type string

const (
	DomainType    Type = "DOMAIN"
	TechnicalType Type = "TECHNICAL"
)

// Event is the envelope flowing through the runtime channels.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

// MessagePosted is emitted for every message read from the chat stream.
type MessagePosted struct {
	Message domain.ChatMessage
}

// MessageFlagged is emitted when a message crossed at least one threshold.
// It carries everything needed to render the private heads-up to the author.
type MessageFlagged struct {
	MessageID   uuid.UUID
	Scope       domain.Scope
	Author      string
	Scores      domain.LabelScores
	Explanation string
	Preview     string
	Lang        string
	At          time.Time
}
