package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ChatMessage is the user-visible transcript: user prompts and final
// assistant replies only.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Chat          string
	CreatedAt     time.Time
}

// ChatMessageRaw is the full provider transcript for a session, including
// assistant tool-call requests and tool-role results. It is what gets
// replayed to the model on the next turn.
type ChatMessageRaw struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Chat          string
	ToolCalls     *string // serialized provider tool-call list, assistant rows only
	ToolCallId    *string // tool rows only
	ToolName      *string // tool rows only
	CreatedAt     time.Time
}
