package mapper

import (
	"time"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"
)

type ChatSessionMapper struct{}

func NewChatSessionMapper() *ChatSessionMapper {
	return &ChatSessionMapper{}
}

func (m *ChatSessionMapper) ToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ChatSessionMapper) ToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:            c.Id,
		ChatSessionId: c.ChatSessionId,
		Role:          c.Role,
		Chat:          c.Chat,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:            c.Id,
		ChatSessionId: c.ChatSessionId,
		Role:          c.Role,
		Chat:          c.Chat,
		CreatedAt:     c.CreatedAt,
	}
}

type ChatMessageRawMapper struct{}

func NewChatMessageRawMapper() *ChatMessageRawMapper {
	return &ChatMessageRawMapper{}
}

func (m *ChatMessageRawMapper) ToEntity(c *model.ChatMessageRaw) *entity.ChatMessageRaw {
	if c == nil {
		return nil
	}
	return &entity.ChatMessageRaw{
		Id:            c.Id,
		ChatSessionId: c.ChatSessionId,
		Role:          c.Role,
		Chat:          c.Chat,
		ToolCalls:     c.ToolCalls,
		ToolCallId:    c.ToolCallId,
		ToolName:      c.ToolName,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *ChatMessageRawMapper) ToModel(c *entity.ChatMessageRaw) *model.ChatMessageRaw {
	if c == nil {
		return nil
	}
	return &model.ChatMessageRaw{
		Id:            c.Id,
		ChatSessionId: c.ChatSessionId,
		Role:          c.Role,
		Chat:          c.Chat,
		ToolCalls:     c.ToolCalls,
		ToolCallId:    c.ToolCallId,
		ToolName:      c.ToolName,
		CreatedAt:     c.CreatedAt,
	}
}
