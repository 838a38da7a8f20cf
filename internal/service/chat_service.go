package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/dto"
	"careerflow-be/internal/entity"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/internal/pkg/logger"
	"careerflow-be/internal/repository/specification"
	"careerflow-be/internal/repository/unitofwork"
	"careerflow-be/pkg/assistant"
	"careerflow-be/pkg/llm"

	"github.com/google/uuid"
)

// ProviderFactory builds an LLM provider from a user's saved configuration.
// Injected so tests can substitute a scripted provider.
type ProviderFactory func(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error)

type IChatService interface {
	Send(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	History(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error)
	Clear(ctx context.Context, userId uuid.UUID, sessionId *uuid.UUID) error
}

type chatService struct {
	uowFactory      unitofwork.RepositoryFactory
	dispatcher      *assistant.Dispatcher
	providerFactory ProviderFactory
	logger          logger.ILogger
	historyLimit    int
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	dispatcher *assistant.Dispatcher,
	providerFactory ProviderFactory,
	log logger.ILogger,
	historyLimit int,
) IChatService {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &chatService{
		uowFactory:      uowFactory,
		dispatcher:      dispatcher,
		providerFactory: providerFactory,
		logger:          log,
		historyLimit:    historyLimit,
	}
}

func (s *chatService) Send(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	config, err := uow.LLMConfigRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, apperror.PreconditionFailed("no LLM configuration saved")
	}

	provider, err := s.buildProvider(config)
	if err != nil {
		return nil, apperror.InvalidArgument("invalid LLM configuration: %v", err)
	}

	session, isNew, err := s.resolveSession(ctx, uow, userId, req)
	if err != nil {
		return nil, err
	}

	history, err := s.loadHistory(ctx, uow, session.Id)
	if err != nil {
		return nil, err
	}

	userLLMMessage := llm.Message{Role: constant.ChatMessageRoleUser, Content: req.Message}
	turnHistory := append(history, userLLMMessage)

	result, err := s.dispatcher.RunTurn(ctx, provider, userId, turnHistory)
	if err != nil {
		// Nothing is persisted yet, so a provider failure leaves no
		// half-written transcript: the user append is rolled back with it.
		s.logger.Error("chat", "provider turn failed", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
		return nil, err
	}

	// Persist the whole turn atomically.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if isNew {
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
	}

	if err := s.appendMessage(ctx, uow, session.Id, constant.ChatMessageRoleUser, req.Message, nil); err != nil {
		return nil, err
	}

	for _, msg := range result.NewMessages {
		if err := s.appendRaw(ctx, uow, session.Id, msg); err != nil {
			return nil, err
		}
	}
	if err := s.appendDisplay(ctx, uow, session.Id, constant.ChatMessageRoleAssistant, result.Reply); err != nil {
		return nil, err
	}

	sessionUpdated := time.Now()
	session.UpdatedAt = &sessionUpdated
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := &dto.SendChatResponse{
		SessionId: session.Id,
		Reply:     result.Reply,
		ToolsUsed: result.ToolsUsed,
	}
	if result.CapExceeded {
		s.logger.Warn("chat", "tool round cap exceeded", map[string]interface{}{
			"session_id": session.Id,
		})
	}
	return res, nil
}

func (s *chatService) buildProvider(config *entity.LLMConfig) (llm.LLMProvider, error) {
	apiKey := ""
	if config.APIKey != nil {
		apiKey = *config.APIKey
	}
	baseURL := ""
	if config.BaseURL != nil {
		baseURL = *config.BaseURL
	}
	return s.providerFactory(config.Provider, config.Model, baseURL, apiKey)
}

func (s *chatService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, req *dto.SendChatRequest) (*entity.ChatSession, bool, error) {
	if req.SessionId != uuid.Nil {
		session, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: req.SessionId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, false, err
		}
		if session == nil {
			return nil, false, apperror.NotFound("chat session not found")
		}
		return session, false, nil
	}

	title := req.Message
	if len(title) > 60 {
		title = title[:60]
	}
	title = strings.TrimSpace(title)

	return &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: time.Now(),
	}, true, nil
}

// loadHistory rebuilds the provider transcript for a session, system prompt
// first, oldest messages first.
func (s *chatService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) ([]llm.Message, error) {
	raws, err := uow.ChatMessageRawRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Pagination{Limit: s.historyLimit},
	)
	if err != nil {
		return nil, err
	}

	history := []llm.Message{{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.AssistantSystemPrompt,
	}}
	for _, raw := range raws {
		msg := llm.Message{
			Role:    raw.Role,
			Content: raw.Chat,
		}
		if raw.ToolCalls != nil {
			var calls []llm.ToolCall
			if err := json.Unmarshal([]byte(*raw.ToolCalls), &calls); err == nil {
				msg.ToolCalls = calls
			}
		}
		if raw.ToolCallId != nil {
			msg.ToolCallId = *raw.ToolCallId
		}
		if raw.ToolName != nil {
			msg.Name = *raw.ToolName
		}
		history = append(history, msg)
	}
	return history, nil
}

// appendMessage writes a turn row to both transcripts.
func (s *chatService) appendMessage(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, role, content string, toolCalls []llm.ToolCall) error {
	if err := s.appendDisplay(ctx, uow, sessionId, role, content); err != nil {
		return err
	}
	return s.appendRaw(ctx, uow, sessionId, llm.Message{Role: role, Content: content, ToolCalls: toolCalls})
}

func (s *chatService) appendDisplay(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, role, content string) error {
	return uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          role,
		Chat:          content,
		CreatedAt:     time.Now(),
	})
}

func (s *chatService) appendRaw(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, msg llm.Message) error {
	raw := &entity.ChatMessageRaw{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          msg.Role,
		Chat:          msg.Content,
		CreatedAt:     time.Now(),
	}
	if len(msg.ToolCalls) > 0 {
		serialized, err := json.Marshal(msg.ToolCalls)
		if err != nil {
			return err
		}
		calls := string(serialized)
		raw.ToolCalls = &calls
	}
	if msg.ToolCallId != "" {
		raw.ToolCallId = &msg.ToolCallId
	}
	if msg.Name != "" {
		raw.ToolName = &msg.Name
	}
	return uow.ChatMessageRawRepository().Create(ctx, raw)
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("chat session not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, &dto.ChatMessageResponse{
			Id:        m.Id,
			Role:      m.Role,
			Chat:      m.Chat,
			CreatedAt: m.CreatedAt,
		})
	}
	return res, nil
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		res = append(res, &dto.ChatSessionResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}
	return res, nil
}

func (s *chatService) Clear(ctx context.Context, userId uuid.UUID, sessionId *uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var sessions []*entity.ChatSession
	if sessionId != nil {
		session, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: *sessionId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return err
		}
		if session == nil {
			return apperror.NotFound("chat session not found")
		}
		sessions = []*entity.ChatSession{session}
	} else {
		all, err := uow.ChatSessionRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
		if err != nil {
			return err
		}
		sessions = all
	}

	if len(sessions) == 0 {
		return nil
	}

	sessionIds := make([]uuid.UUID, 0, len(sessions))
	for _, session := range sessions {
		sessionIds = append(sessionIds, session.Id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySessionIds(ctx, sessionIds); err != nil {
		return err
	}
	if err := uow.ChatMessageRawRepository().DeleteBySessionIds(ctx, sessionIds); err != nil {
		return err
	}
	for _, session := range sessions {
		if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
			return err
		}
	}

	return uow.Commit()
}
