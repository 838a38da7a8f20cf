package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/dto"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/internal/repository/specification"
	"careerflow-be/internal/repository/unitofwork"
	"careerflow-be/pkg/assistant"
	"careerflow-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays a fixed sequence of completions. Once the script
// is exhausted the last turn repeats, which lets loop tests run forever.
type scriptedProvider struct {
	turns []*llm.Completion
	err   error
	calls int
}

func (p *scriptedProvider) ChatWithTools(ctx context.Context, history []llm.Message, tools []llm.ToolDefinition, options ...llm.Option) (*llm.Completion, error) {
	if p.err != nil {
		return nil, p.err
	}
	idx := p.calls
	if idx >= len(p.turns) {
		idx = len(p.turns) - 1
	}
	p.calls++
	return p.turns[idx], nil
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	completion, err := p.ChatWithTools(ctx, history, nil, options...)
	if err != nil {
		return "", err
	}
	return completion.Content, nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}})
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newChatFixture(t *testing.T, provider llm.LLMProvider) (unitofwork.RepositoryFactory, IChatService, uuid.UUID) {
	t.Helper()
	factory := newTestFactory(t)
	userId := uuid.New()

	_, err := NewLLMConfigService(factory).Save(context.Background(), userId, &dto.SaveLLMConfigRequest{
		Provider: constant.LLMProviderOllama,
		Model:    "llama3",
	})
	require.NoError(t, err)

	dispatcher := assistant.NewDispatcher(assistant.NewExecutor(factory), 3)
	chatService := NewChatService(
		factory,
		dispatcher,
		func(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
			return provider, nil
		},
		nopLogger{},
		50,
	)
	return factory, chatService, userId
}

func TestChatSendPlainReply(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{turns: []*llm.Completion{{Content: "Hello! How is the search going?"}}}
	_, chatService, userId := newChatFixture(t, provider)

	res, err := chatService.Send(ctx, userId, &dto.SendChatRequest{Message: "hi there"})
	require.NoError(t, err)
	assert.Equal(t, "Hello! How is the search going?", res.Reply)
	assert.NotEqual(t, uuid.Nil, res.SessionId)
	assert.Empty(t, res.ToolsUsed)

	sessions, err := chatService.ListSessions(ctx, userId)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "hi there", sessions[0].Title)

	history, err := chatService.History(ctx, userId, res.SessionId)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, history[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, history[1].Role)
}

func TestChatSendToolRound(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	userId := uuid.New()

	jobService := NewJobService(factory, nopPublisher{})
	created, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title:   "Backend Engineer",
		Company: "Acme",
	})
	require.NoError(t, err)

	provider := &scriptedProvider{turns: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{{
			Id:        "call_0",
			Name:      assistant.ToolUpdateJobStatus,
			Arguments: fmt.Sprintf(`{"job_id":%q,"new_status":"interview"}`, created.Id),
		}}},
		{Content: "Moved it to interview."},
	}}

	_, err = NewLLMConfigService(factory).Save(ctx, userId, &dto.SaveLLMConfigRequest{
		Provider: constant.LLMProviderOllama,
		Model:    "llama3",
	})
	require.NoError(t, err)

	dispatcher := assistant.NewDispatcher(assistant.NewExecutor(factory), 3)
	chatService := NewChatService(
		factory,
		dispatcher,
		func(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
			return provider, nil
		},
		nopLogger{},
		50,
	)

	res, err := chatService.Send(ctx, userId, &dto.SendChatRequest{Message: "mark acme as interview"})
	require.NoError(t, err)
	assert.Equal(t, "Moved it to interview.", res.Reply)
	assert.Equal(t, []string{assistant.ToolUpdateJobStatus}, res.ToolsUsed)

	job, err := jobService.Show(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.JobStatusInterview, job.Status)

	// Raw transcript keeps the full loop: user, tool request, tool result, reply.
	uow := factory.NewUnitOfWork(ctx)
	raws, err := uow.ChatMessageRawRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: res.SessionId},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, raws, 4)
	assert.Equal(t, constant.ChatMessageRoleUser, raws[0].Role)
	assert.NotNil(t, raws[1].ToolCalls)
	assert.Equal(t, constant.ChatMessageRoleTool, raws[2].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, raws[3].Role)

	// Display transcript hides the tool machinery.
	history, err := chatService.History(ctx, userId, res.SessionId)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestChatToolFailureStaysInTranscript(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{turns: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{{
			Id:        "call_0",
			Name:      assistant.ToolUpdateJobStatus,
			Arguments: fmt.Sprintf(`{"job_id":%q,"new_status":"archived"}`, uuid.New()),
		}}},
		{Content: "That status does not exist."},
	}}
	factory, chatService, userId := newChatFixture(t, provider)

	res, err := chatService.Send(ctx, userId, &dto.SendChatRequest{Message: "archive everything"})
	require.NoError(t, err)
	assert.Equal(t, "That status does not exist.", res.Reply)

	uow := factory.NewUnitOfWork(ctx)
	raws, err := uow.ChatMessageRawRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: res.SessionId},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, raws, 4)
	assert.Equal(t, constant.ChatMessageRoleTool, raws[2].Role)
	assert.Contains(t, raws[2].Chat, "error")
}

func TestChatSendWithoutConfig(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	dispatcher := assistant.NewDispatcher(assistant.NewExecutor(factory), 3)
	chatService := NewChatService(
		factory,
		dispatcher,
		func(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
			return &scriptedProvider{turns: []*llm.Completion{{Content: "hi"}}}, nil
		},
		nopLogger{},
		50,
	)

	_, err := chatService.Send(ctx, uuid.New(), &dto.SendChatRequest{Message: "hello"})
	assert.Equal(t, apperror.KindPreconditionFailed, apperror.KindOf(err))
}

func TestChatProviderFailureLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{err: errors.New("connection refused")}
	_, chatService, userId := newChatFixture(t, provider)

	_, err := chatService.Send(ctx, userId, &dto.SendChatRequest{Message: "hello"})
	assert.Equal(t, apperror.KindProvider, apperror.KindOf(err))

	sessions, err := chatService.ListSessions(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestChatToolRoundCap(t *testing.T) {
	ctx := context.Background()
	// The script never produces a final reply, so the loop has to bail.
	provider := &scriptedProvider{turns: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{{
			Id:        "call_0",
			Name:      assistant.ToolGetJobs,
			Arguments: `{}`,
		}}},
	}}
	_, chatService, userId := newChatFixture(t, provider)

	res, err := chatService.Send(ctx, userId, &dto.SendChatRequest{Message: "loop forever"})
	require.NoError(t, err)
	assert.Equal(t, constant.ToolRoundLimitNotice, res.Reply)
}

func TestChatSessionContinuity(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{turns: []*llm.Completion{{Content: "reply"}}}
	_, chatService, userId := newChatFixture(t, provider)

	first, err := chatService.Send(ctx, userId, &dto.SendChatRequest{Message: "first"})
	require.NoError(t, err)

	second, err := chatService.Send(ctx, userId, &dto.SendChatRequest{
		SessionId: first.SessionId,
		Message:   "second",
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionId, second.SessionId)

	sessions, err := chatService.ListSessions(ctx, userId)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	history, err := chatService.History(ctx, userId, first.SessionId)
	require.NoError(t, err)
	assert.Len(t, history, 4)

	t.Run("unknown session is not found", func(t *testing.T) {
		_, err := chatService.Send(ctx, userId, &dto.SendChatRequest{
			SessionId: uuid.New(),
			Message:   "hello?",
		})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("sessions are private", func(t *testing.T) {
		_, err := chatService.History(ctx, uuid.New(), first.SessionId)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestChatClear(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{turns: []*llm.Completion{{Content: "reply"}}}
	_, chatService, userId := newChatFixture(t, provider)

	first, err := chatService.Send(ctx, userId, &dto.SendChatRequest{Message: "one"})
	require.NoError(t, err)
	_, err = chatService.Send(ctx, userId, &dto.SendChatRequest{Message: "two"})
	require.NoError(t, err)

	t.Run("clear one session", func(t *testing.T) {
		err := chatService.Clear(ctx, userId, &first.SessionId)
		require.NoError(t, err)

		sessions, err := chatService.ListSessions(ctx, userId)
		require.NoError(t, err)
		assert.Len(t, sessions, 1)

		_, err = chatService.History(ctx, userId, first.SessionId)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("clear everything", func(t *testing.T) {
		err := chatService.Clear(ctx, userId, nil)
		require.NoError(t, err)

		sessions, err := chatService.ListSessions(ctx, userId)
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})
}
