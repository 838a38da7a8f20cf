package assistant

import (
	"context"
	"errors"
	"testing"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	turns []*llm.Completion
	err   error
	calls int
}

func (p *fakeProvider) ChatWithTools(ctx context.Context, history []llm.Message, tools []llm.ToolDefinition, options ...llm.Option) (*llm.Completion, error) {
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

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	completion, err := p.ChatWithTools(ctx, history, nil, options...)
	if err != nil {
		return "", err
	}
	return completion.Content, nil
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, nil)
}

func TestDispatcherPlainReply(t *testing.T) {
	d := NewDispatcher(newTestExecutor(t), 3)
	provider := &fakeProvider{turns: []*llm.Completion{{Content: "Hello"}}}

	result, err := d.RunTurn(context.Background(), provider, uuid.New(), []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello", result.Reply)
	assert.False(t, result.CapExceeded)
	assert.Empty(t, result.ToolsUsed)
	require.Len(t, result.NewMessages, 1)
	assert.Equal(t, constant.ChatMessageRoleAssistant, result.NewMessages[0].Role)
}

func TestDispatcherToolLoop(t *testing.T) {
	d := NewDispatcher(newTestExecutor(t), 3)
	provider := &fakeProvider{turns: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{{Id: "call_0", Name: ToolAddJob, Arguments: `{"title":"SRE","company":"Acme"}`}}},
		{Content: "Added it."},
	}}

	result, err := d.RunTurn(context.Background(), provider, uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Added it.", result.Reply)
	assert.Equal(t, []string{ToolAddJob}, result.ToolsUsed)
	// assistant request, tool result, final reply
	require.Len(t, result.NewMessages, 3)
	assert.Equal(t, constant.ChatMessageRoleTool, result.NewMessages[1].Role)
	assert.Equal(t, "call_0", result.NewMessages[1].ToolCallId)
}

func TestDispatcherToolErrorFoldsIntoTranscript(t *testing.T) {
	d := NewDispatcher(newTestExecutor(t), 3)
	provider := &fakeProvider{turns: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{{Id: "call_0", Name: "no_such_tool"}}},
		{Content: "Sorry, I cannot do that."},
	}}

	result, err := d.RunTurn(context.Background(), provider, uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I cannot do that.", result.Reply)
	assert.Contains(t, result.NewMessages[1].Content, "error")
}

func TestDispatcherRoundCap(t *testing.T) {
	d := NewDispatcher(newTestExecutor(t), 2)
	provider := &fakeProvider{turns: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{{Id: "call_0", Name: ToolGetJobs, Arguments: `{}`}}},
	}}

	result, err := d.RunTurn(context.Background(), provider, uuid.New(), nil)
	require.NoError(t, err)
	assert.True(t, result.CapExceeded)
	assert.Equal(t, constant.ToolRoundLimitNotice, result.Reply)
	// 2 executed rounds plus the capped final attempt
	assert.Equal(t, 3, provider.calls)
}

func TestDispatcherProviderError(t *testing.T) {
	d := NewDispatcher(newTestExecutor(t), 3)
	provider := &fakeProvider{err: errors.New("boom")}

	_, err := d.RunTurn(context.Background(), provider, uuid.New(), nil)
	assert.Equal(t, apperror.KindProvider, apperror.KindOf(err))
}
