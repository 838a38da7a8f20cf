package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/pkg/llm"

	"github.com/google/uuid"
)

// Dispatcher runs one chat turn: model call, tool execution rounds, final
// reply. Rounds run sequentially and are bounded by maxRounds.
type Dispatcher struct {
	executor  *Executor
	maxRounds int
}

func NewDispatcher(executor *Executor, maxRounds int) *Dispatcher {
	if maxRounds <= 0 {
		maxRounds = constant.DefaultMaxToolRounds
	}
	return &Dispatcher{
		executor:  executor,
		maxRounds: maxRounds,
	}
}

// TurnResult is everything one turn produced. NewMessages holds the raw
// transcript rows appended during the turn (assistant tool requests, tool
// results, final reply) in order.
type TurnResult struct {
	Reply       string
	ToolsUsed   []string
	NewMessages []llm.Message
	CapExceeded bool
}

func (d *Dispatcher) RunTurn(ctx context.Context, provider llm.LLMProvider, userId uuid.UUID, history []llm.Message) (*TurnResult, error) {
	result := &TurnResult{}
	tools := Definitions()

	for round := 0; round <= d.maxRounds; round++ {
		completion, err := provider.ChatWithTools(ctx, history, tools)
		if err != nil {
			return nil, apperror.Provider("chat completion failed", err)
		}

		if len(completion.ToolCalls) == 0 {
			reply := completion.Content
			result.Reply = reply
			result.NewMessages = append(result.NewMessages, llm.Message{
				Role:    constant.ChatMessageRoleAssistant,
				Content: reply,
			})
			return result, nil
		}

		if round == d.maxRounds {
			break
		}

		assistantMsg := llm.Message{
			Role:      constant.ChatMessageRoleAssistant,
			Content:   completion.Content,
			ToolCalls: completion.ToolCalls,
		}
		history = append(history, assistantMsg)
		result.NewMessages = append(result.NewMessages, assistantMsg)

		for _, call := range completion.ToolCalls {
			result.ToolsUsed = append(result.ToolsUsed, call.Name)

			content, err := d.executor.Execute(ctx, userId, call)
			if err != nil {
				// Tool failures go back to the model, not to the caller.
				content = toolErrorPayload(err)
			}

			toolMsg := llm.Message{
				Role:       constant.ChatMessageRoleTool,
				Content:    content,
				ToolCallId: call.Id,
				Name:       call.Name,
			}
			history = append(history, toolMsg)
			result.NewMessages = append(result.NewMessages, toolMsg)
		}
	}

	result.Reply = constant.ToolRoundLimitNotice
	result.CapExceeded = true
	result.NewMessages = append(result.NewMessages, llm.Message{
		Role:    constant.ChatMessageRoleAssistant,
		Content: result.Reply,
	})
	return result, nil
}

func toolErrorPayload(err error) string {
	payload, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(payload)
}
