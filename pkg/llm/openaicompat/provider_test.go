package openaicompat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerflow-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatWithToolsRequestShape(t *testing.T) {
	var captured chatRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"role": "assistant", "content": "Hi!"}},
			},
		})
	}))
	defer server.Close()

	p := NewOpenAICompatProvider(server.URL, "sk-test", "gpt-4o")

	tools := []llm.ToolDefinition{{
		Name:        "get_jobs",
		Description: "List tracked jobs",
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	}}
	history := []llm.Message{
		{Role: "system", Content: "You are helpful."},
		{Role: "user", Content: "hello"},
	}

	completion, err := p.ChatWithTools(context.Background(), history, tools)
	require.NoError(t, err)
	assert.Equal(t, "Hi!", completion.Content)
	assert.Empty(t, completion.ToolCalls)

	assert.Equal(t, "Bearer sk-test", authHeader)
	assert.Equal(t, "gpt-4o", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	require.Len(t, captured.Tools, 1)
	assert.Equal(t, "function", captured.Tools[0].Type)
	assert.Equal(t, "get_jobs", captured.Tools[0].Function.Name)
}

func TestChatWithToolsParsesToolCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{
					"role":    "assistant",
					"content": "",
					"tool_calls": []map[string]interface{}{
						{
							"id":   "call_abc",
							"type": "function",
							"function": map[string]interface{}{
								"name":      "update_job_status",
								"arguments": `{"job_id":"123","new_status":"applied"}`,
							},
						},
					},
				}},
			},
		})
	}))
	defer server.Close()

	p := NewOpenAICompatProvider(server.URL, "", "gpt-4o")

	completion, err := p.ChatWithTools(context.Background(), []llm.Message{{Role: "user", Content: "apply"}}, nil)
	require.NoError(t, err)
	require.Len(t, completion.ToolCalls, 1)
	assert.Equal(t, "call_abc", completion.ToolCalls[0].Id)
	assert.Equal(t, "update_job_status", completion.ToolCalls[0].Name)
	assert.JSONEq(t, `{"job_id":"123","new_status":"applied"}`, completion.ToolCalls[0].Arguments)
}

func TestChatWithToolsRoundTripsToolMessages(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"role": "assistant", "content": "Done."}},
			},
		})
	}))
	defer server.Close()

	p := NewOpenAICompatProvider(server.URL, "", "gpt-4o")

	history := []llm.Message{
		{Role: "user", Content: "apply to acme"},
		{Role: "assistant", ToolCalls: []llm.ToolCall{{Id: "call_1", Name: "add_job", Arguments: `{}`}}},
		{Role: "tool", Content: `{"id":"123"}`, ToolCallId: "call_1", Name: "add_job"},
	}

	_, err := p.ChatWithTools(context.Background(), history, nil)
	require.NoError(t, err)

	require.Len(t, captured.Messages, 3)
	require.Len(t, captured.Messages[1].ToolCalls, 1)
	assert.Equal(t, "call_1", captured.Messages[1].ToolCalls[0].Id)
	assert.Equal(t, "function", captured.Messages[1].ToolCalls[0].Type)
	assert.Equal(t, "call_1", captured.Messages[2].ToolCallId)
	assert.Equal(t, "add_job", captured.Messages[2].Name)
}

func TestChatErrorResponses(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		p := NewOpenAICompatProvider(server.URL, "bad-key", "gpt-4o")
		_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
		assert.Error(t, err)
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
		}))
		defer server.Close()

		p := NewOpenAICompatProvider(server.URL, "", "gpt-4o")
		_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
		assert.Error(t, err)
	})
}
