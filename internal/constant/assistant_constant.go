package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
	ChatMessageRoleTool      = "tool"

	// Hard ceiling on tool-execution rounds inside a single chat turn.
	// Exceeding it terminates the turn with a partial reply.
	DefaultMaxToolRounds = 5

	AssistantSystemPrompt = `You are a helpful career assistant for CareerFlow. You help users track their job applications, update statuses, and manage their job search. Use the available functions to access and update the user's actual job data. Be specific and actionable.`

	// Returned alongside a partial reply when the tool loop hits its cap.
	ToolRoundLimitNotice = "I had to stop before finishing all the data operations for this request. Here is what I have so far."
)

// LLM provider names accepted in a user's LLM configuration.
const (
	LLMProviderOpenAI           = "openai"
	LLMProviderOpenRouter       = "openrouter"
	LLMProviderOpenAICompatible = "openai_compatible"
	LLMProviderOllama           = "ollama"
)
