package llm

import (
	"context"
)

// Provider is the interface all LLM providers must implement
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a completion request and returns the full response
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the LLM
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	TopP        float64
	// PreferTopP selects top_p over temperature on APIs that accept only one
	PreferTopP bool
}

// Message represents a chat message
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionResponse represents the full response
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Generation holds the sampling parameters sent with every request
type Generation struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
	PreferTopP  bool
}

// DefaultGeneration returns the stock sampling parameters
func DefaultGeneration() Generation {
	return Generation{
		MaxTokens:   4096,
		Temperature: 0.7,
		TopP:        0.9,
	}
}

// NewRequest creates a system plus user completion request
func NewRequest(model, systemPrompt, userPrompt string, gen Generation) *CompletionRequest {
	return &CompletionRequest{
		Model: model,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userPrompt},
		},
		MaxTokens:   gen.MaxTokens,
		Temperature: gen.Temperature,
		TopP:        gen.TopP,
		PreferTopP:  gen.PreferTopP,
	}
}

// splitSystem separates system messages from the conversation for APIs
// that take the system prompt as a dedicated field
func splitSystem(msgs []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
