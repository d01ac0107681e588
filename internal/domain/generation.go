package domain

import "context"

// DefaultMessageTone is used when a generation request carries no tone.
const DefaultMessageTone = "friendly"

// MessageGenerationRequest describes one request for occasion-appropriate text.
type MessageGenerationRequest struct {
	Occasion          string
	RecipientName     string
	Tone              string
	AdditionalDetails *string
}

// MessageGenerationResult holds the primary generated text and zero or more
// shorter alternative variants, in generation order.
type MessageGenerationResult struct {
	Message     string
	Suggestions []string
}

// ChatRole identifies the author of a chat message sent to the generative backend.
type ChatRole string

const (
	ChatRole_System ChatRole = "system"
	ChatRole_User   ChatRole = "user"
)

// ChatMessage is one message in a chat completion request.
type ChatMessage struct {
	Role    ChatRole `yaml:"role"`
	Content string   `yaml:"content"`
}

// ChatCompletionRequest is a request for a single chat completion.
type ChatCompletionRequest struct {
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64
}

// ChatUsage reports token consumption for one completion.
type ChatUsage struct {
	PromptTokens     int
	CompletionTokens int
}

// ChatCompletionResponse is the assistant text for one completion.
type ChatCompletionResponse struct {
	Content string
	Usage   ChatUsage
}

// LLMClient defines the interface for the generative text backend.
type LLMClient interface {
	// Complete sends a chat completion request and returns the assistant response.
	Complete(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error)
}
