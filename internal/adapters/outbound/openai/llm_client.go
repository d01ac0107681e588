package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// LLMClient adapts ChatAPIClient to the domain.LLMClient interface.
type LLMClient struct {
	client ChatAPIClient
}

// NewLLMClientAdapter creates a new adapter.
func NewLLMClientAdapter(client ChatAPIClient) LLMClient {
	return LLMClient{client: client}
}

// Complete implements domain.LLMClient.Complete.
func (a LLMClient) Complete(ctx context.Context, req domain.ChatCompletionRequest) (domain.ChatCompletionResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages := make([]chatMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := a.client.Chat(spanCtx, messages, req.MaxTokens, req.Temperature)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatCompletionResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ChatCompletionResponse{}, err
	}

	return domain.ChatCompletionResponse{
		Content: resp.Choices[0].Message.Content,
		Usage: domain.ChatUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// InitLLMClient initializes the LLMClient dependency. Registration is skipped
// without an API key; message generation then serves built-in templates.
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	APIKey     string       `config:"OPENAI_API_KEY" default:""`
	Model      string       `config:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

// Initialize registers the LLMClient in the dependency container.
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	if strings.TrimSpace(i.APIKey) == "" {
		return ctx, nil
	}
	depend.Register[domain.LLMClient](NewLLMClientAdapter(
		NewChatAPIClient(i.BaseURL, i.APIKey, i.Model, i.HttpClient),
	))
	return ctx, nil
}
