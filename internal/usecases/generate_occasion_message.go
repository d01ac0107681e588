package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

const (
	// Keep the main message short; the app renders it in a card.
	OCCASION_MESSAGE_MAX_TOKENS  = 500
	OCCASION_MESSAGE_TEMPERATURE = 0.7

	// Variations can be more adventurous than the main message.
	MESSAGE_VARIATIONS_MAX_TOKENS  = 300
	MESSAGE_VARIATIONS_TEMPERATURE = 0.8

	MAX_MESSAGE_SUGGESTIONS = 2
)

//go:embed prompts/occasion-message.yml prompts/message-variations.yml
var occasionMessagePrompts embed.FS

// GenerateOccasionMessage defines the interface for producing a personalized
// occasion message with optional alternative phrasings.
type GenerateOccasionMessage interface {
	// Execute always produces a usable result; generation faults degrade to
	// built-in templates instead of failing the request.
	Execute(ctx context.Context, req domain.MessageGenerationRequest) domain.MessageGenerationResult
}

// GenerateOccasionMessageImpl is the LLM-backed implementation of GenerateOccasionMessage.
type GenerateOccasionMessageImpl struct {
	llmClient domain.LLMClient
	logger    *log.Logger
}

// NewGenerateOccasionMessageImpl creates a new instance of GenerateOccasionMessageImpl.
func NewGenerateOccasionMessageImpl(llmClient domain.LLMClient, logger *log.Logger) GenerateOccasionMessageImpl {
	return GenerateOccasionMessageImpl{
		llmClient: llmClient,
		logger:    logger,
	}
}

// Execute generates the main message and, best effort, two shorter variations.
// Any generation fault falls back to the built-in template catalog.
func (gom GenerateOccasionMessageImpl) Execute(ctx context.Context, req domain.MessageGenerationRequest) domain.MessageGenerationResult {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("occasion", req.Occasion),
	))
	defer span.End()

	if strings.TrimSpace(req.Tone) == "" {
		req.Tone = domain.DefaultMessageTone
	}

	prompt, err := gom.buildOccasionPrompt(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		gom.logger.Printf("GenerateOccasionMessage: failed to build prompt, falling back to templates: %v", err)
		return domain.FallbackMessage(req)
	}

	resp, err := gom.llmClient.Complete(spanCtx, domain.ChatCompletionRequest{
		Messages:    prompt,
		MaxTokens:   OCCASION_MESSAGE_MAX_TOKENS,
		Temperature: OCCASION_MESSAGE_TEMPERATURE,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		gom.logger.Printf("GenerateOccasionMessage: completion failed, falling back to templates: %v", err)
		return domain.FallbackMessage(req)
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	message := strings.TrimSpace(resp.Content)
	if message == "" {
		span.AddEvent("Empty completion, falling back to templates")
		return domain.FallbackMessage(req)
	}

	return domain.MessageGenerationResult{
		Message:     message,
		Suggestions: gom.generateVariations(spanCtx, message, req.Tone),
	}
}

// generateVariations asks for alternative phrasings of the generated message.
// Failures here are swallowed: the main message alone is a valid result.
func (gom GenerateOccasionMessageImpl) generateVariations(ctx context.Context, message, tone string) []string {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt, err := loadPromptMessages("prompts/message-variations.yml", tone, message)
	if telemetry.RecordErrorAndStatus(span, err) {
		gom.logger.Printf("GenerateOccasionMessage: failed to build variations prompt: %v", err)
		return nil
	}

	resp, err := gom.llmClient.Complete(spanCtx, domain.ChatCompletionRequest{
		Messages:    prompt,
		MaxTokens:   MESSAGE_VARIATIONS_MAX_TOKENS,
		Temperature: MESSAGE_VARIATIONS_TEMPERATURE,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		gom.logger.Printf("GenerateOccasionMessage: variations completion failed: %v", err)
		return nil
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return domain.ParseSuggestions(resp.Content, MAX_MESSAGE_SUGGESTIONS)
}

// buildOccasionPrompt loads the prompt template and injects the request fields.
func (gom GenerateOccasionMessageImpl) buildOccasionPrompt(req domain.MessageGenerationRequest) ([]domain.ChatMessage, error) {
	details := ""
	if req.AdditionalDetails != nil && strings.TrimSpace(*req.AdditionalDetails) != "" {
		details = fmt.Sprintf("Additional details to weave in: %s.", strings.TrimSpace(*req.AdditionalDetails))
	}
	return loadPromptMessages("prompts/occasion-message.yml", req.Tone, req.RecipientName, req.Occasion, details)
}

// loadPromptMessages decodes an embedded prompt file and formats any message
// that carries indexed format verbs with the given arguments.
func loadPromptMessages(name string, args ...any) ([]domain.ChatMessage, error) {
	file, err := occasionMessagePrompts.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	prompt := []domain.ChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&prompt); err != nil {
		return nil, err
	}

	for i, msg := range prompt {
		if strings.Contains(msg.Content, "%[") {
			prompt[i].Content = fmt.Sprintf(msg.Content, args...)
		}
	}

	return prompt, nil
}

// GenerateOccasionMessageTemplateImpl serves generation requests entirely from
// the built-in template catalog. It is registered when no LLM credentials are
// configured, so the endpoint keeps working in local and demo environments.
type GenerateOccasionMessageTemplateImpl struct{}

// NewGenerateOccasionMessageTemplateImpl creates a new instance of GenerateOccasionMessageTemplateImpl.
func NewGenerateOccasionMessageTemplateImpl() GenerateOccasionMessageTemplateImpl {
	return GenerateOccasionMessageTemplateImpl{}
}

// Execute returns a template message for the requested occasion.
func (GenerateOccasionMessageTemplateImpl) Execute(ctx context.Context, req domain.MessageGenerationRequest) domain.MessageGenerationResult {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("occasion", req.Occasion),
	))
	defer span.End()

	return domain.FallbackMessage(req)
}

// InitGenerateOccasionMessage initializes the GenerateOccasionMessage use case
// and registers it in the dependency container. The LLM-backed implementation
// is selected only when an API key is configured.
type InitGenerateOccasionMessage struct {
	APIKey string      `config:"OPENAI_API_KEY" default:""`
	Logger *log.Logger `resolve:""`
}

// Initialize registers the GenerateOccasionMessage use case in the dependency container.
func (igom InitGenerateOccasionMessage) Initialize(ctx context.Context) (context.Context, error) {
	if strings.TrimSpace(igom.APIKey) == "" {
		igom.Logger.Printf("GenerateOccasionMessage: no LLM credentials configured, serving built-in templates")
		depend.Register[GenerateOccasionMessage](NewGenerateOccasionMessageTemplateImpl())
		return ctx, nil
	}

	llmClient, err := depend.Resolve[domain.LLMClient]()
	if err != nil {
		return ctx, fmt.Errorf("failed to resolve LLM client: %w", err)
	}
	depend.Register[GenerateOccasionMessage](NewGenerateOccasionMessageImpl(llmClient, igom.Logger))
	return ctx, nil
}
