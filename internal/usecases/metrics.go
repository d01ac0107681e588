package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/joyapp/joy-backend/internal/domain"
)

var (
	meter = otel.Meter("usecases")

	eventsPublished    metric.Int64Counter
	communicationsSent metric.Int64Counter
	llmTokensUsed      metric.Int64Counter
)

func init() {
	var err error
	eventsPublished, err = meter.Int64Counter(
		"domain_events_published_total",
		metric.WithDescription("Total domain events handed to the broker, by kind and outcome"),
	)
	if err != nil {
		panic(err)
	}

	communicationsSent, err = meter.Int64Counter(
		"communications_dispatched_total",
		metric.WithDescription("Total communication dispatch attempts, by channel and outcome"),
	)
	if err != nil {
		panic(err)
	}

	llmTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEventPublished records one publish attempt for an event kind.
func RecordEventPublished(ctx context.Context, kind domain.EventKind, success bool) {
	eventsPublished.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event_kind", string(kind)),
		attribute.Bool("success", success),
	))
}

// RecordCommunicationDispatched records one dispatch attempt for a channel kind.
func RecordCommunicationDispatched(ctx context.Context, channel string, success bool) {
	communicationsSent.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.Bool("success", success),
	))
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	llmTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	llmTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}
