package twilio

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// DEMO_SEND_DELAY approximates a provider round trip when credentials are
// missing and delivery is only simulated.
const DEMO_SEND_DELAY = 500 * time.Millisecond

// SMSChannel implements domain.DeliveryChannel over the Twilio Messages API.
type SMSChannel struct {
	client     MessagesAPIClient
	fromNumber string
	logger     *log.Logger
	demoDelay  time.Duration
}

// NewSMSChannel creates a new instance of SMSChannel.
func NewSMSChannel(client MessagesAPIClient, fromNumber string, logger *log.Logger) SMSChannel {
	return SMSChannel{
		client:     client,
		fromNumber: fromNumber,
		logger:     logger,
		demoDelay:  DEMO_SEND_DELAY,
	}
}

// Send delivers the message as an SMS. The subject is ignored; SMS carries
// only a body. Failures are logged and reported as false.
func (c SMSChannel) Send(ctx context.Context, recipient, body, _ string) bool {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("recipient", recipient),
	))
	defer span.End()

	if !c.client.Configured() || c.fromNumber == "" {
		return simulateSend(spanCtx, c.logger, "SMSChannel", recipient, c.demoDelay)
	}

	if err := c.client.SendMessage(spanCtx, c.fromNumber, recipient, body); telemetry.RecordErrorAndStatus(span, err) {
		c.logger.Printf("SMSChannel: failed to send to %s: %v", recipient, err)
		return false
	}

	c.logger.Printf("SMSChannel: sent SMS to %s", recipient)
	return true
}

// simulateSend stands in for a real provider call in demo mode. Shared by the
// SMS and WhatsApp channels.
func simulateSend(ctx context.Context, logger *log.Logger, channel, recipient string, delay time.Duration) bool {
	_, span := telemetry.Start(ctx)
	defer span.End()
	span.AddEvent("Demo mode: simulating delivery")

	logger.Printf("%s: demo mode, simulating delivery to %s", channel, recipient)
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
	return true
}

// InitSMSChannel initializes the SMSChannel and registers it in the dependency container.
type InitSMSChannel struct {
	Client     MessagesAPIClient `resolve:""`
	Logger     *log.Logger       `resolve:""`
	FromNumber string            `config:"TWILIO_PHONE_NUMBER" default:""`
}

// Initialize registers the SMSChannel as the implementation of domain.SMSChannel.
func (i InitSMSChannel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SMSChannel](NewSMSChannel(i.Client, i.FromNumber, i.Logger))
	return ctx, nil
}
