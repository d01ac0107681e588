package twilio

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// WHATSAPP_PREFIX is the transport prefix Twilio expects on both sides of a
// WhatsApp message.
const WHATSAPP_PREFIX = "whatsapp:"

// WhatsAppChannel implements domain.DeliveryChannel over the Twilio Messages
// API WhatsApp transport.
type WhatsAppChannel struct {
	client     MessagesAPIClient
	fromNumber string
	logger     *log.Logger
	demoDelay  time.Duration
}

// NewWhatsAppChannel creates a new instance of WhatsAppChannel.
func NewWhatsAppChannel(client MessagesAPIClient, fromNumber string, logger *log.Logger) WhatsAppChannel {
	return WhatsAppChannel{
		client:     client,
		fromNumber: fromNumber,
		logger:     logger,
		demoDelay:  DEMO_SEND_DELAY,
	}
}

// Send delivers the message over WhatsApp. The subject is ignored. Failures
// are logged and reported as false.
func (c WhatsAppChannel) Send(ctx context.Context, recipient, body, _ string) bool {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("recipient", recipient),
	))
	defer span.End()

	if !c.client.Configured() || c.fromNumber == "" {
		return simulateSend(spanCtx, c.logger, "WhatsAppChannel", recipient, c.demoDelay)
	}

	from := withWhatsAppPrefix(c.fromNumber)
	to := withWhatsAppPrefix(recipient)
	if err := c.client.SendMessage(spanCtx, from, to, body); telemetry.RecordErrorAndStatus(span, err) {
		c.logger.Printf("WhatsAppChannel: failed to send to %s: %v", recipient, err)
		return false
	}

	c.logger.Printf("WhatsAppChannel: sent WhatsApp message to %s", recipient)
	return true
}

// withWhatsAppPrefix applies the transport prefix exactly once, so numbers
// that already carry it are not double-prefixed.
func withWhatsAppPrefix(number string) string {
	if strings.HasPrefix(number, WHATSAPP_PREFIX) {
		return number
	}
	return WHATSAPP_PREFIX + number
}

// InitWhatsAppChannel initializes the WhatsAppChannel and registers it in the dependency container.
type InitWhatsAppChannel struct {
	Client     MessagesAPIClient `resolve:""`
	Logger     *log.Logger       `resolve:""`
	FromNumber string            `config:"TWILIO_WHATSAPP_NUMBER" default:""`
}

// Initialize registers the WhatsAppChannel as the implementation of domain.WhatsAppChannel.
func (i InitWhatsAppChannel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.WhatsAppChannel](NewWhatsAppChannel(i.Client, i.FromNumber, i.Logger))
	return ctx, nil
}
