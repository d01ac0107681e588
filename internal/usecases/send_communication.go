package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// SendCommunication defines the interface for dispatching a communication
// request to the matching delivery channel.
type SendCommunication interface {
	Execute(ctx context.Context, req domain.CommunicationRequest) domain.CommunicationResult
}

// SendCommunicationImpl routes a request to one of the known channels and
// normalizes the outcome. Channel faults never escape this layer: a panic in
// a channel is converted into a failure result.
type SendCommunicationImpl struct {
	email    domain.DeliveryChannel
	sms      domain.DeliveryChannel
	whatsapp domain.DeliveryChannel
	logger   *log.Logger
}

// NewSendCommunicationImpl creates a new instance of SendCommunicationImpl.
func NewSendCommunicationImpl(email, sms, whatsapp domain.DeliveryChannel, logger *log.Logger) SendCommunicationImpl {
	return SendCommunicationImpl{
		email:    email,
		sms:      sms,
		whatsapp: whatsapp,
		logger:   logger,
	}
}

// Execute dispatches the request. The channel kind match is case-insensitive;
// unknown kinds are rejected without invoking any channel.
func (sc SendCommunicationImpl) Execute(ctx context.Context, req domain.CommunicationRequest) domain.CommunicationResult {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("communication_type", req.Type),
	))
	defer span.End()

	kind := strings.ToLower(req.Type)

	var channel domain.DeliveryChannel
	var subject string
	switch domain.ChannelKind(kind) {
	case domain.ChannelKind_Email:
		channel = sc.email
		subject = domain.DefaultEmailSubject
		if req.Subject != nil {
			subject = *req.Subject
		}
	case domain.ChannelKind_SMS:
		channel = sc.sms
	case domain.ChannelKind_WhatsApp:
		channel = sc.whatsapp
	default:
		return domain.CommunicationResult{
			Success: false,
			Message: fmt.Sprintf("Unsupported communication type: %s", kind),
		}
	}

	success, fault := sc.invoke(spanCtx, channel, req.Recipient, req.Message, subject)
	if fault != nil {
		sc.logger.Printf("SendCommunication: %s channel fault: %v", kind, fault)
		RecordCommunicationDispatched(spanCtx, kind, false)
		details := fault.Error()
		return domain.CommunicationResult{
			Success:      false,
			Message:      fmt.Sprintf("Error: %v", fault),
			ErrorDetails: &details,
		}
	}

	RecordCommunicationDispatched(spanCtx, kind, success)
	if !success {
		return domain.CommunicationResult{
			Success: false,
			Message: fmt.Sprintf("Failed to send message via %s", kind),
		}
	}
	return domain.CommunicationResult{
		Success: true,
		Message: fmt.Sprintf("Message sent successfully via %s", kind),
	}
}

// invoke calls the channel, converting a panic into an error so a misbehaving
// channel cannot take down the dispatching request.
func (sc SendCommunicationImpl) invoke(ctx context.Context, channel domain.DeliveryChannel, recipient, body, subject string) (success bool, fault error) {
	defer func() {
		if r := recover(); r != nil {
			success = false
			fault = fmt.Errorf("%v", r)
		}
	}()
	return channel.Send(ctx, recipient, body, subject), nil
}

// InitSendCommunication initializes the SendCommunication use case and registers it in the dependency container.
type InitSendCommunication struct {
	Email    domain.EmailChannel    `resolve:""`
	SMS      domain.SMSChannel      `resolve:""`
	WhatsApp domain.WhatsAppChannel `resolve:""`
	Logger   *log.Logger            `resolve:""`
}

// Initialize registers the SendCommunicationImpl use case in the dependency container.
func (isc InitSendCommunication) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SendCommunication](NewSendCommunicationImpl(isc.Email, isc.SMS, isc.WhatsApp, isc.Logger))
	return ctx, nil
}
