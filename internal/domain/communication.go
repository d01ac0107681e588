package domain

import (
	"context"
	"strings"
)

// ChannelKind identifies one external communication provider integration.
type ChannelKind string

const (
	// ChannelKind_Email delivers through SMTP.
	ChannelKind_Email ChannelKind = "email"
	// ChannelKind_SMS delivers through the SMS provider's REST API.
	ChannelKind_SMS ChannelKind = "sms"
	// ChannelKind_WhatsApp delivers through the SMS provider's WhatsApp transport.
	ChannelKind_WhatsApp ChannelKind = "whatsapp"
)

// IsSupportedChannelKind reports whether the kind names a known channel.
// The match is case-insensitive.
func IsSupportedChannelKind(kind string) bool {
	switch ChannelKind(strings.ToLower(kind)) {
	case ChannelKind_Email, ChannelKind_SMS, ChannelKind_WhatsApp:
		return true
	default:
		return false
	}
}

// DefaultEmailSubject is substituted when an email request carries no subject.
const DefaultEmailSubject = "Message from Joy App"

// CommunicationRequest describes one attempt to deliver a message through one
// named channel. Recipient is an email address for the email channel and a
// phone number otherwise. Subject is meaningful only for email.
type CommunicationRequest struct {
	Type      string
	Recipient string
	Message   string
	Subject   *string
}

// CommunicationResult is the normalized outcome of a CommunicationRequest.
// When Success is false, Message carries a non-empty explanation.
type CommunicationResult struct {
	Success      bool
	Message      string
	ErrorDetails *string
}

// DeliveryChannel attempts delivery through one specific external provider.
//
// Send returns true when the message was delivered or simulated (demo mode),
// false when the attempt failed. Provider faults never escape the channel.
type DeliveryChannel interface {
	Send(ctx context.Context, recipient, body, subject string) bool
}

// EmailChannel is the DeliveryChannel registered for ChannelKind_Email.
type EmailChannel interface {
	DeliveryChannel
}

// SMSChannel is the DeliveryChannel registered for ChannelKind_SMS.
type SMSChannel interface {
	DeliveryChannel
}

// WhatsAppChannel is the DeliveryChannel registered for ChannelKind_WhatsApp.
type WhatsAppChannel interface {
	DeliveryChannel
}
