package email

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// DEMO_SEND_DELAY approximates a real SMTP round trip when no credentials are
// configured and delivery is only simulated.
const DEMO_SEND_DELAY = 500 * time.Millisecond

const htmlBodyTemplate = `<html><body>
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #e91e63;">Joy App</h2>
<p>%s</p>
<hr style="border: none; border-top: 1px solid #eee;">
<p style="color: #999; font-size: 12px;">Sent with Joy</p>
</div>
</body></html>`

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// Channel implements domain.DeliveryChannel over SMTP.
//
// Without credentials the channel runs in demo mode: delivery is simulated
// with a short delay and reported as successful, so the app stays usable in
// environments without a mail account.
type Channel struct {
	host      string
	port      string
	username  string
	password  string
	from      string
	logger    *log.Logger
	send      sendFunc
	demoDelay time.Duration
}

// NewChannel creates a new instance of Channel.
func NewChannel(host, port, username, password, from string, logger *log.Logger) Channel {
	if from == "" {
		from = username
	}
	return Channel{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		from:      from,
		logger:    logger,
		send:      smtp.SendMail,
		demoDelay: DEMO_SEND_DELAY,
	}
}

// Send delivers the message as an HTML email. Failures are logged and
// reported as false, never as an error or panic.
func (c Channel) Send(ctx context.Context, recipient, body, subject string) bool {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("recipient", recipient),
	))
	defer span.End()

	if c.username == "" || c.password == "" {
		return c.simulateSend(spanCtx, recipient)
	}

	msg := c.composeMessage(recipient, body, subject)
	auth := smtp.PlainAuth("", c.username, c.password, c.host)
	addr := fmt.Sprintf("%s:%s", c.host, c.port)

	if err := c.send(addr, auth, c.from, []string{recipient}, msg); telemetry.RecordErrorAndStatus(span, err) {
		c.logger.Printf("EmailChannel: failed to send to %s: %v", recipient, err)
		return false
	}

	c.logger.Printf("EmailChannel: sent email to %s", recipient)
	return true
}

// simulateSend stands in for a real delivery when the channel has no
// credentials. The delay keeps demo behavior close to a real send.
func (c Channel) simulateSend(ctx context.Context, recipient string) bool {
	_, span := telemetry.Start(ctx)
	defer span.End()
	span.AddEvent("Demo mode: simulating email delivery")

	c.logger.Printf("EmailChannel: demo mode, simulating email to %s", recipient)
	select {
	case <-time.After(c.demoDelay):
	case <-ctx.Done():
	}
	return true
}

func (c Channel) composeMessage(recipient, body, subject string) []byte {
	htmlBody := fmt.Sprintf(htmlBodyTemplate, strings.ReplaceAll(body, "\n", "<br>"))

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", c.from)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return []byte(msg.String())
}

// InitChannel initializes the email Channel and registers it in the dependency container.
type InitChannel struct {
	Logger   *log.Logger `resolve:""`
	Host     string      `config:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     string      `config:"SMTP_PORT" default:"587"`
	Username string      `config:"SMTP_USERNAME" default:""`
	Password string      `config:"SMTP_PASSWORD" default:""`
	From     string      `config:"SMTP_FROM" default:""`
}

// Initialize registers the Channel as the implementation of domain.EmailChannel.
func (i InitChannel) Initialize(ctx context.Context) (context.Context, error) {
	if i.Username == "" || i.Password == "" {
		i.Logger.Printf("InitChannel: no SMTP credentials configured, email channel runs in demo mode")
	}
	depend.Register[domain.EmailChannel](NewChannel(i.Host, i.Port, i.Username, i.Password, i.From, i.Logger))
	return ctx, nil
}
