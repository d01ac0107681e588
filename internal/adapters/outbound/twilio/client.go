// Package twilio holds a small client for the Twilio Messages REST API and
// the SMS and WhatsApp delivery channels built on top of it.
package twilio

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
)

// MessagesAPIClient is a thin client for the Twilio Messages endpoint. It
// covers only what the delivery channels need: one form-encoded POST.
type MessagesAPIClient struct {
	baseURL    string
	accountSID string
	authToken  string
	http       *http.Client
}

// NewMessagesAPIClient creates a new client.
func NewMessagesAPIClient(baseURL, accountSID, authToken string, httpClient *http.Client) MessagesAPIClient {
	return MessagesAPIClient{
		baseURL:    baseURL,
		accountSID: accountSID,
		authToken:  authToken,
		http:       httpClient,
	}
}

// Configured reports whether the client carries account credentials. The
// delivery channels use this to decide between real and simulated delivery.
func (c MessagesAPIClient) Configured() bool {
	return c.accountSID != "" && c.authToken != ""
}

// SendMessage posts one outbound message. from and to carry any transport
// prefix (e.g. "whatsapp:") the caller needs.
func (c MessagesAPIClient) SendMessage(ctx context.Context, from, to, body string) error {
	endpoint, err := url.JoinPath(c.baseURL, "2010-04-01", "Accounts", c.accountSID, "Messages.json")
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	return nil
}

// InitClient initializes the MessagesAPIClient and registers it in the
// dependency container. Empty credentials are allowed: the channels built on
// this client fall back to demo mode.
type InitClient struct {
	Logger     *log.Logger  `resolve:""`
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"TWILIO_BASE_URL" default:"https://api.twilio.com"`
	AccountSID string       `config:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken  string       `config:"TWILIO_AUTH_TOKEN" default:""`
}

// Initialize registers the MessagesAPIClient in the dependency container.
func (i InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.AccountSID == "" || i.AuthToken == "" {
		i.Logger.Printf("InitClient: no Twilio credentials configured, SMS and WhatsApp channels run in demo mode")
	}
	depend.Register(NewMessagesAPIClient(i.BaseURL, i.AccountSID, i.AuthToken, i.HttpClient))
	return ctx, nil
}
