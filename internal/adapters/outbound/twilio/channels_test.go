package twilio

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMessage struct {
	path string
	from string
	to   string
	body string
	auth string
}

func newMessagesServer(t *testing.T, statusCode int) (*httptest.Server, *capturedMessage) {
	captured := &capturedMessage{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		captured.path = r.URL.Path
		captured.from = r.PostFormValue("From")
		captured.to = r.PostFormValue("To")
		captured.body = r.PostFormValue("Body")
		captured.auth = r.Header.Get("Authorization")
		w.WriteHeader(statusCode)
		if statusCode >= 400 {
			io.WriteString(w, `{"code": 21211, "message": "Invalid 'To' Phone Number"}`) //nolint:errcheck
		} else {
			io.WriteString(w, `{"sid": "SM1"}`) //nolint:errcheck
		}
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestSMSChannel_Send(t *testing.T) {
	t.Run("posts-form-encoded-message", func(t *testing.T) {
		server, captured := newMessagesServer(t, http.StatusCreated)
		client := NewMessagesAPIClient(server.URL, "AC123", "token", server.Client())
		channel := NewSMSChannel(client, "+15550009999", discardLogger())

		ok := channel.Send(context.Background(), "+15550001111", "Happy birthday!", "")

		assert.True(t, ok)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", captured.path)
		assert.Equal(t, "+15550009999", captured.from)
		assert.Equal(t, "+15550001111", captured.to)
		assert.Equal(t, "Happy birthday!", captured.body)
		assert.NotEmpty(t, captured.auth)
	})

	t.Run("provider-error-reports-false", func(t *testing.T) {
		server, _ := newMessagesServer(t, http.StatusBadRequest)
		client := NewMessagesAPIClient(server.URL, "AC123", "token", server.Client())
		channel := NewSMSChannel(client, "+15550009999", discardLogger())

		assert.False(t, channel.Send(context.Background(), "bogus", "Hello!", ""))
	})

	t.Run("missing-credentials-simulates-delivery", func(t *testing.T) {
		client := NewMessagesAPIClient("https://api.twilio.com", "", "", http.DefaultClient)
		channel := NewSMSChannel(client, "+15550009999", discardLogger())
		channel.demoDelay = time.Millisecond

		assert.True(t, channel.Send(context.Background(), "+15550001111", "Hello!", ""))
	})

	t.Run("missing-from-number-simulates-delivery", func(t *testing.T) {
		server, captured := newMessagesServer(t, http.StatusCreated)
		client := NewMessagesAPIClient(server.URL, "AC123", "token", server.Client())
		channel := NewSMSChannel(client, "", discardLogger())
		channel.demoDelay = time.Millisecond

		assert.True(t, channel.Send(context.Background(), "+15550001111", "Hello!", ""))
		assert.Empty(t, captured.path)
	})
}

func TestWhatsAppChannel_Send(t *testing.T) {
	t.Run("prefixes-both-numbers", func(t *testing.T) {
		server, captured := newMessagesServer(t, http.StatusCreated)
		client := NewMessagesAPIClient(server.URL, "AC123", "token", server.Client())
		channel := NewWhatsAppChannel(client, "+15550009999", discardLogger())

		ok := channel.Send(context.Background(), "+15550001111", "Congrats!", "")

		assert.True(t, ok)
		assert.Equal(t, "whatsapp:+15550009999", captured.from)
		assert.Equal(t, "whatsapp:+15550001111", captured.to)
	})

	t.Run("prefix-is-applied-exactly-once", func(t *testing.T) {
		server, captured := newMessagesServer(t, http.StatusCreated)
		client := NewMessagesAPIClient(server.URL, "AC123", "token", server.Client())
		channel := NewWhatsAppChannel(client, "whatsapp:+15550009999", discardLogger())

		ok := channel.Send(context.Background(), "whatsapp:+15550001111", "Congrats!", "")

		assert.True(t, ok)
		assert.Equal(t, "whatsapp:+15550009999", captured.from)
		assert.Equal(t, "whatsapp:+15550001111", captured.to)
	})

	t.Run("provider-error-reports-false", func(t *testing.T) {
		server, _ := newMessagesServer(t, http.StatusUnauthorized)
		client := NewMessagesAPIClient(server.URL, "AC123", "token", server.Client())
		channel := NewWhatsAppChannel(client, "+15550009999", discardLogger())

		assert.False(t, channel.Send(context.Background(), "+15550001111", "Congrats!", ""))
	})

	t.Run("missing-credentials-simulates-delivery", func(t *testing.T) {
		client := NewMessagesAPIClient("https://api.twilio.com", "", "", http.DefaultClient)
		channel := NewWhatsAppChannel(client, "+15550009999", discardLogger())
		channel.demoDelay = time.Millisecond

		assert.True(t, channel.Send(context.Background(), "+15550001111", "Congrats!", ""))
	})
}
