// Package openai holds a small client for an OpenAI-compatible
// chat-completions endpoint, covering only what message generation needs.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ChatAPIClient is a thin client for the chat completions endpoint.
type ChatAPIClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewChatAPIClient creates a new client.
func NewChatAPIClient(baseURL, apiKey, model string, httpClient *http.Client) ChatAPIClient {
	return ChatAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    httpClient,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Chat sends a non-streaming chat completion request.
func (c ChatAPIClient) Chat(ctx context.Context, messages []chatMessage, maxTokens int, temperature float64) (chatResponse, error) {
	if len(messages) == 0 {
		return chatResponse{}, errors.New("messages are required")
	}

	endpoint, err := url.JoinPath(c.baseURL, "/v1/chat/completions")
	if err != nil {
		return chatResponse{}, fmt.Errorf("invalid base URL: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return chatResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return chatResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return chatResponse{}, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return chatResponse{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return chatResponse{}, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return chatResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return out, nil
}
