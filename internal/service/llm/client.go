package llm

import (
	"context"
	"fmt"
	"time"

	domsvc "TradeLite/internal/domain/service"
	xhttp "TradeLite/pkg/http"
)

// ChatClient talks to an OpenAI-compatible chat-completions endpoint.
// DeepSeek and OpenAI differ only in base URL, key and model.
type ChatClient struct {
	name    string
	baseURL string
	apiKey  string
	model   string
	client  *xhttp.Client
}

// NewChatClient creates a chat-completions client.
func NewChatClient(name, baseURL, apiKey, model string, timeout time.Duration) *ChatClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatClient{
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (c *ChatClient) Name() string { return c.name }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat completion and returns the first choice's content.
func (c *ChatClient) Complete(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%s: api key not configured", c.name)
	}

	var cr chatResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/chat/completions",
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + c.apiKey,
		},
		Body: chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: system},
				{Role: "user", Content: prompt},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		},
	}, &cr)
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", c.name, err)
	}

	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%s chat completion: empty choices", c.name)
	}
	return cr.Choices[0].Message.Content, nil
}

var _ domsvc.TextCompleter = (*ChatClient)(nil)
