// Package perplexity builds chat-completion payloads and extracts the answer
// text from responses. Credential routing and retries live in the dispatcher
// underneath; model fallback lives here.
package perplexity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/o-adebayo/pdf-assistant/internal/llm"
)

// Client implements llm.Completer over a dispatcher.
type Client struct {
	sender llm.Sender
	cfg    Config
	log    *slog.Logger
}

func NewClient(sender llm.Sender, cfg Config, logger *slog.Logger) *Client {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{sender: sender, cfg: cfg, log: logger}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float32   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt as a single user message, trying the primary
// model first and each fallback model in order. A model is only retried on a
// different name after the dispatcher has exhausted its credentials for the
// current one.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	var lastErr error

	for _, model := range c.models() {
		body := chatRequest{
			Model:       model,
			Messages:    []message{{Role: "user", Content: prompt}},
			MaxTokens:   c.cfg.MaxTokens,
			Temperature: c.cfg.Temperature,
		}

		raw, err := c.sender.Send(ctx, body)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			c.log.Warn("llm.complete.model_failed", "model", model, "error", err)
			lastErr = err
			continue
		}

		content, err := extractContent(raw)
		if err != nil {
			c.log.Error("llm.complete.decode_error", "model", model, "error", err, "raw_bytes", len(raw))
			lastErr = err
			continue
		}

		c.log.Info("llm.complete.ok",
			"model", model,
			"prompt_len", len(prompt),
			"content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return content, nil
	}

	return "", fmt.Errorf("all models failed: %w", lastErr)
}

// models returns the primary model followed by fallbacks, deduplicated.
func (c *Client) models() []string {
	out := []string{c.cfg.Model}
	for _, m := range c.cfg.FallbackModels {
		if m != "" && m != c.cfg.Model {
			out = append(out, m)
		}
	}
	return out
}

func extractContent(raw []byte) (string, error) {
	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
