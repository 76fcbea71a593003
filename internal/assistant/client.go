// Package assistant classifies user messages and executes single
// request/response cycles against a hosted generative-text endpoint.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"spendwise/internal/config"
)

const maxBodySize = 1 << 20 // 1 MB

// Fixed user-facing messages for the non-reply outcomes.
const (
	blockedMessage    = "The response was blocked by the model's safety settings. Try rephrasing your request."
	emptyReplyMessage = "Sorry, I couldn't generate a reply. Please try again."
)

// Client talks to the remote assistant endpoint. Every failure path resolves
// to a displayable string: Reply never returns a Go error, because a chat
// turn must always render something.
type Client struct {
	apiKey          string
	baseURL         string
	model           string
	temperature     float64
	maxOutputTokens int
	http            *http.Client
}

// NewClient creates a client from assistant settings. Returns nil if the API
// key is empty; callers treat a nil client as "assistant not configured".
func NewClient(cfg config.AssistantConfig, apiKey string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}

	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		apiKey:          apiKey,
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
		http:            &http.Client{Timeout: timeout},
	}
}

// Reply sends one persona-conditioned request and returns the user-facing
// result: the model's reply on success, an explanatory message otherwise.
func (c *Client) Reply(ctx context.Context, persona, payload string) string {
	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: persona}}},
			{Role: "user", Parts: []part{{Text: payload}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxOutputTokens,
		},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't build the request: %v", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't build the request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't reach the assistant: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't read the reply: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorMessage(resp.StatusCode, resp.Status, raw)
	}

	return parseReply(raw)
}

// errorMessage extracts a human-readable message from a non-success response.
// The body may carry a structured error envelope; fall back to raw status.
func errorMessage(code int, status string, raw []byte) string {
	var envelope generateResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return fmt.Sprintf("Assistant error: %d - %s", code, envelope.Error.Message)
	}
	return fmt.Sprintf("Assistant error: %s", status)
}

// parseReply walks the success-response state machine: safety block, first
// candidate text, error-in-200, structurally empty, or parse failure.
func parseReply(raw []byte) string {
	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Sprintf("Sorry, I couldn't parse the reply: %v. Raw: %s", err, string(raw))
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		// Safety-category details stay out of the chat transcript
		return blockedMessage
	}

	if len(resp.Candidates) > 0 {
		parts := resp.Candidates[0].Content.Parts
		if len(parts) > 0 && strings.TrimSpace(parts[0].Text) != "" {
			return strings.TrimSpace(parts[0].Text)
		}
		return emptyReplyMessage
	}

	if resp.Error != nil && resp.Error.Message != "" {
		return fmt.Sprintf("Assistant error: %s", resp.Error.Message)
	}

	return emptyReplyMessage
}
