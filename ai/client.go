// Package ai turns study material into flashcards with a chat-completion
// API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andrewpaige1/studysnap-api/cardtext"
	"github.com/andrewpaige1/studysnap-api/logger"
)

const (
	systemPrompt = "You are a helpful assistant that creates flashcards."
	userPrompt   = "Generate flashcards from the following text. Format each as:\nQ: <question>\nA: <answer>\n---\n"

	completionsPath = "/v1/chat/completions"
)

var (
	ErrMissingAPIKey = errors.New("no API key set, add your API key in settings")
	ErrEmptyContent  = errors.New("no content provided")
	ErrTransport     = errors.New("AI API unreachable")
	ErrBadResponse   = errors.New("AI API returned an unreadable response")
)

// APIError is a non-2xx answer from the completion endpoint.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return "AI API error: " + e.Message
	}
	return fmt.Sprintf("AI API error (%d %s)", e.StatusCode, e.Status)
}

type Options struct {
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type Client struct {
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(opts Options, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		model:      opts.Model,
		maxTokens:  opts.MaxTokens,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        log.With("service", "AIClient"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateFlashcards asks the model for flashcards covering text. The key
// and the text are checked before any request is made.
func (c *Client) GenerateFlashcards(ctx context.Context, apiKey, text string) ([]cardtext.Card, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}

	content, err := c.complete(ctx, apiKey, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt + text},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	cards, err := cardtext.ParseAIResponse(content)
	if err != nil {
		c.log.Warn("completion contained no flashcards", "model", c.model, "content_len", len(content))
		return nil, err
	}
	return cards, nil
}

func (c *Client) complete(ctx context.Context, apiKey string, body chatRequest) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, readErr)
	}
	c.log.Debug("completion finished", "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newAPIError(resp, raw)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

func newAPIError(resp *http.Response, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
