// Package rewrite calls an Azure OpenAI chat deployment to rewrite
// resume text for clarity, tone, and keyword coverage.
//
// Configuration is explicit: the caller passes endpoint, key, and
// deployment name, and the client never reads the environment.
package rewrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIVersion is the Azure OpenAI REST API version used when the
// config leaves it empty.
const DefaultAPIVersion = "2025-01-01-preview"

// maxAttempts bounds retries on rate limits, transient server errors,
// and network failures. Backoff is linear: 2s, 4s, 6s.
const maxAttempts = 3

// Config holds the Azure OpenAI connection settings.
type Config struct {
	// Endpoint is the resource base URL, e.g.
	// https://myresource.openai.azure.com. A trailing slash is accepted.
	Endpoint string

	// Key is the api-key credential.
	Key string

	// Deployment is the chat model deployment name.
	Deployment string

	// APIVersion defaults to DefaultAPIVersion when empty.
	APIVersion string
}

func (c Config) validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("rewrite: endpoint is required")
	}
	if c.Key == "" {
		return fmt.Errorf("rewrite: api key is required")
	}
	if c.Deployment == "" {
		return fmt.Errorf("rewrite: deployment name is required")
	}
	return nil
}

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client is an Azure OpenAI chat client with bounded retry.
type Client struct {
	cfg     Config
	http    *http.Client
	backoff func(attempt int) time.Duration
}

// NewClient creates a client for the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: 60 * time.Second},
		backoff: func(attempt int) time.Duration { return time.Duration(attempt+1) * 2 * time.Second },
	}, nil
}

func (c *Client) url() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.cfg.Endpoint, c.cfg.Deployment, c.cfg.APIVersion)
}

// ChatCompletion sends the messages and returns the first choice's
// content. Rate limits (429) and transient server errors are retried
// up to maxAttempts with linear backoff.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message, maxTokens int, temperature float64) (string, error) {
	body, err := json.Marshal(completionRequest{
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.backoff(attempt - 1)):
			}
		}

		content, retryable, err := c.doRequest(ctx, body)
		if err == nil {
			return content, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("chat service unreachable after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) doRequest(ctx context.Context, body []byte) (content string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.cfg.Key)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("calling chat service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("reading chat response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var parsed completionResponse
		if err := json.Unmarshal(data, &parsed); err != nil {
			return "", false, fmt.Errorf("decoding chat response: %w", err)
		}
		if len(parsed.Choices) == 0 {
			return "", false, fmt.Errorf("chat response has no choices")
		}
		return strings.TrimSpace(parsed.Choices[0].Message.Content), false, nil

	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= 500 && resp.StatusCode <= 503:
		return "", true, fmt.Errorf("chat service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))

	default:
		return "", false, fmt.Errorf("chat request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
}

const enhanceSystemPrompt = "You are a senior resume writer with 10+ years of experience improving " +
	"professional resumes for recruiters and ATS systems. Rewrite the text to improve clarity, tone, " +
	"and keyword optimization. Keep all factual information but make it more concise and result-oriented."

// Enhance rewrites resume text, steering the model toward the given job
// keywords. The result has markdown artifacts stripped.
func (c *Client) Enhance(ctx context.Context, resumeText string, jobKeywords []string) (string, error) {
	keywords := "general professional skills"
	if len(jobKeywords) > 0 {
		keywords = strings.Join(jobKeywords, ", ")
	}

	userPrompt := fmt.Sprintf(
		"Original Resume Text:\n%s\n\nPlease optimize for these keywords: %s\nReturn only the improved resume text.",
		resumeText, keywords)

	content, err := c.ChatCompletion(ctx, []Message{
		{Role: "system", Content: enhanceSystemPrompt},
		{Role: "user", Content: userPrompt},
	}, 1800, 0.7)
	if err != nil {
		return "", err
	}
	return CleanText(content), nil
}
