package rewrite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		Endpoint:   server.URL,
		Key:        "test-key",
		Deployment: "gpt-test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.backoff = func(int) time.Duration { return 0 }
	return client
}

func completionBody(content string) []byte {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return body
}

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing endpoint", Config{Key: "k", Deployment: "d"}},
		{"missing key", Config{Endpoint: "https://x", Deployment: "d"}},
		{"missing deployment", Config{Endpoint: "https://x", Key: "k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(tt.cfg); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestChatCompletion(t *testing.T) {
	var gotPath, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotKey = r.Header.Get("api-key")
		w.Write(completionBody("  improved text  "))
	})

	content, err := client.ChatCompletion(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, 400, 0.6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "improved text" {
		t.Errorf("expected trimmed content, got %q", content)
	}
	if gotKey != "test-key" {
		t.Errorf("expected the api-key header, got %q", gotKey)
	}
	want := "/openai/deployments/gpt-test/chat/completions?api-version=" + DefaultAPIVersion
	if gotPath != want {
		t.Errorf("expected path %q, got %q", want, gotPath)
	}
}

func TestChatCompletionRetriesRateLimit(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write(completionBody("done"))
	})

	content, err := client.ChatCompletion(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "done" {
		t.Errorf("expected %q, got %q", "done", content)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestChatCompletionGivesUp(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.ChatCompletion(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, 100, 0)
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if calls != maxAttempts {
		t.Errorf("expected %d attempts, got %d", maxAttempts, calls)
	}
}

func TestChatCompletionDoesNotRetryClientError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.ChatCompletion(context.Background(),
		[]Message{{Role: "user", Content: "hi"}}, 100, 0); err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Errorf("a 401 should not be retried, got %d attempts", calls)
	}
}

func TestEnhance(t *testing.T) {
	var req completionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Write(completionBody("**Led** backend work.\n\n\n\nShipped APIs."))
	})

	out, err := client.Enhance(context.Background(), "did backend work", []string{"Go", "APIs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Led backend work.\n\nShipped APIs." {
		t.Errorf("expected cleaned output, got %q", out)
	}

	if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
		t.Fatalf("expected system and user messages, got %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[1].Content, "Go, APIs") {
		t.Errorf("expected keywords in the user prompt, got %q", req.Messages[1].Content)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"bold", "**Skills** listed", "Skills listed"},
		{"italic", "*very* good", "very good"},
		{"heading", "## Experience\nwork", "Experience\nwork"},
		{"link", "[site](https://example.com)", "site"},
		{"blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"windows newlines", "a\r\nb", "a\nb"},
		{"surrounding space", "  text  ", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
