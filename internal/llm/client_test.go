package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(b)
}

func TestCompleteJSON(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("unexpected authorization %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(completion("```json\n{\"title\":\"T\",\"content\":\"C\"}\n```")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v1/", "secret", "test-model", 5*time.Second)

	var out draft
	if err := c.CompleteJSON(context.Background(), "sys", "usr", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Title != "T" || out.Content != "C" {
		t.Errorf("unexpected result %+v", out)
	}

	if got.Model != "test-model" || len(got.Messages) != 2 {
		t.Fatalf("unexpected request %+v", got)
	}
	if got.Messages[0].Role != "system" || got.Messages[1].Content != "usr" {
		t.Errorf("unexpected messages %+v", got.Messages)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Errorf("expected json_object response format, got %+v", got.ResponseFormat)
	}
	if got.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", got.Temperature)
	}
}

func TestCompleteJSONNotConfigured(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", "m", time.Second)
	if c.IsAvailable() {
		t.Fatal("expected client without key to be unavailable")
	}
	if err := c.CompleteJSON(context.Background(), "s", "u", &draft{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCompleteJSONUpstreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusInternalServerError, `{"error":{"message":"boom"}}`},
		{"api error", http.StatusOK, `{"error":{"message":"quota"}}`},
		{"no choices", http.StatusOK, `{"choices":[]}`},
		{"bad content", http.StatusOK, completion("not json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "k", "m", 5*time.Second)
			err := c.CompleteJSON(context.Background(), "s", "u", &draft{})

			var upstream *UpstreamError
			if !errors.As(err, &upstream) {
				t.Fatalf("expected UpstreamError, got %v", err)
			}
		})
	}
}

func TestCleanJSONContent(t *testing.T) {
	tests := map[string]string{
		`{"a":1}`:                `{"a":1}`,
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}```":       `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range tests {
		if got := cleanJSONContent(in); got != want {
			t.Errorf("cleanJSONContent(%q) = %q, want %q", in, got, want)
		}
	}
}
