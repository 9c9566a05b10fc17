package config

import (
	"testing"
	"time"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"http://a.test", []string{"http://a.test"}},
		{" http://a.test , ,http://b.test ", []string{"http://a.test", "http://b.test"}},
	}

	for _, tt := range tests {
		got := parseOrigins(tt.raw)
		if len(got) != len(tt.want) {
			t.Fatalf("parseOrigins(%q): expected %v, got %v", tt.raw, tt.want, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseOrigins(%q)[%d]: expected %q, got %q", tt.raw, i, tt.want[i], got[i])
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LLM_API_URL", "http://llm.local/v1/")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "not-a-number")
	t.Setenv("LLM_TIMEOUT_SECONDS", "15")

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.ServerPort)
	}
	if cfg.LLMAPIURL != "http://llm.local/v1" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.LLMAPIURL)
	}
	if cfg.MaxUploadBytes != 200*1024*1024 {
		t.Errorf("expected fallback upload size, got %d", cfg.MaxUploadBytes)
	}
	if cfg.LLMTimeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %s", cfg.LLMTimeout)
	}
}

func TestCacheKeys(t *testing.T) {
	if got := CacheKey.InstructionQuestionsKey(42); got != "instruction:42:test_questions" {
		t.Errorf("unexpected key %q", got)
	}
	if got := CacheKey.ActivityFeedChannel(); got != "activity:feed" {
		t.Errorf("unexpected channel %q", got)
	}
}
