package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/llm"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/questionbank"
)

func intPtr(n int) *int { return &n }

func newGeneratorService() *TestGeneratorService {
	gen := questionbank.NewGenerator(rand.New(rand.NewPCG(1, 2)), func() string { return "00000000" })
	return NewTestGeneratorService(gen, zerolog.Nop())
}

func TestGenerateDefaults(t *testing.T) {
	res := newGeneratorService().Generate(model.GenerateTestRequest{Title: "Safety basics"})

	if len(res.Questions) != DefaultQuestionCount {
		t.Fatalf("expected %d questions, got %d", DefaultQuestionCount, len(res.Questions))
	}
	if res.Message != "Generated 10 questions" {
		t.Errorf("unexpected message %q", res.Message)
	}

	pool := make(map[string]bool)
	for _, tpl := range questionbank.Lookup(questionbank.DefaultTopic) {
		pool[tpl.Text] = true
	}
	for _, q := range res.Questions {
		if !pool[q.Text] {
			t.Errorf("question %q is not from the default topic", q.Text)
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		name  string
		count *int
		want  int
	}{
		{"explicit", intPtr(3), 3},
		{"zero", intPtr(0), 0},
		{"negative", intPtr(-4), 0},
		{"beyond pool", intPtr(25), 25},
	}

	svc := newGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Generate(model.GenerateTestRequest{
				Title:         "T",
				Topic:         string(questionbank.TopicFireSafety),
				QuestionCount: tt.count,
			})
			if len(res.Questions) != tt.want {
				t.Errorf("expected %d questions, got %d", tt.want, len(res.Questions))
			}
			if res.Questions == nil {
				t.Error("expected non-nil questions slice")
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := map[string]string{
		"iot":             "occupational safety instructions",
		"job-instruction": "job instructions",
		"profession":      "professional knowledge",
		"program":         "training programs",
		"topic":           questionbank.TopicFirstAid.Name(),
		"astrology":       "general knowledge",
	}
	for category, want := range tests {
		if got := CategoryLabel(category, questionbank.TopicFirstAid); got != want {
			t.Errorf("CategoryLabel(%q) = %q, want %q", category, got, want)
		}
	}
}

func TestNormalizeActivityLimit(t *testing.T) {
	tests := map[int]int{-1: 10, 0: 10, 1: 1, 50: 50, 100: 100, 101: 100, 5000: 100}
	for in, want := range tests {
		if got := normalizeActivityLimit(in); got != want {
			t.Errorf("normalizeActivityLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func newMediaService(t *testing.T, maxBytes int64) (*MediaService, string) {
	dir := t.TempDir()
	cfg := &config.Config{UploadDir: dir, MaxUploadBytes: maxBytes}
	return NewMediaService(cfg, zerolog.Nop()), dir
}

func TestSaveVideo(t *testing.T) {
	svc, dir := newMediaService(t, 1024)

	res, err := svc.SaveVideo(bytes.NewReader([]byte("video-bytes")), "clip.WEBM", "prog-1", "mod_2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Success || res.Size != int64(len("video-bytes")) || res.ContentType != "video/webm" {
		t.Errorf("unexpected result %+v", res)
	}
	if !strings.HasPrefix(res.FileKey, "videos/prog-1/mod_2/") || !strings.HasSuffix(res.FileKey, ".webm") {
		t.Errorf("unexpected file key %q", res.FileKey)
	}
	if res.URL != "/uploads/"+res.FileKey {
		t.Errorf("unexpected url %q", res.URL)
	}

	stored, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(res.FileKey)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(stored) != "video-bytes" {
		t.Errorf("unexpected stored content %q", stored)
	}
}

func TestSaveVideoDefaults(t *testing.T) {
	svc, _ := newMediaService(t, 1024)

	res, err := svc.SaveVideo(bytes.NewReader([]byte("x")), "", "", "../../etc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.FileKey, "videos/unknown/unknown/") || !strings.HasSuffix(res.FileKey, ".mp4") {
		t.Errorf("unexpected file key %q", res.FileKey)
	}
	if res.ContentType != "video/mp4" {
		t.Errorf("unexpected content type %q", res.ContentType)
	}
}

func TestSaveVideoRejects(t *testing.T) {
	svc, dir := newMediaService(t, 4)

	if _, err := svc.SaveVideo(bytes.NewReader([]byte("x")), "notes.txt", "p", "m"); !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("expected ErrUnsupportedFileType, got %v", err)
	}

	if _, err := svc.SaveVideo(bytes.NewReader([]byte("too large")), "a.mp4", "p", "m"); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}

	entries, _ := os.ReadDir(filepath.Join(dir, "videos", "p", "m"))
	if len(entries) != 0 {
		t.Errorf("expected oversized upload to be removed, found %d files", len(entries))
	}
}

func TestSaveVideoBase64(t *testing.T) {
	svc, _ := newMediaService(t, 1024)
	payload := base64.StdEncoding.EncodeToString([]byte("movie"))

	res, err := svc.SaveVideoBase64("data:video/quicktime;base64,"+payload, "a.mov", "p", "m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Size != 5 || res.ContentType != "video/quicktime" {
		t.Errorf("unexpected result %+v", res)
	}

	if _, err := svc.SaveVideoBase64("%%%not-base64", "a.mp4", "p", "m"); !errors.Is(err, ErrInvalidVideoData) {
		t.Errorf("expected ErrInvalidVideoData, got %v", err)
	}
}

type fakeCompleter struct {
	available bool
	title     string
	content   string
	err       error
	user      string
}

func (f *fakeCompleter) IsAvailable() bool { return f.available }

func (f *fakeCompleter) CompleteJSON(_ context.Context, _, user string, out any) error {
	f.user = user
	if f.err != nil {
		return f.err
	}
	d := out.(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	})
	d.Title = f.title
	d.Content = f.content
	return nil
}

func TestInstructionGenerator(t *testing.T) {
	fake := &fakeCompleter{available: true, content: "1. General provisions"}
	svc := NewInstructionGeneratorService(fake, zerolog.Nop())

	got, err := svc.Generate(context.Background(), model.GenerateInstructionRequest{
		Profession: "Welder",
		Industry:   "Construction",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Title != "Instruction for Welder" {
		t.Errorf("expected fallback title, got %q", got.Title)
	}
	if got.Type != "iot" || got.Profession != "Welder" || got.Industry != "Construction" {
		t.Errorf("unexpected draft %+v", got)
	}
	if !strings.Contains(fake.user, "occupational safety instruction") || !strings.Contains(fake.user, "Not specified") {
		t.Errorf("unexpected prompt %q", fake.user)
	}
}

func TestInstructionGeneratorPropagatesErrors(t *testing.T) {
	svc := NewInstructionGeneratorService(&fakeCompleter{err: llm.ErrNotConfigured}, zerolog.Nop())

	if svc.IsAvailable() {
		t.Error("expected generator to be unavailable")
	}
	_, err := svc.Generate(context.Background(), model.GenerateInstructionRequest{Profession: "Miner", Type: "job"})
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
