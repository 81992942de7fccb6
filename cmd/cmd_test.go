package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/firebase/genkit/go/ai"

	"github.com/chroniclife/marketing-studio/internal/database"
	"github.com/chroniclife/marketing-studio/internal/history"
)

func TestQualifiedModelName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gemini-2.0-flash", "googleai/gemini-2.0-flash"},
		{"googleai/gemini-2.0-flash", "googleai/gemini-2.0-flash"},
		{"ollama/llama3", "ollama/llama3"},
	}
	for _, tt := range tests {
		if got := qualifiedModelName(tt.in); got != tt.want {
			t.Errorf("qualifiedModelName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContextMessages(t *testing.T) {
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "history.db")
	sqlDB, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := database.Migrate(sqlDB); err != nil {
		t.Fatalf("migrating database: %v", err)
	}
	store := history.New(sqlDB)

	if err := store.Save(ctx, "user", "earlier question"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, "assistant", "earlier answer"); err != nil {
		t.Fatal(err)
	}

	messages, err := contextMessages(ctx, store, "new question")
	if err != nil {
		t.Fatalf("contextMessages() = %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(messages))
	}
	if messages[0].Role != ai.RoleUser || messages[0].Text() != "earlier question" {
		t.Errorf("messages[0] = %v %q", messages[0].Role, messages[0].Text())
	}
	if messages[1].Role != ai.RoleModel || messages[1].Text() != "earlier answer" {
		t.Errorf("messages[1] = %v %q", messages[1].Role, messages[1].Text())
	}
	if messages[2].Role != ai.RoleUser || messages[2].Text() != "new question" {
		t.Errorf("messages[2] = %v %q", messages[2].Role, messages[2].Text())
	}
}

func TestRenderMarkdown_FallsBackOnPlainText(t *testing.T) {
	if out := renderMarkdown("plain answer"); out == "" {
		t.Error("renderMarkdown returned empty output")
	}
}
