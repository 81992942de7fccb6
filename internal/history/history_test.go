package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/chroniclife/marketing-studio/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "history.db")
	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating database: %v", err)
	}
	return New(db)
}

func TestSaveAndAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "user", "hello"); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := store.Save(ctx, "assistant", "hi there"); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	messages, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All() = %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(messages))
	}
	if messages[0].Role != "user" || messages[0].Content != "hello" {
		t.Errorf("messages[0] = %+v", messages[0])
	}
	if messages[1].Role != "assistant" || messages[1].Content != "hi there" {
		t.Errorf("messages[1] = %+v", messages[1])
	}
	if messages[0].CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestRecent_ChronologicalWindow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		if err := store.Save(ctx, "user", fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("Save() = %v", err)
		}
	}

	messages, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() = %v", err)
	}
	if len(messages) != 10 {
		t.Fatalf("messages = %d, want 10", len(messages))
	}
	// last 10 messages, oldest first
	if messages[0].Content != "message 6" {
		t.Errorf("messages[0] = %q, want message 6", messages[0].Content)
	}
	if messages[9].Content != "message 15" {
		t.Errorf("messages[9] = %q, want message 15", messages[9].Content)
	}
}

func TestRecent_FewerThanLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "user", "only one"); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	messages, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() = %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(messages))
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "user", "ephemeral"); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() = %v", err)
	}

	messages, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All() = %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("messages = %d, want 0", len(messages))
	}
}
