package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/firebase/genkit/go/ai"
	"github.com/google/uuid"

	"github.com/chroniclife/marketing-studio/internal/database"
	"github.com/chroniclife/marketing-studio/internal/history"
	"github.com/chroniclife/marketing-studio/internal/log"
)

// historyWindow is how many stored messages are loaded into the agent's
// context at the start of each turn.
const historyWindow = 10

// runChat starts the interactive agent session. Messages persist in the
// SQLite history database across sessions.
func runChat(ctx context.Context, logger log.Logger) error {
	a, cleanup, err := newApp(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	sqlDB, err := database.Open(a.cfg.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()
	if err := database.Migrate(sqlDB); err != nil {
		return fmt.Errorf("migrating history database: %w", err)
	}
	store := history.New(sqlDB)

	sessionID := uuid.New()
	logger.Info("chat session started", "session_id", sessionID)

	fmt.Println("Chronic Life Marketing Studio - type /help for commands")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch input {
		case "/exit", "/quit":
			return nil
		case "/help":
			fmt.Println("/clear  clear conversation history")
			fmt.Println("/exit   quit (also /quit, Ctrl+D)")
			continue
		case "/clear":
			if err := store.Clear(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "clearing history: %v\n", err)
				continue
			}
			fmt.Println("History cleared.")
			continue
		}

		messages, err := contextMessages(ctx, store, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading history: %v\n", err)
			continue
		}

		result, err := a.agent.Run(ctx, messages)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(os.Stderr, "agent error: %v\n", err)
			continue
		}

		fmt.Println(renderMarkdown(result.Text))

		// history writes are best-effort; a failed save should not kill
		// the session
		if err := store.Save(ctx, "user", input); err != nil {
			logger.Warn("saving user message", "error", err)
		}
		if err := store.Save(ctx, "assistant", result.Text); err != nil {
			logger.Warn("saving assistant message", "error", err)
		}
	}
}

// contextMessages builds the agent input: the recent history window plus
// the new user message.
func contextMessages(ctx context.Context, store *history.Store, input string) ([]*ai.Message, error) {
	recent, err := store.Recent(ctx, historyWindow)
	if err != nil {
		return nil, err
	}

	messages := make([]*ai.Message, 0, len(recent)+1)
	for _, m := range recent {
		part := ai.NewTextPart(m.Content)
		if m.Role == "assistant" {
			messages = append(messages, ai.NewModelMessage(part))
		} else {
			messages = append(messages, ai.NewUserMessage(part))
		}
	}
	return append(messages, ai.NewUserMessage(ai.NewTextPart(input))), nil
}

// renderMarkdown pretty-prints agent output for the terminal, falling
// back to the raw text if rendering fails.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
