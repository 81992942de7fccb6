// Package cmd provides the studio CLI commands.
//
// Commands:
//   - index: rebuild the knowledge base vector store
//   - ask: one-shot question against the marketing agent
//   - chat: interactive agent session with persistent history
//   - campaign-ad: print the SQL and tracking URL for a new ad
//   - tracking-url: print a UTM tracking URL
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/chroniclife/marketing-studio/internal/log"
)

// Execute is the main entry point for the studio CLI.
func Execute() error {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := log.New(log.Config{Level: level})
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch os.Args[1] {
	case "index":
		return runIndex(ctx, logger, os.Args[2:])
	case "ask":
		return runAsk(ctx, logger, os.Args[2:])
	case "chat":
		return runChat(ctx, logger)
	case "campaign-ad":
		return runCampaignAd(os.Args[2:])
	case "tracking-url":
		return runTrackingURL(os.Args[2:])
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("Studio - Chronic Life marketing automation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  studio index [dir]       Rebuild the knowledge base (default: knowledge/)")
	fmt.Println("  studio ask <question>    Ask the marketing agent a one-shot question")
	fmt.Println("  studio chat              Start an interactive agent session")
	fmt.Println("  studio campaign-ad ...   Print SQL + tracking URL for a new campaign ad")
	fmt.Println("  studio tracking-url ...  Print a UTM tracking URL")
	fmt.Println("  studio --version         Show version information")
	fmt.Println("  studio --help            Show this help")
	fmt.Println()
	fmt.Println("Chat Commands (in interactive mode):")
	fmt.Println("  /clear                   Clear conversation history")
	fmt.Println("  /help                    Show available commands")
	fmt.Println("  /exit, /quit             Exit the chat")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GEMINI_API_KEY           Required: Gemini API key")
	fmt.Println("  DATABASE_URL             Optional: PostgreSQL connection URL")
	fmt.Println("  DEBUG                    Optional: Enable debug logging")
}
