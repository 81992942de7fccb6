package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"

	"github.com/chroniclife/marketing-studio/internal/log"
)

// runAsk sends a single question through the agent and renders the
// markdown answer to the terminal.
func runAsk(ctx context.Context, logger log.Logger, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return errors.New("usage: studio ask <question>")
	}

	a, cleanup, err := newApp(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := a.agent.Run(ctx, []*ai.Message{
		ai.NewUserMessage(ai.NewTextPart(question)),
	})
	if err != nil {
		return fmt.Errorf("running agent: %w", err)
	}

	fmt.Println(renderMarkdown(result.Text))
	return nil
}
