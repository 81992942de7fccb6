package agent

import (
	"github.com/firebase/genkit/go/ai"

	"github.com/chroniclife/marketing-studio/internal/knowledge"
)

// State is the value that flows through one agent run: the accumulated
// message list, the retrieved context, and the iteration count. It is a
// value type; the With* helpers return a new State and never mutate the
// receiver, so a snapshot taken at any point stays valid.
type State struct {
	Messages  []*ai.Message
	Context   []knowledge.Result
	Iteration int
}

// WithMessages returns a State with msgs appended. The message list is
// copied so the original State's slice is never aliased.
func (s State) WithMessages(msgs ...*ai.Message) State {
	combined := make([]*ai.Message, 0, len(s.Messages)+len(msgs))
	combined = append(combined, s.Messages...)
	combined = append(combined, msgs...)
	s.Messages = combined
	return s
}

// WithContext returns a State carrying the given retrieval results.
func (s State) WithContext(results []knowledge.Result) State {
	s.Context = results
	return s
}

// NextIteration returns a State with the iteration count advanced.
func (s State) NextIteration() State {
	s.Iteration++
	return s
}

// LastUserText returns the text of the most recent user message, or ""
// when there is none.
func (s State) LastUserText() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == ai.RoleUser {
			return s.Messages[i].Text()
		}
	}
	return ""
}
