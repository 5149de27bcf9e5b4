package llm

import "context"

// Completer produces one article from a system and a user prompt. One call,
// no retries; implementations own the wall-clock timeout.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
