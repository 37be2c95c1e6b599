package llm

import "context"

// Completer is the behavior feature callers (summarizer, quiz generator, QA)
// depend on: prompt in, model text out. Shape recovery on that text is the
// caller's concern, not the transport's.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Sender abstracts the dispatcher for provider clients and tests.
type Sender interface {
	Send(ctx context.Context, payload any) ([]byte, error)
}
