package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/o-adebayo/pdf-assistant/internal/llm"
	"github.com/o-adebayo/pdf-assistant/internal/textutil"
)

// AnswererConfig bounds how much document text is passed as context.
type AnswererConfig struct {
	MaxChars int // default 30000
}

// Answerer answers free-form questions grounded in document text.
type Answerer struct {
	completer llm.Completer
	cfg       AnswererConfig
	logger    *slog.Logger
}

func NewAnswerer(completer llm.Completer, cfg AnswererConfig, logger *slog.Logger) *Answerer {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = 30000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Answerer{completer: completer, cfg: cfg, logger: logger}
}

// Answer returns the model's answer along with the (possibly truncated)
// context it was shown, so the caller can display what the answer is based on.
func (a *Answerer) Answer(ctx context.Context, docText, question string) (answer, context_ string, err error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", "", fmt.Errorf("empty question")
	}
	docText = textutil.Truncate(docText, a.cfg.MaxChars)

	answer, err = a.completer.Complete(ctx, buildAnswerPrompt(docText, question))
	if err != nil {
		return "", docText, fmt.Errorf("generate answer: %w", err)
	}
	a.logger.Info("assistant.qa.ok", "question_len", len(question), "context_len", len(docText))
	return answer, docText, nil
}
