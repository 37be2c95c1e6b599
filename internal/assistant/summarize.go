// Package assistant holds the feature layer: summaries, quizzes, and QA over
// extracted document text. Each feature composes prompts, calls the
// completion client, and applies its own degrade-gracefully policy when the
// API or the response shape fails.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/o-adebayo/pdf-assistant/internal/llm"
	"github.com/o-adebayo/pdf-assistant/internal/textutil"
)

// Progress reports long-running work back to the caller (0..1 plus a stage
// label). May be nil.
type Progress func(fraction float64, stage string)

// SummarizerConfig bounds how much text one summary run may consume.
type SummarizerConfig struct {
	MaxChars  int // chunking threshold, default 100000
	MaxChunks int // rate-budget cap on chunk count, default 10
}

// Summarizer produces a structured whole-document summary by summarizing
// chunks and combining them.
type Summarizer struct {
	completer llm.Completer
	cfg       SummarizerConfig
	logger    *slog.Logger
}

func NewSummarizer(completer llm.Completer, cfg SummarizerConfig, logger *slog.Logger) *Summarizer {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = 100000
	}
	if cfg.MaxChunks <= 0 {
		cfg.MaxChunks = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{completer: completer, cfg: cfg, logger: logger}
}

// Summarize runs the map-reduce summary. A failed chunk degrades to an
// extractive fallback; more than half failing degrades the whole document;
// a failed combine step degrades to concatenation. API errors therefore
// never lose the user's document, only summary quality.
func (s *Summarizer) Summarize(ctx context.Context, text string, progress Progress) (string, error) {
	start := time.Now()
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text to summarize")
	}

	if len(text) <= s.cfg.MaxChars {
		report(progress, 0.5, "Processing text...")
		out := s.summarizeChunk(ctx, text, 1, 1)
		report(progress, 1.0, "Summary complete")
		return out, ctx.Err()
	}

	chunks := textutil.SplitChunks(text, s.cfg.MaxChars)
	chunks = textutil.CombineChunks(chunks, s.cfg.MaxChunks)
	s.logger.Info("assistant.summary.chunked", "chunks", len(chunks), "text_len", len(text))

	summaries := make([]string, 0, len(chunks))
	failures := 0
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		report(progress, 0.8*float64(i+1)/float64(len(chunks)), fmt.Sprintf("Processing chunk %d/%d...", i+1, len(chunks)))

		out, err := s.completer.Complete(ctx, buildChunkSummaryPrompt(chunk, i+1, len(chunks)))
		if err != nil {
			s.logger.Warn("assistant.summary.chunk_failed", "chunk", i+1, "error", err)
			failures++
			out = extractiveSummary(chunk, i+1)
		}
		summaries = append(summaries, out)
	}

	// Mostly failures: the combined result would be fallback soup anyway.
	if failures*2 > len(chunks) {
		s.logger.Warn("assistant.summary.degraded", "failures", failures, "chunks", len(chunks))
		report(progress, 1.0, "Summary complete (degraded)")
		return extractiveSummary(text, 1), nil
	}

	report(progress, 0.9, "Combining summaries...")
	combined, err := s.completer.Complete(ctx, buildCombinePrompt(summaries))
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Warn("assistant.summary.combine_failed", "error", err)
		combined = "## Combined Summary\n\n" + strings.Join(summaries, "\n\n")
	}

	s.logger.Info("assistant.summary.ok",
		"chunks", len(chunks),
		"failures", failures,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	report(progress, 1.0, "Summary complete")
	return combined, nil
}

func (s *Summarizer) summarizeChunk(ctx context.Context, chunk string, num, total int) string {
	out, err := s.completer.Complete(ctx, buildChunkSummaryPrompt(chunk, num, total))
	if err != nil {
		s.logger.Warn("assistant.summary.chunk_failed", "chunk", num, "error", err)
		return extractiveSummary(chunk, num)
	}
	return out
}

func report(p Progress, fraction float64, stage string) {
	if p != nil {
		p(fraction, stage)
	}
}

var keyPointMarkers = []string{
	"definition", "concept", "principle", "process", "method",
	"result", "conclusion", "important", "therefore",
}

// extractiveSummary builds a structured summary without the API: detected
// chapter titles plus sentences that look like key points.
func extractiveSummary(text string, section int) string {
	chapters := textutil.DetectChapters(text)

	var keyLines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 20 {
			continue
		}
		lower := strings.ToLower(line)
		for _, marker := range keyPointMarkers {
			if strings.Contains(lower, marker) {
				keyLines = append(keyLines, line)
				break
			}
		}
		if len(keyLines) == 5 {
			break
		}
	}

	var b strings.Builder
	if len(chapters) > 0 {
		fmt.Fprintf(&b, "## Section %d: %s\n", section, chapters[0].Title)
	} else {
		fmt.Fprintf(&b, "## Section %d: Content Overview\n", section)
	}
	if len(keyLines) > 0 {
		b.WriteString("\n### Key Points:\n")
		for i, line := range keyLines {
			fmt.Fprintf(&b, "%d. %s\n", i+1, line)
		}
	}
	words := len(strings.Fields(text))
	if words > 100 {
		fmt.Fprintf(&b, "\n### Content Overview:\nThis section contains approximately %d words.\n", words)
	}
	return strings.TrimSpace(b.String())
}
