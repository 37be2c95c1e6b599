// askpdf runs the assistant against a local PDF without the server: extract,
// then summarize, quiz, or answer a question, printing the result to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/o-adebayo/pdf-assistant/internal/assistant"
	"github.com/o-adebayo/pdf-assistant/internal/common"
	"github.com/o-adebayo/pdf-assistant/internal/credential"
	"github.com/o-adebayo/pdf-assistant/internal/extract"
	"github.com/o-adebayo/pdf-assistant/internal/llm"
	"github.com/o-adebayo/pdf-assistant/internal/llm/perplexity"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	mode := flag.String("mode", "summary", "summary | quiz | ask")
	question := flag.String("q", "", "question to answer (mode=ask)")
	numQuestions := flag.Int("n", 5, "number of quiz questions (mode=quiz)")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: askpdf [flags] <file.pdf>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if !cfg.HasCredentials() {
		fmt.Fprintln(os.Stderr, "set PERPLEXITY_API_KEY_1 or PERPLEXITY_API_KEY_2")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read file: %v", err)
	}

	res, err := extract.NewPDFExtractor(logger).ExtractText(ctx, data)
	if err != nil {
		fatal("extract text: %v", err)
	}
	fmt.Fprintf(os.Stderr, "extracted %d pages, %d characters\n", res.Pages, len(res.Text))

	pool, err := credential.NewPool(
		[]string{cfg.LLM.APIKey1, cfg.LLM.APIKey2},
		credential.WithMinInterval(cfg.LLM.MinRequestInterval),
		credential.WithErrorWeight(cfg.LLM.ErrorWeight),
	)
	if err != nil {
		fatal("credential pool: %v", err)
	}

	dispatcher := llm.NewDispatcher(pool, llm.Config{
		URL:     strings.TrimRight(cfg.LLM.BaseURL, "/") + "/chat/completions",
		Timeout: cfg.LLM.Timeout,
	}, logger)

	completer := perplexity.NewClient(dispatcher, perplexity.Config{
		Model:          cfg.LLM.Model,
		FallbackModels: cfg.LLM.FallbackModels,
		MaxTokens:      cfg.LLM.MaxTokens,
		Temperature:    cfg.LLM.Temperature,
	}, logger)

	switch *mode {
	case "summary":
		summarizer := assistant.NewSummarizer(completer, assistant.SummarizerConfig{
			MaxChars:  cfg.Limits.SummaryChars,
			MaxChunks: cfg.Limits.MaxChunks,
		}, logger)
		summary, err := summarizer.Summarize(ctx, res.Text, func(frac float64, stage string) {
			fmt.Fprintf(os.Stderr, "[%3.0f%%] %s\n", frac*100, stage)
		})
		if err != nil {
			fatal("summarize: %v", err)
		}
		fmt.Println(summary)

	case "quiz":
		quizzer := assistant.NewQuizzer(completer, assistant.QuizzerConfig{MaxChars: cfg.Limits.QuizChars}, logger)
		questions, err := quizzer.Generate(ctx, res.Text, *numQuestions)
		if err != nil {
			fatal("generate quiz: %v", err)
		}
		for i, q := range questions {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'A'+j, opt)
			}
			fmt.Printf("   Answer: %s\n\n", q.Answer)
		}

	case "ask":
		if strings.TrimSpace(*question) == "" {
			fatal("mode=ask requires -q \"your question\"")
		}
		answerer := assistant.NewAnswerer(completer, assistant.AnswererConfig{MaxChars: cfg.Limits.AnswerChars}, logger)
		answer, _, err := answerer.Answer(ctx, res.Text, *question)
		if err != nil {
			fatal("answer: %v", err)
		}
		fmt.Println(answer)

	default:
		fatal("unknown mode %q", *mode)
	}

	for _, st := range dispatcher.Stats() {
		fmt.Fprintf(os.Stderr, "key_%d: %d requests, %d errors\n", st.ID, st.Requests, st.Errors)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
