package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/o-adebayo/pdf-assistant/internal/llm"
	"github.com/o-adebayo/pdf-assistant/internal/textutil"
)

// Question is one multiple-choice item with four options.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// QuizzerConfig bounds the text sampled into a quiz prompt.
type QuizzerConfig struct {
	MaxChars int // default 50000
}

// Quizzer generates multiple-choice quizzes from document text.
type Quizzer struct {
	completer llm.Completer
	cfg       QuizzerConfig
	logger    *slog.Logger
}

func NewQuizzer(completer llm.Completer, cfg QuizzerConfig, logger *slog.Logger) *Quizzer {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = 50000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Quizzer{completer: completer, cfg: cfg, logger: logger}
}

// Generate asks the model for n questions and parses the JSON array out of
// its reply. Parse or API failure degrades to fill-in-the-blank questions
// built from the text itself, so the caller always gets a quiz.
func (q *Quizzer) Generate(ctx context.Context, text string, n int) ([]Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("no text to generate questions from")
	}
	if n <= 0 {
		n = 5
	}
	if len(text) > q.cfg.MaxChars {
		text = textutil.SampleMiddle(text, q.cfg.MaxChars)
	}

	resp, err := q.completer.Complete(ctx, buildQuizPrompt(text, n))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		q.logger.Warn("assistant.quiz.api_failed", "error", err)
		return fallbackQuestions(text, n), nil
	}

	questions, err := parseQuestions(resp, n)
	if err != nil {
		q.logger.Warn("assistant.quiz.parse_failed", "error", err)
		return fallbackQuestions(text, n), nil
	}
	q.logger.Info("assistant.quiz.ok", "requested", n, "returned", len(questions))
	return questions, nil
}

// parseQuestions pulls the first JSON array out of the model reply,
// validates its shape, and keeps only questions whose answer appears in
// their own option list.
func parseQuestions(resp string, n int) ([]Question, error) {
	start := strings.Index(resp, "[")
	end := strings.LastIndex(resp, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array found in response")
	}
	raw := []byte(resp[start : end+1])

	if err := validateJSONAgainstSchema(buildQuizSchema(), raw); err != nil {
		return nil, err
	}
	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	valid := questions[:0]
	for _, item := range questions {
		if answerInOptions(item) {
			valid = append(valid, item)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no usable questions in response")
	}
	if len(valid) > n {
		valid = valid[:n]
	}
	return valid, nil
}

func answerInOptions(q Question) bool {
	for _, opt := range q.Options {
		if opt == q.Answer {
			return true
		}
	}
	return false
}

var keyTermPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)

// fallbackQuestions builds fill-in-the-blank items from the text: take a
// sentence, blank out a capitalized term, and offer other capitalized terms
// as distractors.
func fallbackQuestions(text string, n int) []Question {
	var sentences []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); len(s) > 20 {
			sentences = append(sentences, s)
		}
	}
	terms := uniqueTerms(text)
	if len(terms) < 2 {
		return nil
	}

	var questions []Question
	for _, sentence := range sentences {
		if len(questions) == n {
			break
		}
		answer := pickTermIn(sentence, terms)
		if answer == "" {
			continue
		}
		options := []string{answer}
		for _, t := range shuffled(terms) {
			if t != answer && len(options) < 4 {
				options = append(options, t)
			}
		}
		rand.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		questions = append(questions, Question{
			Question: "Fill in the blank: " + strings.Replace(sentence, answer, "_____", 1),
			Options:  options,
			Answer:   answer,
		})
	}
	return questions
}

func uniqueTerms(text string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, t := range keyTermPattern.FindAllString(text, -1) {
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}
	return terms
}

func pickTermIn(sentence string, terms []string) string {
	for _, t := range shuffled(terms) {
		if strings.Contains(sentence, t) {
			return t
		}
	}
	return ""
}

func shuffled(terms []string) []string {
	out := make([]string, len(terms))
	copy(out, terms)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
