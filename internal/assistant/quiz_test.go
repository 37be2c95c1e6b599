package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizSourceText = `Photosynthesis converts light into chemical energy inside Chloroplasts.
Respiration releases that energy again inside the Mitochondria of the cell.
Enzymes such as Rubisco catalyze the key reactions during the Calvin cycle.`

func TestGenerateParsesModelJSON(t *testing.T) {
	reply := `Here are your questions:
[
  {"question": "What converts light energy?", "options": ["Photosynthesis", "Respiration", "Osmosis", "Diffusion"], "answer": "Photosynthesis"},
  {"question": "Where does respiration happen?", "options": ["Nucleus", "Mitochondria", "Ribosome", "Vacuole"], "answer": "Mitochondria"}
]
Hope that helps!`
	q := NewQuizzer(completerFunc(func(context.Context, string) (string, error) {
		return reply, nil
	}), QuizzerConfig{}, nil)

	questions, err := q.Generate(context.Background(), quizSourceText, 5)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "What converts light energy?", questions[0].Question)
	assert.Equal(t, "Mitochondria", questions[1].Answer)
}

func TestGenerateTruncatesToRequestedCount(t *testing.T) {
	reply := `[
  {"question": "Q1?", "options": ["a", "b", "c", "d"], "answer": "a"},
  {"question": "Q2?", "options": ["a", "b", "c", "d"], "answer": "b"},
  {"question": "Q3?", "options": ["a", "b", "c", "d"], "answer": "c"}
]`
	q := NewQuizzer(completerFunc(func(context.Context, string) (string, error) {
		return reply, nil
	}), QuizzerConfig{}, nil)

	questions, err := q.Generate(context.Background(), quizSourceText, 2)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestGenerateDropsAnswerNotInOptions(t *testing.T) {
	reply := `[
  {"question": "Good?", "options": ["a", "b", "c", "d"], "answer": "a"},
  {"question": "Bad?", "options": ["a", "b", "c", "d"], "answer": "zzz"}
]`
	q := NewQuizzer(completerFunc(func(context.Context, string) (string, error) {
		return reply, nil
	}), QuizzerConfig{}, nil)

	questions, err := q.Generate(context.Background(), quizSourceText, 5)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Good?", questions[0].Question)
}

func TestGenerateFallsBackOnUnparseableReply(t *testing.T) {
	q := NewQuizzer(completerFunc(func(context.Context, string) (string, error) {
		return "I cannot produce JSON today, sorry.", nil
	}), QuizzerConfig{}, nil)

	questions, err := q.Generate(context.Background(), quizSourceText, 3)
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	for _, item := range questions {
		assert.True(t, strings.HasPrefix(item.Question, "Fill in the blank:"))
		assert.Contains(t, item.Question, "_____")
		assert.True(t, answerInOptions(item))
	}
}

func TestGenerateFallsBackOnAPIError(t *testing.T) {
	q := NewQuizzer(completerFunc(func(context.Context, string) (string, error) {
		return "", errors.New("upstream status 500")
	}), QuizzerConfig{}, nil)

	questions, err := q.Generate(context.Background(), quizSourceText, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, questions)
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q := NewQuizzer(completerFunc(func(ctx context.Context, _ string) (string, error) {
		return "", ctx.Err()
	}), QuizzerConfig{}, nil)

	_, err := q.Generate(ctx, quizSourceText, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateEmptyText(t *testing.T) {
	q := NewQuizzer(completerFunc(func(context.Context, string) (string, error) {
		t.Fatal("completer should not be called")
		return "", nil
	}), QuizzerConfig{}, nil)

	_, err := q.Generate(context.Background(), "  ", 3)
	assert.Error(t, err)
}

func TestParseQuestionsRejectsWrongOptionCount(t *testing.T) {
	_, err := parseQuestions(`[{"question": "Q?", "options": ["a", "b"], "answer": "a"}]`, 5)
	assert.Error(t, err)
}

func TestParseQuestionsRejectsNoArray(t *testing.T) {
	_, err := parseQuestions(`{"question": "not an array"}`, 5)
	assert.Error(t, err)
}
