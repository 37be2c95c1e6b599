package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerReturnsAnswerAndContext(t *testing.T) {
	var gotPrompt string
	a := NewAnswerer(completerFunc(func(_ context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "Pumps move fluids.", nil
	}), AnswererConfig{}, nil)

	answer, usedCtx, err := a.Answer(context.Background(), "A pump moves fluids by pressure.", "What does a pump do?")
	require.NoError(t, err)
	assert.Equal(t, "Pumps move fluids.", answer)
	assert.Equal(t, "A pump moves fluids by pressure.", usedCtx)
	assert.Contains(t, gotPrompt, "Question: What does a pump do?")
	assert.Contains(t, gotPrompt, "A pump moves fluids by pressure.")
}

func TestAnswerTruncatesLongContext(t *testing.T) {
	long := strings.Repeat("x", 500)
	a := NewAnswerer(completerFunc(func(context.Context, string) (string, error) {
		return "ok", nil
	}), AnswererConfig{MaxChars: 100}, nil)

	_, usedCtx, err := a.Answer(context.Background(), long, "why?")
	require.NoError(t, err)
	assert.Len(t, usedCtx, 103)
	assert.True(t, strings.HasSuffix(usedCtx, "..."))
}

func TestAnswerEmptyQuestion(t *testing.T) {
	a := NewAnswerer(completerFunc(func(context.Context, string) (string, error) {
		t.Fatal("completer should not be called")
		return "", nil
	}), AnswererConfig{}, nil)

	_, _, err := a.Answer(context.Background(), "context", "   ")
	assert.Error(t, err)
}

func TestAnswerAPIErrorStillReturnsContext(t *testing.T) {
	a := NewAnswerer(completerFunc(func(context.Context, string) (string, error) {
		return "", errors.New("upstream status 503")
	}), AnswererConfig{}, nil)

	_, usedCtx, err := a.Answer(context.Background(), "some context", "why?")
	assert.Error(t, err)
	assert.Equal(t, "some context", usedCtx)
}
