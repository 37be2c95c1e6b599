package perplexity_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-adebayo/pdf-assistant/internal/llm/perplexity"
)

type fakeSender struct {
	responses map[string]string // model -> content; missing model fails
	models    []string          // models seen, in order
}

func (f *fakeSender) Send(_ context.Context, payload any) ([]byte, error) {
	b, _ := json.Marshal(payload)
	var req struct {
		Model string `json:"model"`
	}
	_ = json.Unmarshal(b, &req)
	f.models = append(f.models, req.Model)

	content, ok := f.responses[req.Model]
	if !ok {
		return nil, fmt.Errorf("model %q rejected", req.Model)
	}
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	return json.Marshal(resp)
}

func TestComplete_PrimaryModel(t *testing.T) {
	sender := &fakeSender{responses: map[string]string{"sonar": "  the answer  "}}
	c := perplexity.NewClient(sender, perplexity.Config{Model: "sonar"}, nil)

	got, err := c.Complete(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, "the answer", got, "content is trimmed")
	assert.Equal(t, []string{"sonar"}, sender.models)
}

func TestComplete_FallsBackThroughModels(t *testing.T) {
	sender := &fakeSender{responses: map[string]string{"sonar-pro": "from fallback"}}
	c := perplexity.NewClient(sender, perplexity.Config{
		Model:          "sonar",
		FallbackModels: []string{"sonar", "sonar-pro"},
	}, nil)

	got, err := c.Complete(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, "from fallback", got)
	assert.Equal(t, []string{"sonar", "sonar-pro"}, sender.models, "duplicate primary skipped")
}

func TestComplete_AllModelsFail(t *testing.T) {
	sender := &fakeSender{responses: map[string]string{}}
	c := perplexity.NewClient(sender, perplexity.Config{
		Model:          "sonar",
		FallbackModels: []string{"sonar-pro"},
	}, nil)

	_, err := c.Complete(context.Background(), "question")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all models failed")
}

func TestComplete_EmptyChoices(t *testing.T) {
	sender := senderFunc(func(context.Context, any) ([]byte, error) {
		return []byte(`{"choices":[]}`), nil
	})
	c := perplexity.NewClient(sender, perplexity.Config{}, nil)

	_, err := c.Complete(context.Background(), "question")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

type senderFunc func(ctx context.Context, payload any) ([]byte, error)

func (f senderFunc) Send(ctx context.Context, payload any) ([]byte, error) {
	return f(ctx, payload)
}
