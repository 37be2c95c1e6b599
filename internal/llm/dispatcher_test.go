package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-adebayo/pdf-assistant/internal/credential"
	"github.com/o-adebayo/pdf-assistant/internal/llm"
)

func newPool(t *testing.T, secrets ...string) *credential.Pool {
	t.Helper()
	pool, err := credential.NewPool(secrets, credential.WithMinInterval(0))
	require.NoError(t, err)
	return pool
}

func TestSend_SingleKeyFailureIsExhaustedAfterOneAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	pool := newPool(t, "only-key")
	d := llm.NewDispatcher(pool, llm.Config{URL: srv.URL, Timeout: 5 * time.Second}, nil)

	_, err := d.Send(context.Background(), map[string]any{"model": "sonar"})
	require.Error(t, err)

	var exhausted *llm.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 1, exhausted.Attempts)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no second credential to try")

	var upstream *llm.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
	assert.Contains(t, upstream.Body, "quota exceeded")

	stats := pool.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, uint64(1), stats[0].Requests)
	assert.Equal(t, uint64(1), stats[0].Errors)
}

func TestSend_FallsBackToSecondKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer key-a" {
			http.Error(w, "bad key", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	pool := newPool(t, "key-a", "key-b")
	d := llm.NewDispatcher(pool, llm.Config{URL: srv.URL}, nil)

	raw, err := d.Send(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, string(raw), "yes")

	stats := pool.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, uint64(1), stats[0].Requests)
	assert.Equal(t, uint64(1), stats[0].Errors)
	assert.Equal(t, uint64(1), stats[1].Requests)
	assert.Equal(t, uint64(0), stats[1].Errors)
}

func TestSend_SuccessStopsImmediately(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	pool := newPool(t, "key-a", "key-b")
	d := llm.NewDispatcher(pool, llm.Config{URL: srv.URL}, nil)

	_, err := d.Send(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSend_BothKeysFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	pool := newPool(t, "key-a", "key-b")
	d := llm.NewDispatcher(pool, llm.Config{URL: srv.URL}, nil)

	_, err := d.Send(context.Background(), map[string]any{})
	var exhausted *llm.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 2, exhausted.Attempts)

	for _, s := range pool.Stats() {
		assert.Equal(t, uint64(1), s.Requests)
		assert.Equal(t, uint64(1), s.Errors)
	}
}

func TestSend_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so net/http starts its background read; without it
		// the server never observes the client disconnect and this blocks forever.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	pool := newPool(t, "key-a", "key-b")
	d := llm.NewDispatcher(pool, llm.Config{URL: srv.URL}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.Send(ctx, map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	// The abandoned attempt is still recorded, but the second key is not burned.
	var total uint64
	for _, s := range pool.Stats() {
		total += s.Requests
	}
	assert.Equal(t, uint64(1), total)
}

func TestSend_UnencodablePayload(t *testing.T) {
	pool := newPool(t, "key-a")
	d := llm.NewDispatcher(pool, llm.Config{URL: "http://localhost:0"}, nil)

	_, err := d.Send(context.Background(), map[string]any{"bad": make(chan int)})
	require.Error(t, err)

	stats := pool.Stats()
	assert.Equal(t, uint64(0), stats[0].Requests, "nothing dispatched")
}
