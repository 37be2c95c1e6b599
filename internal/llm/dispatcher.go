// Package llm turns a logical completion request into a completed HTTP call,
// handling credential selection, per-key rate limiting, and single-level
// fallback to the alternate key. Response shape belongs to callers.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/o-adebayo/pdf-assistant/internal/credential"
)

// Config holds the dispatcher's fixed settings, read once at startup.
type Config struct {
	URL     string        // full chat/completions endpoint
	Timeout time.Duration // bound on a single attempt
}

// Dispatcher routes each outbound request to a credential chosen by the pool
// and records the outcome. It is stateless across calls; all shared state
// lives in the pool.
type Dispatcher struct {
	pool    *credential.Pool
	client  *http.Client
	cfg     Config
	logger  *slog.Logger
	now     func() time.Time
	sleepFn func(ctx context.Context, d time.Duration) error
}

// NewDispatcher wires a dispatcher over the given pool.
func NewDispatcher(pool *credential.Pool, cfg Config, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Dispatcher{
		pool:    pool,
		client:  &http.Client{},
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		sleepFn: sleep,
	}
}

// Send posts the opaque payload to the completion endpoint. It tries each
// configured credential at most once: select the best untried key, wait out
// its rate-limit interval, issue the call, record the outcome. The first 2xx
// wins; when every key has failed the last error is surfaced wrapped in an
// ExhaustedError, never swallowed.
func (d *Dispatcher) Send(ctx context.Context, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	reqID := uuid.New().String()
	var tried []int
	var lastErr error

	for attempt := 1; attempt <= d.pool.Size(); attempt++ {
		lease, err := d.pool.Select(tried...)
		if err != nil {
			break
		}

		if wait := d.pool.TimeUntilAvailable(lease.ID); wait > 0 {
			d.logger.Debug("llm.dispatch.wait", "req_id", reqID, "key_id", lease.ID, "wait_ms", wait.Milliseconds())
			if err := d.sleepFn(ctx, wait); err != nil {
				return nil, err
			}
		}

		start := d.now()
		d.logger.Info("llm.dispatch.attempt",
			"req_id", reqID,
			"attempt", attempt,
			"key_id", lease.ID,
			"content_length", len(body),
		)

		raw, err := d.do(ctx, lease.Secret, body)
		d.pool.RecordOutcome(credential.Outcome{
			CredentialID: lease.ID,
			Succeeded:    err == nil,
			Timestamp:    start,
		})
		if err != nil {
			if ctx.Err() != nil {
				// Caller gave up; don't burn the other key on a dead request.
				return nil, ctx.Err()
			}
			d.logger.Warn("llm.dispatch.key_error",
				"req_id", reqID,
				"key_id", lease.ID,
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			tried = append(tried, lease.ID)
			lastErr = err
			continue
		}

		d.logger.Info("llm.dispatch.ok",
			"req_id", reqID,
			"key_id", lease.ID,
			"bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return raw, nil
	}

	exhausted := &ExhaustedError{Attempts: len(tried), LastErr: lastErr}
	d.logger.Error("llm.dispatch.exhausted", "req_id", reqID, "attempts", len(tried), "error", lastErr)
	return nil, exhausted
}

// Stats exposes the pool's per-key snapshot for display.
func (d *Dispatcher) Stats() []credential.KeyStats {
	return d.pool.Stats()
}

// do issues one bounded attempt with the given secret.
func (d *Dispatcher) do(ctx context.Context, secret string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}
	defer func(rc io.ReadCloser) {
		if err := rc.Close(); err != nil {
			d.logger.Warn("llm.dispatch.body_close_error", "error", err)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

// sleep blocks for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
