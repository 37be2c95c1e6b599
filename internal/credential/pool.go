// Package credential owns the configured API keys and their usage statistics.
// All state lives behind a single pool lock; callers only ever see snapshots.
package credential

import (
	"errors"
	"sync"
	"time"
)

// ErrNoCredentials is returned when the pool has no usable credential left to
// offer. At startup this means misconfiguration; during a dispatch it means
// every configured key has already been tried.
var ErrNoCredentials = errors.New("no API credentials available")

const (
	// DefaultErrorWeight deprioritizes erroring keys: a key with fewer total
	// requests but a string of failures should lose the selection.
	DefaultErrorWeight = 3

	// DefaultMinInterval is the minimum spacing between two consecutive
	// requests on one key (20 requests/minute per the provider limit).
	DefaultMinInterval = 3 * time.Second
)

// Lease identifies a selected credential. The secret is handed out for a
// single attempt; it must never be logged.
type Lease struct {
	ID     int
	Secret string
}

// Outcome reports the result of one dispatch attempt back to the pool.
type Outcome struct {
	CredentialID int
	Succeeded    bool
	Timestamp    time.Time
}

// KeyStats is a read-only snapshot of one credential's counters.
type KeyStats struct {
	ID          int
	Requests    uint64
	Errors      uint64
	SuccessRate float64 // 0 when no requests have been made yet
}

type credential struct {
	id       int
	secret   string
	requests uint64
	errors   uint64
	lastUsed time.Time
}

// Pool holds one or two credentials for the lifetime of the process.
// RecordOutcome is the only mutation path for the counters.
type Pool struct {
	mu          sync.Mutex
	creds       []*credential
	minInterval time.Duration
	errorWeight uint64
	now         func() time.Time
}

// Option configures a Pool.
type Option func(*Pool)

// WithMinInterval overrides the per-key minimum request spacing.
func WithMinInterval(d time.Duration) Option {
	return func(p *Pool) {
		if d >= 0 {
			p.minInterval = d
		}
	}
}

// WithErrorWeight overrides the selection-score error weighting.
func WithErrorWeight(w int) Option {
	return func(p *Pool) {
		if w > 0 {
			p.errorWeight = uint64(w)
		}
	}
}

// WithClock injects a time source. Tests use this to make rate-limit and
// tie-break behavior deterministic.
func WithClock(now func() time.Time) Option {
	return func(p *Pool) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPool builds a pool from the configured secrets, skipping empty slots.
// The credential set is fixed for the process lifetime. Configuring zero
// usable secrets is a fatal misconfiguration and returns ErrNoCredentials.
func NewPool(secrets []string, opts ...Option) (*Pool, error) {
	p := &Pool{
		minInterval: DefaultMinInterval,
		errorWeight: DefaultErrorWeight,
		now:         time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	id := 0
	for _, s := range secrets {
		if s == "" {
			continue
		}
		id++
		p.creds = append(p.creds, &credential{id: id, secret: s})
	}
	if len(p.creds) == 0 {
		return nil, ErrNoCredentials
	}
	return p, nil
}

// Size returns the number of configured credentials (1 or 2). It bounds the
// dispatcher's attempt loop.
func (p *Pool) Size() int {
	return len(p.creds)
}

// MinInterval returns the per-key request spacing the pool enforces.
func (p *Pool) MinInterval() time.Duration {
	return p.minInterval
}

// Select returns the credential that should serve the next request, skipping
// any IDs in exclude. With a single credential it is always that one. With
// two, the lower score requests + errorWeight*errors wins; ties go to the
// least recently used key, an unset timestamp sorting first.
func (p *Pool) Select(exclude ...int) (Lease, error) {
	skip := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var best *credential
	for _, c := range p.creds {
		if skip[c.id] {
			continue
		}
		if best == nil || p.better(c, best) {
			best = c
		}
	}
	if best == nil {
		return Lease{}, ErrNoCredentials
	}
	return Lease{ID: best.id, Secret: best.secret}, nil
}

// better reports whether a should be preferred over b. Caller holds p.mu.
func (p *Pool) better(a, b *credential) bool {
	sa := a.requests + p.errorWeight*a.errors
	sb := b.requests + p.errorWeight*b.errors
	if sa != sb {
		return sa < sb
	}
	return a.lastUsed.Before(b.lastUsed)
}

// TimeUntilAvailable returns how long the caller must wait before issuing a
// request on the given credential. Zero means the key is ready now.
func (p *Pool) TimeUntilAvailable(id int) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.byID(id)
	if c == nil || c.lastUsed.IsZero() {
		return 0
	}
	wait := p.minInterval - p.now().Sub(c.lastUsed)
	if wait < 0 {
		return 0
	}
	return wait
}

// RecordOutcome applies one attempt result to the counters. This is the only
// place credential state changes, so errors can never exceed requests.
func (p *Pool) RecordOutcome(o Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.byID(o.CredentialID)
	if c == nil {
		return
	}
	c.requests++
	if !o.Succeeded {
		c.errors++
	}
	ts := o.Timestamp
	if ts.IsZero() {
		ts = p.now()
	}
	c.lastUsed = ts
}

// Stats returns a snapshot of every credential in slot order, for display.
func (p *Pool) Stats() []KeyStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]KeyStats, 0, len(p.creds))
	for _, c := range p.creds {
		s := KeyStats{ID: c.id, Requests: c.requests, Errors: c.errors}
		if c.requests > 0 {
			s.SuccessRate = float64(c.requests-c.errors) / float64(c.requests)
		}
		out = append(out, s)
	}
	return out
}

// byID returns the credential for id, or nil. Caller holds p.mu.
func (p *Pool) byID(id int) *credential {
	for _, c := range p.creds {
		if c.id == id {
			return c
		}
	}
	return nil
}
