// Package poller is the one cancellable fixed-interval polling primitive in
// the client. Anything needing live updates builds on it instead of rolling
// its own setInterval-style loop.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultMaxFailures is how many consecutive backoff-class failures are
// tolerated before the poller parks and waits for an explicit Resume.
const DefaultMaxFailures = 3

// Poller runs tick at a fixed interval: once immediately on Start, then every
// interval. Errors from tick never stop the loop unless they are
// backoff-class and occur maxFailures times in a row, in which case the
// poller parks until Resume is called. Stop (or cancelling the Start context)
// tears everything down; no tick runs afterward.
type Poller struct {
	interval    time.Duration
	tick        func(ctx context.Context) error
	logger      *logrus.Logger
	maxFailures int

	// shouldBackOff classifies errors that count toward the failure cap;
	// everything else is surfaced and retried on the next tick regardless.
	shouldBackOff func(error) bool

	onParked func()

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	parked   bool
	failures int
	resume   chan struct{}
}

type Option func(*Poller)

func WithMaxFailures(n int) Option {
	return func(p *Poller) {
		p.maxFailures = n
	}
}

// WithBackoffClassifier restricts the failure cap to errors the classifier
// accepts.
func WithBackoffClassifier(fn func(error) bool) Option {
	return func(p *Poller) {
		p.shouldBackOff = fn
	}
}

// WithParkedHook registers a callback fired when the failure cap is hit, so
// owners can surface a manual-retry banner.
func WithParkedHook(fn func()) Option {
	return func(p *Poller) {
		p.onParked = fn
	}
}

func New(interval time.Duration, tick func(ctx context.Context) error, logger *logrus.Logger, opts ...Option) *Poller {
	p := &Poller{
		interval:      interval,
		tick:          tick,
		logger:        logger,
		maxFailures:   DefaultMaxFailures,
		shouldBackOff: func(error) bool { return true },
		resume:        make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start launches the polling goroutine. Starting an already-running poller
// stops the previous run first, so one Poller never ticks twice concurrently.
func (p *Poller) Start(ctx context.Context) {
	p.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.cancel = cancel
	p.done = done
	p.failures = 0
	p.parked = false
	p.mu.Unlock()

	go p.run(ctx, done)
}

// Stop cancels the loop and waits for the goroutine to exit. Idempotent.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Park suspends ticking until Resume without tearing down the loop. Safe to
// call from inside a tick.
func (p *Poller) Park() {
	p.mu.Lock()
	p.parked = true
	p.mu.Unlock()
}

// Resume clears a parked poller and triggers an immediate tick. No-op while
// the poller is healthy.
func (p *Poller) Resume() {
	p.mu.Lock()
	if !p.parked {
		p.mu.Unlock()
		return
	}
	p.parked = false
	p.failures = 0
	p.mu.Unlock()

	select {
	case p.resume <- struct{}{}:
	default:
	}
}

func (p *Poller) Parked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.parked
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.fire(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.resume:
			p.fire(ctx)
		case <-ticker.C:
			if p.Parked() {
				continue
			}
			p.fire(ctx)
		}
	}
}

func (p *Poller) fire(ctx context.Context) {
	err := p.tick(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		p.mu.Lock()
		p.failures = 0
		p.mu.Unlock()
		return
	}

	if !p.shouldBackOff(err) {
		p.logger.WithError(err).Warn("poll tick failed")
		return
	}

	p.mu.Lock()
	p.failures++
	hitCap := p.failures >= p.maxFailures && !p.parked
	if hitCap {
		p.parked = true
	}
	failures := p.failures
	p.mu.Unlock()

	p.logger.WithError(err).WithField("consecutive_failures", failures).Warn("poll tick failed")

	if hitCap {
		p.logger.Warn("poller parked after repeated failures, waiting for manual retry")
		if p.onParked != nil {
			p.onParked()
		}
	}
}
