// Package chat is the live case-page chat: one polling Room per case, built
// on the shared poller primitive.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tangtang/internal/api"
	"tangtang/internal/poller"
	"tangtang/internal/validate"
	"tangtang/pkg/types"
)

// DefaultInterval is the canonical poll interval for case-page chat.
const DefaultInterval = 5 * time.Second

var (
	ErrNoCase         = errors.New("chat: case id is required")
	ErrSignInRequired = errors.New("chat: sign in to send messages")
)

// API is the slice of the REST client the chat needs.
type API interface {
	ListMessages(ctx context.Context, caseID string) ([]types.Message, error)
	PostMessage(ctx context.Context, caseID, content string) (*types.Message, error)
}

// Room polls one case's messages. Snapshots are delivered on Updates only
// when the list actually changed; sending appends the server's canonical
// message immediately instead of waiting for the next tick.
type Room struct {
	caseID   string
	viewer   *types.User
	api      API
	logger   *logrus.Logger
	poller   *poller.Poller
	interval time.Duration
	onParked func()

	mu     sync.Mutex
	res    types.Resource[[]types.Message]
	closed bool

	// fetchSeq/applied guard against a slow older poll response overwriting
	// a newer one.
	fetchSeq uint64
	applied  uint64

	updates chan []types.Message
}

type Option func(*Room)

func WithInterval(d time.Duration) Option {
	return func(r *Room) {
		r.interval = d
	}
}

// WithOnParked registers a callback fired when polling gives up after
// repeated network failures, so the UI can offer a manual retry.
func WithOnParked(fn func()) Option {
	return func(r *Room) {
		r.onParked = fn
	}
}

func Open(ctx context.Context, client API, caseID string, viewer *types.User, logger *logrus.Logger, opts ...Option) (*Room, error) {
	if caseID == "" {
		return nil, ErrNoCase
	}

	r := &Room{
		caseID:   caseID,
		viewer:   viewer,
		api:      client,
		logger:   logger,
		res:      types.NewResource[[]types.Message](),
		updates:  make(chan []types.Message, 1),
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(r)
	}

	pollerOpts := []poller.Option{poller.WithBackoffClassifier(api.IsNetwork)}
	if r.onParked != nil {
		pollerOpts = append(pollerOpts, poller.WithParkedHook(r.onParked))
	}
	r.poller = poller.New(r.interval, r.tick, logger, pollerOpts...)
	r.poller.Start(ctx)

	return r, nil
}

func (r *Room) CaseID() string {
	return r.caseID
}

// State exposes the tri-state message resource, including the last error for
// banner rendering. The data slice is a copy.
func (r *Room) State() types.Resource[[]types.Message] {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := r.res
	res.Data = append([]types.Message(nil), r.res.Data...)
	return res
}

func (r *Room) Messages() []types.Message {
	return r.State().Data
}

// Updates delivers a snapshot whenever the message list changes. Stale
// snapshots are dropped if the consumer lags; only the latest matters.
func (r *Room) Updates() <-chan []types.Message {
	return r.updates
}

// Parked reports whether polling gave up after repeated network failures and
// is waiting for Resume.
func (r *Room) Parked() bool {
	return r.poller.Parked()
}

func (r *Room) Resume() {
	r.poller.Resume()
}

// Close stops polling and releases the room. Mandatory on navigation; a
// closed room never fetches again.
func (r *Room) Close() {
	r.poller.Stop()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.closed {
		r.closed = true
		close(r.updates)
	}
}

// Send validates, posts, and optimistically appends the returned canonical
// message so the sender sees it with zero added latency.
func (r *Room) Send(ctx context.Context, content string) (*types.Message, error) {
	if err := validate.Message(content); err != nil {
		return nil, err
	}
	if r.viewer == nil {
		return nil, ErrSignInRequired
	}

	msg, err := r.api.PostMessage(ctx, r.caseID, strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !containsMessage(r.res.Data, msg.ID) {
		next := append(append([]types.Message(nil), r.res.Data...), *msg)
		r.res = r.res.Succeed(next)
		// Any fetch already in flight predates this message; discard it so
		// it cannot wipe the optimistic append.
		r.applied = r.fetchSeq
		r.notifyLocked()
	}

	return msg, nil
}

func (r *Room) tick(ctx context.Context) error {
	r.mu.Lock()
	r.fetchSeq++
	seq := r.fetchSeq
	if r.res.Status == types.ResourceIdle {
		r.res = r.res.Loading()
	}
	r.mu.Unlock()

	msgs, err := r.api.ListMessages(ctx, r.caseID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq <= r.applied {
		// A newer response (or a send) already landed; this one is stale.
		return nil
	}
	r.applied = seq

	if err != nil {
		if api.IsAuth(err) {
			// Session is gone; stop hammering until the owner retries.
			r.poller.Park()
		}
		r.res = r.res.Fail(err)
		return err
	}

	if equalMessages(r.res.Data, msgs) {
		// Byte-identical list: no state replacement, no notification.
		r.res = types.Resource[[]types.Message]{Status: types.ResourceSuccess, Data: r.res.Data}
		return nil
	}

	r.res = r.res.Succeed(msgs)
	r.notifyLocked()
	return nil
}

func (r *Room) notifyLocked() {
	if r.closed {
		return
	}

	snapshot := append([]types.Message(nil), r.res.Data...)

	select {
	case r.updates <- snapshot:
	default:
		// Displace the stale pending snapshot.
		select {
		case <-r.updates:
		default:
		}
		select {
		case r.updates <- snapshot:
		default:
		}
	}
}

func equalMessages(a, b []types.Message) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Content != b[i].Content {
			return false
		}
	}
	return true
}

func containsMessage(msgs []types.Message, id string) bool {
	for _, m := range msgs {
		if m.ID == id {
			return true
		}
	}
	return false
}
