package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/chat-popup-control/internal/chat"
	"github.com/atomicstack/chat-popup-control/internal/logging/events"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindConversations Kind = iota
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher polls the chat backend at a fixed interval and publishes events.
type Watcher struct {
	lister   chat.Lister
	interval time.Duration
	timeout  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	refresh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a backend watcher that lists conversations every
// interval. Each fetch is bounded by timeout when it is positive.
func NewWatcher(lister chat.Lister, interval, timeout time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		lister:   lister,
		interval: interval,
		timeout:  timeout,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		refresh:  make(chan struct{}, 1),
	}

	w.startConversationPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks the poller to fetch again without waiting for the next tick.
// Requests made while one is already pending are coalesced.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
		events.Backend.Refresh()
	default:
	}
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startConversationPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindConversations, func(ctx context.Context) (interface{}, error) {
		throttle.wait()
		if w.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, w.timeout)
			defer cancel()
		}
		conversations, err := w.lister.ListConversations(ctx)
		events.Backend.Poll(len(conversations), err)
		if err != nil {
			return nil, err
		}
		return chat.Snapshot{Conversations: conversations, FetchedAt: time.Now()}, nil
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-w.refresh:
			if !emit() {
				return
			}
			ticker.Reset(w.interval)
		}
	}
}
