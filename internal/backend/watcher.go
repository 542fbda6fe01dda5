package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
	"github.com/atomicstack/tmux-pie-menu/internal/tmux"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindSessions Kind = iota
	KindWindows
)

func (k Kind) String() string {
	switch k {
	case KindSessions:
		return "sessions"
	case KindWindows:
		return "windows"
	}
	return "unknown"
}

var (
	fetchSessions = func(socket string) (interface{}, error) { return tmux.FetchSessions(socket) }
	fetchWindows  = func(socket string) (interface{}, error) { return tmux.FetchWindows(socket) }
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher polls tmux at a fixed interval and publishes events. The dynamic
// window and session rings read from what it last published.
type Watcher struct {
	socketPath string
	interval   time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls tmux every interval.
func NewWatcher(socketPath string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		socketPath: socketPath,
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
		events:     make(chan Event, 16),
	}

	w.startSessionPoller()
	w.startWindowPoller()

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

func (w *Watcher) startSessionPoller() {
	throttle := newThrottle(fetchGap(w.interval))
	w.wg.Add(1)
	go w.poll(KindSessions, func(ctx context.Context) (interface{}, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, err
		}
		return fetchSessions(w.socketPath)
	})
}

func (w *Watcher) startWindowPoller() {
	throttle := newThrottle(fetchGap(w.interval))
	w.wg.Add(1)
	go w.poll(KindWindows, func(ctx context.Context) (interface{}, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, err
		}
		return fetchWindows(w.socketPath)
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		events.Tmux.Poll(kind.String(), err)
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
		}
	}
}
