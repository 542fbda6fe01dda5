package backend

import (
	"context"
	"sync"
	"time"
)

// minFetchGap keeps back-to-back fetches apart even when -poll is tiny.
const minFetchGap = 50 * time.Millisecond

// fetchGap is the spacing enforced between two fetches of one poller: a
// quarter of the poll interval, never less than minFetchGap.
func fetchGap(poll time.Duration) time.Duration {
	if gap := poll / 4; gap > minFetchGap {
		return gap
	}
	return minFetchGap
}

// throttle ensures a minimum interval between successive fetches.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the next fetch slot. It returns ctx.Err() when the
// watcher is stopped while waiting.
func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.interval <= 0 {
		return ctx.Err()
	}
	for {
		t.mu.Lock()
		wait := time.Until(t.next)
		if wait <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return nil
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
