package backend

import (
	"sync"
	"time"
)

// throttle spaces successive fetches at least gap apart, so a Refresh that
// lands right after a tick does not hit the backend twice in a row.
type throttle struct {
	gap   time.Duration
	now   func() time.Time
	sleep func(time.Duration)

	mu   sync.Mutex
	next time.Time
}

func newThrottle(gap time.Duration) *throttle {
	t := &throttle{now: time.Now, sleep: time.Sleep}
	if gap > 0 {
		t.gap = gap
	}
	return t
}

func (t *throttle) wait() {
	if t == nil || t.gap <= 0 {
		return
	}
	for {
		t.mu.Lock()
		remaining := t.next.Sub(t.now())
		if remaining <= 0 {
			t.next = t.now().Add(t.gap)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		if remaining > t.gap {
			remaining = t.gap
		}
		t.sleep(remaining)
	}
}
