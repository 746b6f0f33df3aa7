package backend

import (
	"testing"
	"time"
)

func TestThrottleSpacesCalls(t *testing.T) {
	clock := time.Unix(1000, 0)
	var slept []time.Duration
	th := newThrottle(250 * time.Millisecond)
	th.now = func() time.Time { return clock }
	th.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}

	th.wait()
	if len(slept) != 0 {
		t.Fatalf("expected first wait to pass immediately, slept %v", slept)
	}
	clock = clock.Add(100 * time.Millisecond)
	th.wait()
	if len(slept) != 1 || slept[0] != 150*time.Millisecond {
		t.Fatalf("expected a single 150ms sleep, got %v", slept)
	}
}

func TestThrottleDisabled(t *testing.T) {
	th := newThrottle(0)
	th.sleep = func(time.Duration) { t.Fatalf("disabled throttle must not sleep") }
	th.wait()
	th.wait()

	var nilThrottle *throttle
	nilThrottle.wait()
}
