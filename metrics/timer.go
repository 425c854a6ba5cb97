package metrics

import (
	"sync"
	"time"
)

/*IntervalTimer - collapses overlapping active intervals from many
concurrent callers into a single logical on/off state with a cumulative
active duration. The accumulated time only grows when the last active
caller stops; while any caller is active the open interval is included in
Rate computations. */
type IntervalTimer struct {
	mu        sync.Mutex
	threads   uint64
	startTime time.Time
	totalTime time.Duration

	now func() time.Time
}

//NewIntervalTimer - create a stopped timer
func NewIntervalTimer() *IntervalTimer {
	return &IntervalTimer{now: time.Now}
}

//Start - register an active caller, opening an interval on the 0 -> 1 transition
func (t *IntervalTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.threads < 1 {
		t.startTime = t.now()
	}
	t.threads++
}

//Stop - deregister an active caller, closing the interval on the 1 -> 0
//transition. Excess calls to Stop are ignored.
func (t *IntervalTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.threads > 0 {
		t.threads--
		if t.threads < 1 {
			t.totalTime += t.now().Sub(t.startTime)
		}
	}
}

//Running - is at least one caller active
func (t *IntervalTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.threads > 0
}

//ThreadCount - the number of active callers
func (t *IntervalTimer) ThreadCount() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.threads
}

/*Rate - events per second of active time for the given counter. The open
interval is provisionally included, so the figure updates while the timer
is still running. */
func (t *IntervalTimer) Rate(c *Counter) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	duration := t.totalTime
	if t.threads > 0 {
		// Timer is running, so include the open interval
		duration += t.now().Sub(t.startTime)
	}
	if duration <= 0 {
		return 0
	}
	return float64(c.Get()) / duration.Seconds()
}
