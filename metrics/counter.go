package metrics

import (
	"go.uber.org/atomic"
)

/*Counter - a monotonically increasing event counter safe for any number
of concurrent incrementers. It is created at process start and never
resets. */
type Counter struct {
	value atomic.Uint64
}

//Inc - add one to the counter
func (c *Counter) Inc() {
	c.value.Inc()
}

//Get - the current value
func (c *Counter) Get() uint64 {
	return c.value.Load()
}
