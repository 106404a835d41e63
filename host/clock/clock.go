// Package clock provides a host-side (non-tinygo) implementation of
// protocol.Clock, backed by the monotonic time.Since reading.
package clock

import "time"

// Clock wraps a fixed start instant; Now reports elapsed monotonic
// time since it was created. This satisfies protocol.Clock without
// importing the protocol package directly, keeping this a standalone
// adapter any caller can wire in.
type Clock struct {
	start time.Time
}

// New returns a Clock whose zero point is the moment of the call.
func New() *Clock {
	return &Clock{start: time.Now()}
}

// Now returns elapsed time since the Clock was created.
func (c *Clock) Now() time.Duration {
	return time.Since(c.start)
}
