// README: Generation request tagging for stale-response discard.
package plan

import "sync/atomic"

// Dispatcher hands out monotonically increasing request identifiers. A newer
// dispatch (or an explicit cancel) advances the counter, so an in-flight
// response that arrives carrying an older identifier can be recognized as
// stale and dropped unprocessed. This is the only concurrency control the
// pipeline needs: the parsing functions themselves are pure.
type Dispatcher struct {
	current atomic.Uint64
}

// Next tags a new generation request and supersedes all earlier ones.
func (d *Dispatcher) Next() uint64 {
	return d.current.Add(1)
}

// Cancel advances the counter without starting a request, invalidating any
// response still in flight.
func (d *Dispatcher) Cancel() {
	d.current.Add(1)
}

// IsStale reports whether the given request identifier has been superseded.
func (d *Dispatcher) IsStale(id uint64) bool {
	return d.current.Load() != id
}
