// Package clock abstracts scheduled callbacks so timed behavior stays
// cancellable and testable.
package clock

import "time"

// Scheduler runs fn once after d. The returned cancel func stops the pending
// call; cancelling an already-fired timer is a no-op.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

type realScheduler struct{}

// Real returns the wall-clock Scheduler.
func Real() Scheduler { return realScheduler{} }

func (realScheduler) After(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
