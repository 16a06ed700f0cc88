package game

import (
	"sync"
	"time"
)

// fakeScheduler captures scheduled callbacks so tests control time.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []*fakeTimer
}

type fakeTimer struct {
	d         time.Duration
	fn        func()
	cancelled bool
}

func (s *fakeScheduler) After(d time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	t := &fakeTimer{d: d, fn: fn}
	s.pending = append(s.pending, t)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		t.cancelled = true
		s.mu.Unlock()
	}
}

// fireNext runs the oldest live timer, or reports none.
func (s *fakeScheduler) fireNext() bool {
	s.mu.Lock()
	var next *fakeTimer
	for len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		if !t.cancelled {
			next = t
			break
		}
	}
	s.mu.Unlock()

	if next == nil {
		return false
	}
	next.fn()
	return true
}

// lastFn returns the newest timer's callback, as the runtime would hold it
// once dispatch has begun and cancellation can no longer prevent the call.
func (s *fakeScheduler) lastFn() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[len(s.pending)-1].fn
}

func (s *fakeScheduler) liveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.cancelled {
			n++
		}
	}
	return n
}

type playedTone struct {
	tone   Tone
	volume float64
}

type fakeTones struct {
	mu     sync.Mutex
	played []playedTone
}

func (f *fakeTones) Play(tone Tone, volume float64) {
	f.mu.Lock()
	f.played = append(f.played, playedTone{tone, volume})
	f.mu.Unlock()
}

func (f *fakeTones) last() (playedTone, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.played) == 0 {
		return playedTone{}, false
	}
	return f.played[len(f.played)-1], true
}

func (f *fakeTones) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.played)
}
