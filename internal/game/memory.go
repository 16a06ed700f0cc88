package game

import (
	"math/rand/v2"
	"sync"
	"time"

	"drillcoach/internal/clock"
)

const (
	// MemoryCells is the fixed board size: 8 symbols, each appearing twice.
	MemoryCells = 16

	// MismatchDelay holds a failed pair face-up before it flips back.
	MismatchDelay = 600 * time.Millisecond

	// RestartDelay keeps the solved board visible before the reshuffle.
	RestartDelay = 800 * time.Millisecond
)

var memorySymbols = []string{"💪", "🏃", "🥗", "💧", "🏋️", "🧘", "🍎", "⏱️"}

// MemoryState is a snapshot of the matching game for rendering and tests.
type MemoryState struct {
	Deck    []string
	Open    []int
	Matched map[int]bool
	Moves   int
}

// Memory is the tile-matching state machine. It has no terminal state: a
// solved board reshuffles itself after RestartDelay.
type Memory struct {
	tones     Tones
	sched     clock.Scheduler
	sfxVolume float64
	rng       *rand.Rand

	mu          sync.Mutex
	deck        []string
	open        []int
	matched     map[int]bool
	moves       int
	cancelDelay func()

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewMemory(tones Tones, sched clock.Scheduler, sfxVolume float64, seed uint64) *Memory {
	m := &Memory{
		tones:     tones,
		sched:     sched,
		sfxVolume: sfxVolume,
		// Non-cryptographic PRNG is fine for deck shuffling.
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		subs: map[int]func(){},
	}
	m.resetLocked()
	return m
}

// Flip turns the cell at index face-up. Flips are ignored for out-of-range
// indices, cells already open or matched, and while two cells are face-up
// awaiting their delayed flip-back.
func (m *Memory) Flip(index int) {
	m.mu.Lock()
	if index < 0 || index >= MemoryCells ||
		m.matched[index] || m.isOpenLocked(index) || len(m.open) == 2 {
		m.mu.Unlock()
		return
	}

	m.open = append(m.open, index)
	if len(m.open) == 2 {
		m.resolveLocked()
	}
	m.mu.Unlock()

	m.notify()
}

func (m *Memory) State() MemoryState {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := MemoryState{
		Deck:    append([]string{}, m.deck...),
		Open:    append([]int{}, m.open...),
		Matched: make(map[int]bool, len(m.matched)),
		Moves:   m.moves,
	}
	for k, v := range m.matched {
		st.Matched[k] = v
	}
	return st
}

// Subscribe registers a change callback and returns its unsubscribe func.
func (m *Memory) Subscribe(fn func()) (cancel func()) {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// Close cancels any pending delayed transition. Used on shutdown so a stale
// timer cannot fire into a dead UI.
func (m *Memory) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelDelay != nil {
		m.cancelDelay()
		m.cancelDelay = nil
	}
}

// resolveLocked evaluates the open pair. Each evaluated pair counts as
// exactly one move.
func (m *Memory) resolveLocked() {
	a, b := m.open[0], m.open[1]
	m.moves++

	if m.deck[a] == m.deck[b] {
		m.matched[a] = true
		m.matched[b] = true
		m.open = nil
		m.tones.Play(ToneSuccess, m.sfxVolume)

		if len(m.matched) == MemoryCells {
			m.rescheduleLocked(RestartDelay, m.restart)
		}
		return
	}

	m.tones.Play(ToneError, m.sfxVolume)
	m.rescheduleLocked(MismatchDelay, m.flipBack)
}

func (m *Memory) flipBack() {
	m.mu.Lock()
	m.open = nil
	m.cancelDelay = nil
	m.mu.Unlock()

	m.notify()
}

func (m *Memory) restart() {
	m.mu.Lock()
	m.resetLocked()
	m.mu.Unlock()

	m.notify()
}

func (m *Memory) resetLocked() {
	deck := make([]string, 0, MemoryCells)
	for _, s := range memorySymbols {
		deck = append(deck, s, s)
	}
	m.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	m.deck = deck
	m.open = nil
	m.matched = map[int]bool{}
	m.moves = 0
	if m.cancelDelay != nil {
		m.cancelDelay()
		m.cancelDelay = nil
	}
}

// rescheduleLocked replaces any pending delayed transition so a stale timer
// never fires against updated state.
func (m *Memory) rescheduleLocked(d time.Duration, fn func()) {
	if m.cancelDelay != nil {
		m.cancelDelay()
	}
	m.cancelDelay = m.sched.After(d, fn)
}

func (m *Memory) isOpenLocked(index int) bool {
	for _, i := range m.open {
		if i == index {
			return true
		}
	}
	return false
}

func (m *Memory) notify() {
	m.subMu.Lock()
	fns := make([]func(), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
