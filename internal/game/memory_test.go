package game

import "testing"

func newTestMemory(t *testing.T) (*Memory, *fakeScheduler, *fakeTones) {
	t.Helper()
	sched := &fakeScheduler{}
	tones := &fakeTones{}
	return NewMemory(tones, sched, 0.5, 42), sched, tones
}

// pairOf returns an index pair with equal symbols; otherOf returns an index
// whose symbol differs from deck[i].
func pairOf(t *testing.T, deck []string) (int, int) {
	t.Helper()
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			if deck[i] == deck[j] {
				return i, j
			}
		}
	}
	t.Fatalf("no pair in deck %v", deck)
	return 0, 0
}

func otherOf(t *testing.T, deck []string, i int) int {
	t.Helper()
	for j := range deck {
		if deck[j] != deck[i] {
			return j
		}
	}
	t.Fatalf("no differing cell")
	return 0
}

func TestMemoryDeckLayout(t *testing.T) {
	m, _, _ := newTestMemory(t)
	st := m.State()
	if len(st.Deck) != MemoryCells {
		t.Fatalf("deck=%d cells, want %d", len(st.Deck), MemoryCells)
	}
	counts := map[string]int{}
	for _, s := range st.Deck {
		counts[s]++
	}
	if len(counts) != 8 {
		t.Fatalf("distinct symbols=%d, want 8", len(counts))
	}
	for s, n := range counts {
		if n != 2 {
			t.Fatalf("symbol %s appears %d times, want 2", s, n)
		}
	}
}

func TestMemoryFlipSameCellIgnored(t *testing.T) {
	m, _, _ := newTestMemory(t)

	m.Flip(3)
	m.Flip(3)
	st := m.State()
	if len(st.Open) != 1 || st.Open[0] != 3 {
		t.Fatalf("open=%v, want [3]", st.Open)
	}
	if st.Moves != 0 {
		t.Fatalf("moves=%d before a pair resolved", st.Moves)
	}
}

func TestMemoryMatchedPair(t *testing.T) {
	m, _, tones := newTestMemory(t)
	deck := m.State().Deck
	a, b := pairOf(t, deck)

	m.Flip(a)
	m.Flip(b)

	st := m.State()
	if !st.Matched[a] || !st.Matched[b] {
		t.Fatalf("matched=%v, want %d and %d", st.Matched, a, b)
	}
	if len(st.Open) != 0 {
		t.Fatalf("open=%v, want cleared immediately on match", st.Open)
	}
	if st.Moves != 1 {
		t.Fatalf("moves=%d, want 1", st.Moves)
	}
	if last, ok := tones.last(); !ok || last.tone != ToneSuccess {
		t.Fatalf("tone=%v, want success", last)
	}
	if last, _ := tones.last(); last.volume != 0.5 {
		t.Fatalf("volume=%v, want 0.5", last.volume)
	}

	// Matched cells ignore further flips.
	m.Flip(a)
	if len(m.State().Open) != 0 {
		t.Fatalf("flip on matched cell opened it")
	}
}

func TestMemoryMismatchHoldsThenClears(t *testing.T) {
	m, sched, tones := newTestMemory(t)
	deck := m.State().Deck
	a := 0
	b := otherOf(t, deck, a)

	m.Flip(a)
	m.Flip(b)

	st := m.State()
	if len(st.Open) != 2 {
		t.Fatalf("open=%v, want both held face-up", st.Open)
	}
	if st.Moves != 1 {
		t.Fatalf("moves=%d, want 1", st.Moves)
	}
	if last, ok := tones.last(); !ok || last.tone != ToneError {
		t.Fatalf("tone=%v, want error", last)
	}

	// A third flip is ignored while the pair is held.
	c := 0
	for c == a || c == b {
		c++
	}
	m.Flip(c)
	if len(m.State().Open) != 2 {
		t.Fatalf("third cell opened during hold")
	}

	if !sched.fireNext() {
		t.Fatalf("no flip-back scheduled")
	}
	if len(m.State().Open) != 0 {
		t.Fatalf("open=%v after delay, want cleared", m.State().Open)
	}
}

func TestMemoryCompletionRestarts(t *testing.T) {
	m, sched, _ := newTestMemory(t)
	deck := m.State().Deck

	// Solve the whole board.
	bySymbol := map[string][]int{}
	for i, s := range deck {
		bySymbol[s] = append(bySymbol[s], i)
	}
	for _, idx := range bySymbol {
		m.Flip(idx[0])
		m.Flip(idx[1])
	}

	st := m.State()
	if len(st.Matched) != MemoryCells {
		t.Fatalf("matched=%d, want %d", len(st.Matched), MemoryCells)
	}
	if st.Moves != 8 {
		t.Fatalf("moves=%d, want 8", st.Moves)
	}

	if !sched.fireNext() {
		t.Fatalf("no restart scheduled")
	}
	st = m.State()
	if len(st.Matched) != 0 || len(st.Open) != 0 || st.Moves != 0 {
		t.Fatalf("state after restart=%+v, want fresh board", st)
	}
	if len(st.Deck) != MemoryCells {
		t.Fatalf("deck=%d after restart", len(st.Deck))
	}
}

func TestMemoryNotifiesSubscribers(t *testing.T) {
	m, _, _ := newTestMemory(t)

	calls := 0
	cancel := m.Subscribe(func() { calls++ })
	m.Flip(0)
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}

	cancel()
	m.Flip(1)
	if calls != 1 {
		t.Fatalf("calls after unsubscribe=%d", calls)
	}
}
