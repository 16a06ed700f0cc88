package engine

import (
	"sync"
	"time"

	"drillcoach/internal/clock"
)

// MotivationInterval is the pause between repeated motivational phrases.
const MotivationInterval = 3 * time.Second

var motivationPhrases = map[VoiceTone][]string{
	VoiceSoft: {
		"You are doing great. One more step.",
		"Breathe. Small efforts add up.",
		"Proud of you for showing up today.",
	},
	VoiceFirm: {
		"Keep the pace. No shortcuts.",
		"You committed to this. Follow through.",
		"Strong choices build strong habits.",
	},
	VoiceMilitary: {
		"Move it, recruit! The mission is not done!",
		"No excuses! Push harder!",
		"Discipline wins! Again!",
	},
}

// Motivator repeats a spoken phrase every MotivationInterval while enabled.
// Speak happens under the mutex, so once Stop returns no further speech is
// issued.
type Motivator struct {
	speaker Speaker
	sched   clock.Scheduler
	tone    VoiceTone
	lang    string

	mu     sync.Mutex
	active bool
	cancel func()
	gen    uint64
	next   int
}

func NewMotivator(speaker Speaker, sched clock.Scheduler, tone VoiceTone, languageTag string) *Motivator {
	return &Motivator{speaker: speaker, sched: sched, tone: tone, lang: languageTag}
}

// Start begins the loop, speaking immediately. Starting an active loop is a
// no-op.
func (m *Motivator) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active {
		return
	}
	m.active = true
	m.speakLocked()
	m.scheduleLocked()
}

// Stop turns the loop off, cancels the pending schedule and interrupts
// in-flight speech.
func (m *Motivator) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return
	}
	m.active = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.speaker.Stop()
}

// scheduleLocked replaces the pending tick. Each tick carries the generation
// it was scheduled for: a callback already dispatched by the scheduler cannot
// be cancelled, so a tick that lost the race to a Stop/Start pair is dropped
// instead of forking a second speech chain.
func (m *Motivator) scheduleLocked() {
	m.gen++
	gen := m.gen
	m.cancel = m.sched.After(MotivationInterval, func() { m.tick(gen) })
}

func (m *Motivator) tick(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active || gen != m.gen {
		return
	}
	m.speakLocked()
	m.scheduleLocked()
}

func (m *Motivator) speakLocked() {
	phrases := motivationPhrases[m.tone]
	if len(phrases) == 0 {
		phrases = motivationPhrases[VoiceSoft]
	}
	phrase := phrases[m.next%len(phrases)]
	m.next++

	pitch, rate := m.tone.PitchRate()
	m.speaker.Speak(phrase, m.lang, pitch, rate)
}
