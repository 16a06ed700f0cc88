// Package audio provides terminal-backed stand-ins for the platform speech
// and sound-effect collaborators.
package audio

import (
	"fmt"
	"io"
	"sync"

	"drillcoach/internal/game"
)

// ConsoleSpeaker renders speech requests as styled terminal lines. A zero
// volume mutes it entirely.
type ConsoleSpeaker struct {
	mu     sync.Mutex
	out    io.Writer
	volume float64
}

func NewConsoleSpeaker(out io.Writer, volume float64) *ConsoleSpeaker {
	return &ConsoleSpeaker{out: out, volume: volume}
}

func (s *ConsoleSpeaker) Speak(text, languageTag string, pitch, rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.volume <= 0 {
		return
	}
	fmt.Fprintf(s.out, "🗣  [%s] %s\n", languageTag, text)
}

// Stop is a no-op for the console: printed lines cannot be recalled. Loop
// owners gate further Speak calls themselves.
func (s *ConsoleSpeaker) Stop() {}

// ConsoleTones renders tone cues as a bell plus an icon line.
type ConsoleTones struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleTones(out io.Writer) *ConsoleTones {
	return &ConsoleTones{out: out}
}

func (t *ConsoleTones) Play(tone game.Tone, volume float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if volume <= 0 {
		return
	}
	fmt.Fprintf(t.out, "\a%s\n", toneIcon(tone))
}

func toneIcon(tone game.Tone) string {
	switch tone {
	case game.ToneSuccess:
		return "🔔 success"
	case game.ToneError:
		return "❌ error"
	case game.ToneTimeout:
		return "⏰ timeout"
	default:
		return "🔈 ack"
	}
}
