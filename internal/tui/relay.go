package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"drillcoach/internal/game"
)

type toneMsg struct {
	tone game.Tone
}

type stateMsg struct{}

// toneRelay adapts the Tones collaborator onto the running program's message
// loop. Sends are async so an engine callback can never deadlock against an
// Update in progress.
type toneRelay struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (r *toneRelay) attach(send func(tea.Msg)) {
	r.mu.Lock()
	r.send = send
	r.mu.Unlock()
}

func (r *toneRelay) Play(tone game.Tone, volume float64) {
	r.mu.Lock()
	send := r.send
	r.mu.Unlock()
	if send == nil || volume <= 0 {
		return
	}
	go send(toneMsg{tone: tone})
}

func notifyProgram(p *tea.Program) func() {
	return func() {
		go p.Send(stateMsg{})
	}
}
