package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"drillcoach/internal/clock"
	"drillcoach/internal/game"
	"drillcoach/internal/ui"
)

const memoryCols = 4

// RunMemory opens the tile-matching minigame.
func RunMemory(out io.Writer, sfxVolume float64) error {
	relay := &toneRelay{}
	eng := game.NewMemory(relay, clock.Real(), sfxVolume, uint64(time.Now().UnixNano()))
	defer eng.Close()

	p := tea.NewProgram(newMemoryModel(eng), tea.WithOutput(out))
	relay.attach(p.Send)
	unsub := eng.Subscribe(notifyProgram(p))
	defer unsub()

	_, err := p.Run()
	return err
}

type memoryModel struct {
	eng    *game.Memory
	cursor int
	cue    string
}

func newMemoryModel(eng *game.Memory) memoryModel {
	return memoryModel{eng: eng}
}

func (m memoryModel) Init() tea.Cmd {
	return nil
}

func (m memoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		return m, nil
	case toneMsg:
		switch msg.tone {
		case game.ToneSuccess:
			m.cue = ui.Good.Render("match!")
		case game.ToneError:
			m.cue = ui.Bad.Render("no match")
		default:
			m.cue = string(msg.tone)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			if m.cursor%memoryCols > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor%memoryCols < memoryCols-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor >= memoryCols {
				m.cursor -= memoryCols
			}
		case "down", "j":
			if m.cursor < game.MemoryCells-memoryCols {
				m.cursor += memoryCols
			}
		case "enter", " ":
			m.eng.Flip(m.cursor)
		}
		return m, nil
	}
	return m, nil
}

func (m memoryModel) View() string {
	st := m.eng.State()

	header := fmt.Sprintf("%s Memory Drill | moves: %d", ui.IconGame, st.Moves)

	open := map[int]bool{}
	for _, i := range st.Open {
		open[i] = true
	}

	grid := ""
	for i := 0; i < game.MemoryCells; i++ {
		face := "▢"
		switch {
		case st.Matched[i]:
			face = ui.Good.Render(st.Deck[i])
		case open[i]:
			face = ui.Gold.Render(st.Deck[i])
		}

		cell := ui.Tile.Render(face)
		if i == m.cursor {
			cell = ui.TileCursor.Render(face)
		}
		grid += cell
		if i%memoryCols == memoryCols-1 {
			grid += "\n"
		}
	}

	keys := ui.Muted.Render("arrows: move   enter: flip   q: quit")
	return header + "\n\n" + grid + "\n" + keys + "\n" + m.cue + "\n"
}
