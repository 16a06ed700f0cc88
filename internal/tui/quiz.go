package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"drillcoach/internal/clock"
	"drillcoach/internal/game"
	"drillcoach/internal/ui"
)

// RunQuiz opens the timed quiz minigame.
func RunQuiz(out io.Writer, sfxVolume float64) error {
	relay := &toneRelay{}
	eng := game.NewQuiz(relay, clock.Real(), sfxVolume)
	defer eng.Stop()

	p := tea.NewProgram(newQuizModel(eng), tea.WithOutput(out))
	relay.attach(p.Send)
	unsub := eng.Subscribe(notifyProgram(p))
	defer unsub()

	_, err := p.Run()
	return err
}

type quizModel struct {
	eng *game.Quiz
	cue string
}

func newQuizModel(eng *game.Quiz) quizModel {
	return quizModel{eng: eng}
}

// Init starts the countdown once the program loop is consuming messages.
func (m quizModel) Init() tea.Cmd {
	return func() tea.Msg {
		m.eng.Start()
		return stateMsg{}
	}
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		return m, nil
	case toneMsg:
		switch msg.tone {
		case game.ToneSuccess:
			m.cue = ui.Good.Render("correct! +10")
		case game.ToneError:
			m.cue = ui.Bad.Render("wrong, score reset")
		case game.ToneTimeout:
			m.cue = ui.Warn.Render("time! back to level 1")
		default:
			m.cue = string(msg.tone)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3", "4":
			m.eng.Answer(int(msg.String()[0] - '1'))
		}
		return m, nil
	}
	return m, nil
}

func (m quizModel) View() string {
	st := m.eng.State()

	header := fmt.Sprintf("%s Quiz Drill | level %d | score %d", ui.IconGame, st.Level, st.Score)
	timer := fmt.Sprintf("%s %2ds %s", ui.IconBolt, st.Remaining,
		ui.ProgressBar(st.Remaining, game.TimeForLevel(st.Level), 20))

	body := ui.H2.Render(st.Question.Text) + "\n\n"
	for i, opt := range st.Question.Options {
		body += fmt.Sprintf("  %d) %s\n", i+1, opt)
	}

	keys := ui.Muted.Render("1-4: answer   q: quit")
	return header + "\n" + timer + "\n\n" + body + "\n" + keys + "\n" + m.cue + "\n"
}
