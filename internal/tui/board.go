package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"drillcoach/internal/engine"
	"drillcoach/internal/ui"
)

// RunBoard opens the mission dashboard.
func RunBoard(ctx context.Context, store *engine.Store, profile *engine.Profile, out io.Writer) error {
	m := newBoardModel(ctx, store, profile)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type boardModel struct {
	ctx     context.Context
	store   *engine.Store
	profile *engine.Profile

	width  int
	height int

	missions []engine.Mission
	xp       int

	selected int
	lastLog  string
}

type toggledMsg struct {
	mission *engine.Mission
	rankUp  bool
	err     error
}

type recommendedMsg struct {
	added []engine.Mission
	err   error
}

func newBoardModel(ctx context.Context, store *engine.Store, profile *engine.Profile) boardModel {
	return boardModel{
		ctx:      ctx,
		store:    store,
		profile:  profile,
		missions: store.Missions(),
		xp:       store.XP(),
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		before := m.store.Rank()
		mission, err := m.store.Toggle(m.ctx, id)
		after := m.store.Rank()
		return toggledMsg{mission: mission, rankUp: after.Level > before.Level, err: err}
	}
}

func (m boardModel) recommendCmd() tea.Cmd {
	return func() tea.Msg {
		added, err := m.store.Recommend(m.ctx, m.profile.Goal, time.Now().Hour())
		return recommendedMsg{added: added, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		if msg.mission == nil {
			m.lastLog = "No such mission."
			return m, nil
		}
		if msg.mission.Done {
			m.lastLog = fmt.Sprintf("Completed %q: +%d XP", msg.mission.Title, engine.MissionXPBonus)
			if msg.rankUp {
				m.lastLog += "  " + ui.BadgeRankUp
			}
		} else {
			m.lastLog = fmt.Sprintf("Reopened %q.", msg.mission.Title)
		}
		m.missions = m.store.Missions()
		m.xp = m.store.XP()
		return m, nil
	case recommendedMsg:
		if msg.err != nil {
			m.lastLog = "Recommend failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Added %d recommended missions.", len(msg.added))
		m.missions = m.store.Missions()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.missions)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.missions) {
				return m, nil
			}
			target := m.missions[m.selected]
			m.lastLog = fmt.Sprintf("Toggling %q…", target.Title)
			return m, m.toggleCmd(target.ID)
		case "r":
			m.lastLog = "Asking the coach…"
			return m, m.recommendCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	rank := engine.RankForXP(m.xp)
	header := fmt.Sprintf("%s DrillCoach | %s %s (level %d) | XP %d %s",
		ui.IconCoach, ui.IconRank, rank.Name, rank.Level, m.xp, m.xpBar())

	body := ""
	if len(m.missions) == 0 {
		body = ui.Muted.Render("(no missions, press r for recommendations)")
	} else {
		for i, mission := range m.missions {
			cursor := "  "
			line := fmt.Sprintf("%s %s", ui.MissionIcon(mission.Done), mission.Title)
			if i == m.selected {
				cursor = "> "
				line = ui.SelectedRow.Render(line)
			} else if mission.Done {
				line = ui.Muted.Render(line)
			}
			body += cursor + line + "\n"
		}
	}

	keys := ui.Muted.Render("j/k: move   space: toggle   r: recommend   q: quit")
	return header + "\n\n" + body + "\n" + keys + "\n" + m.lastLog + "\n"
}

func (m boardModel) xpBar() string {
	next, ok := engine.NextRankThreshold(m.xp)
	if !ok {
		return ui.Gold.Render("[top rank]")
	}
	return ui.ProgressBar(m.xp, next, 20)
}
