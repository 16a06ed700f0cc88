package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"drillcoach/internal/engine"
)

// DrillCoach theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconCoach   = "🪖"
	IconMission = "🎯"
	IconDone    = "✅"
	IconOpen    = "⬜"
	IconRank    = "🎖️"
	IconBolt    = "⚡"
	IconScale   = "⚖️"
	IconChat    = "💬"
	IconGame    = "🎮"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSound   = "🔊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cBlue    = lipgloss.Color("39")  // light blue
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Tile        = lipgloss.NewStyle().Padding(0, 1)
	TileCursor  = lipgloss.NewStyle().Padding(0, 1).Bold(true).Background(cPrimary)

	BadgeRankUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("RANK UP")
)

// bmiStyles is the fixed tier -> color table for the gauge.
var bmiStyles = map[string]lipgloss.Style{
	"blue":   lipgloss.NewStyle().Bold(true).Foreground(cBlue),
	"green":  lipgloss.NewStyle().Bold(true).Foreground(cGood),
	"orange": lipgloss.NewStyle().Bold(true).Foreground(cWarn),
	"red":    lipgloss.NewStyle().Bold(true).Foreground(cBad),
}

func BMIText(c engine.BMICategory) string {
	if st, ok := bmiStyles[c.GaugeColor()]; ok {
		return st.Render(string(c))
	}
	return string(c)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func MissionIcon(done bool) string {
	if done {
		return IconDone
	}
	return IconOpen
}

// ProgressBar renders value/total as a fixed-width ASCII bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
