package display

import (
	"github.com/charmbracelet/lipgloss"

	"SignalBoard/internal/model"
)

const panelWidth = 72

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 1).
			Width(panelWidth)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	footerStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#9CA3AF"))

	signalColors = map[model.Signal]lipgloss.Color{
		model.SignalBuy:  lipgloss.Color("#10B981"),
		model.SignalSell: lipgloss.Color("#EF4444"),
		model.SignalHold: lipgloss.Color("#F59E0B"),
	}
)

func signalStyle(s model.Signal) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(signalColors[s])
}

func predictionStyle(s model.Signal) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(signalColors[s]).
		Padding(0, 2).
		Width(panelWidth)
}
