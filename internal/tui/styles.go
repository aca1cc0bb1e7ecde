package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#2563EB")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSubtle  = lipgloss.Color("#374151")
	colorFg      = lipgloss.Color("#E5E7EB")
	colorRed     = lipgloss.Color("#EF4444")
	colorAmber   = lipgloss.Color("#F59E0B")
	colorGreen   = lipgloss.Color("#10B981")
	colorGray    = lipgloss.Color("#9CA3AF")
	colorPurple  = lipgloss.Color("#8B5CF6")
)

// Styles
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 2).
			Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)
)

// ddayStyle colors a D-Day badge.
func ddayStyle(c dashboard.Color) lipgloss.Style {
	switch c {
	case dashboard.ColorRed:
		return badgeStyle.Foreground(colorRed)
	case dashboard.ColorAmber:
		return badgeStyle.Foreground(colorAmber)
	case dashboard.ColorGreen:
		return badgeStyle.Foreground(colorGreen)
	}
	return badgeStyle.Foreground(colorGray)
}

// logTypeStyle tints a log type tag.
func logTypeStyle(t domain.LogType) lipgloss.Style {
	switch t {
	case domain.LogTypeBug:
		return lipgloss.NewStyle().Foreground(colorRed)
	case domain.LogTypeDecision:
		return lipgloss.NewStyle().Foreground(colorPurple)
	case domain.LogTypeMeeting:
		return lipgloss.NewStyle().Foreground(colorAmber)
	case domain.LogTypeAlignment, domain.LogTypeCalibration, domain.LogTypeAccuracy:
		return lipgloss.NewStyle().Foreground(colorGreen)
	}
	return mutedStyle
}
