package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/comment-filter/internal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	dangerButtonStyle = buttonStyle.
				Background(lipgloss.Color("160"))

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("242")).
				Background(lipgloss.Color("237")).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	inFilterCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Width(16).
			Padding(0, 1)

	notInFilterCard = inFilterCard.
			BorderForeground(lipgloss.Color("196"))

	showBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	hideBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2).
			Width(52)

	selectedOptionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25"))

	severityStyles = map[internal.Severity]lipgloss.Style{
		internal.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		internal.SeveritySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		internal.SeverityWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		internal.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// userColor renders s in the identity's accent color
func userColor(id internal.Identity, s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(id.Color)).Render(s)
}
