package richtext

import "github.com/charmbracelet/lipgloss"

var (
	amber400 = lipgloss.Color("#fbbf24")
	amber300 = lipgloss.Color("#fcd34d")
	blue400  = lipgloss.Color("#60a5fa")
	zinc200  = lipgloss.Color("#e4e4e7")
	zinc500  = lipgloss.Color("#71717a")

	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(amber400)
	strongStyle   = lipgloss.NewStyle().Bold(true).Foreground(zinc200)
	emphasisStyle = lipgloss.NewStyle().Italic(true).Foreground(amber300)
	linkStyle     = lipgloss.NewStyle().Foreground(blue400).Underline(true)
	markerStyle   = lipgloss.NewStyle().Foreground(amber400)
	ruleStyle     = lipgloss.NewStyle().Foreground(zinc500)
)
