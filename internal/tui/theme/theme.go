package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Brand       lipgloss.Style
	Header      lipgloss.Style
	NavItem     lipgloss.Style
	NavActive   lipgloss.Style
	Tagline     lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Input       lipgloss.Style
	Chip        lipgloss.Style
	ChipActive  lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Dimmed      lipgloss.Style
	Drawer      lipgloss.Style
	SlideName   lipgloss.Style
	SlideDesc   lipgloss.Style
	SlideCTA    lipgloss.Style
	CardTitle   lipgloss.Style
	CardBody    lipgloss.Style
	MetaLabel   lipgloss.Style
	MetaValue   lipgloss.Style
	StateIdle   lipgloss.Style
	StateWarn   lipgloss.Style
	PinnedBadge lipgloss.Style
}

func Default() Theme {
	amber300 := lipgloss.Color("#fcd34d")
	amber400 := lipgloss.Color("#fbbf24")
	amber500 := lipgloss.Color("#f59e0b")
	amber50 := lipgloss.Color("#fffbeb")
	zinc300 := lipgloss.Color("#d4d4d8")
	zinc400 := lipgloss.Color("#a1a1aa")
	zinc600 := lipgloss.Color("#52525b")
	zinc800 := lipgloss.Color("#27272a")
	zinc900 := lipgloss.Color("#18181b")
	blue600 := lipgloss.Color("#2563eb")
	blue800 := lipgloss.Color("#1e40af")
	red400 := lipgloss.Color("#f87171")
	green400 := lipgloss.Color("#4ade80")
	white := lipgloss.Color("#ffffff")

	return Theme{
		Brand:      lipgloss.NewStyle().Bold(true).Foreground(amber400),
		Header:     lipgloss.NewStyle().Background(zinc800).Foreground(amber50).Padding(0, 1),
		NavItem:    lipgloss.NewStyle().Foreground(amber50),
		NavActive:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(amber400),
		Tagline:    lipgloss.NewStyle().Bold(true).Foreground(amber400),
		Panel:      lipgloss.NewStyle().Background(zinc900).Foreground(white).Padding(1, 2).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(amber400),
		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(amber300),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(amber400).Padding(0, 1),
		Chip:       lipgloss.NewStyle().Background(amber500).Foreground(zinc900).Padding(0, 1),
		ChipActive: lipgloss.NewStyle().Background(amber400).Foreground(zinc900).Bold(true).Padding(0, 1),
		Muted:      lipgloss.NewStyle().Foreground(zinc400),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(red400),
		Dimmed:     lipgloss.NewStyle().Faint(true).Foreground(zinc600),
		Drawer: lipgloss.NewStyle().
			Background(zinc900).
			Foreground(white).
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(amber400),
		SlideName:   lipgloss.NewStyle().Bold(true).Foreground(white),
		SlideDesc:   lipgloss.NewStyle().Bold(true).Foreground(amber50),
		SlideCTA:    lipgloss.NewStyle().Background(blue600).Foreground(white).Bold(true).Padding(0, 2),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(blue800),
		CardBody:    lipgloss.NewStyle().Foreground(zinc300),
		MetaLabel:   lipgloss.NewStyle().Foreground(zinc400),
		MetaValue:   lipgloss.NewStyle().Foreground(zinc300),
		StateIdle:   lipgloss.NewStyle().Foreground(green400),
		StateWarn:   lipgloss.NewStyle().Foreground(red400),
		PinnedBadge: lipgloss.NewStyle().Foreground(zinc900).Background(amber400).Padding(0, 1),
	}
}

// RenderNavItem styles a nav label, highlighting the current page.
func (t Theme) RenderNavItem(label string, active bool) string {
	if active {
		return t.NavActive.Render(label)
	}
	return t.NavItem.Render(label)
}

// RenderChip styles one recent-search chip.
func (t Theme) RenderChip(label string, selected bool) string {
	if selected {
		return t.ChipActive.Render(label + " ×")
	}
	return t.Chip.Render(label + " ×")
}
