package view

import (
	"strings"

	"github.com/glabrego/cargonav/internal/navbar"
	"github.com/glabrego/cargonav/internal/tracking"
	tuitheme "github.com/glabrego/cargonav/internal/tui/theme"
)

type SearchPanelParams struct {
	Brand    string
	Input    string
	Message  string
	Recent   []tracking.Query
	Selected int
	Width    int
}

func SearchPanel(p SearchPanelParams, th tuitheme.Theme) string {
	var b strings.Builder
	b.WriteString(th.PanelTitle.Render(p.Brand) + "  " + th.Muted.Render("Track Your Package") + "\n\n")
	b.WriteString(th.Input.Render(p.Input) + "\n")
	if p.Message != "" {
		b.WriteString(th.Error.Render("✗ "+p.Message) + "\n")
	}
	b.WriteString("\n" + th.PanelTitle.Render("Recently Searched:") + "\n")
	if len(p.Recent) == 0 {
		b.WriteString(th.Muted.Render("No recent searches found."))
	} else {
		chips := make([]string, 0, len(p.Recent))
		for i, q := range p.Recent {
			chips = append(chips, th.RenderChip(q.String(), i == p.Selected))
		}
		b.WriteString(strings.Join(chips, " "))
	}
	style := th.Panel
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	return style.Render(b.String())
}

type DrawerParams struct {
	ActivePath string
	Cursor     int
	Width      int
}

func Drawer(p DrawerParams, th tuitheme.Theme) string {
	lines := make([]string, 0, len(navbar.Items)+2)
	lines = append(lines, th.Muted.Render("esc ✕"), "")
	for i, item := range navbar.Items {
		marker := "  "
		if i == p.Cursor {
			marker = "> "
		}
		lines = append(lines, marker+th.RenderNavItem(item.Label, item.Path == p.ActivePath))
	}
	style := th.Drawer
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Dim fades page content behind an open overlay.
func Dim(lines []string, th tuitheme.Theme) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = th.Dimmed.Render(StripANSI(line))
	}
	return out
}
