package view

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/glabrego/cargonav/internal/navbar"
	tuitheme "github.com/glabrego/cargonav/internal/tui/theme"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Mode names the input context shown in the toolbar.
type Mode string

const (
	ModePage   Mode = "page"
	ModeSearch Mode = "search"
	ModeDrawer Mode = "menu"
)

func Toolbar(mode Mode) string {
	switch mode {
	case ModeSearch:
		return "type tracking number | enter search | ↑/↓ recent | ctrl+d delete | ctrl+l clear all | esc close"
	case ModeDrawer:
		return "j/k move | enter go | esc close"
	default:
		return "j/k scroll | h/l slides | enter follow | / track | m menu | q quit"
	}
}

type HeaderParams struct {
	Brand      string
	Tagline    string
	ActivePath string
	Pinned     bool
	Width      int
}

// Header renders the nav bar. When pinned it collapses to one compact line
// that stays at the top of the screen.
func Header(p HeaderParams, th tuitheme.Theme) string {
	labels := make([]string, 0, len(navbar.Items))
	for _, item := range navbar.Items {
		labels = append(labels, th.RenderNavItem(item.Label, item.Path == p.ActivePath))
	}
	nav := strings.Join(labels, "  ")
	brand := th.Brand.Render(p.Brand)
	search := th.Tagline.Render(p.Tagline) + " [/]  ☰ [m]"

	if p.Pinned {
		line := brand + "  " + nav + "  " + th.PinnedBadge.Render("/ track")
		return th.Header.Render(truncateVisible(line, p.Width))
	}

	top := brand + pad(p.Width-visibleLen(brand)-visibleLen(search)-2) + search
	return th.Header.Render(top) + "\n" + th.Header.Render(truncateVisible(nav, p.Width))
}

type FooterParams struct {
	Path        string
	Slide       int
	Slides      int
	Recent      int
	Pinned      bool
	Overlay     string
	Status      string
	StatusIsErr bool
}

func Footer(p FooterParams, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("page") + " " + th.MetaValue.Render(p.Path),
		th.MetaLabel.Render("slide") + " " + th.MetaValue.Render(fmt.Sprintf("%d/%d", p.Slide+1, p.Slides)),
		th.MetaLabel.Render("recent") + " " + th.MetaValue.Render(fmt.Sprintf("%d", p.Recent)),
	}
	if p.Pinned {
		parts = append(parts, th.MetaValue.Render("pinned"))
	}
	if p.Overlay != "" {
		parts = append(parts, th.MetaLabel.Render("overlay")+" "+th.MetaValue.Render(p.Overlay))
	}
	return strings.Join(parts, " • ") + "\n" + StatusLine(p.Status, p.StatusIsErr, th)
}

func StatusLine(status string, isErr bool, th tuitheme.Theme) string {
	if status == "" {
		return th.StateIdle.Render("ready")
	}
	if isErr {
		return th.StateWarn.Render("error") + ": " + status
	}
	return th.StateIdle.Render("ok") + ": " + th.MetaValue.Render(status)
}

func pad(n int) string {
	if n < 1 {
		return " "
	}
	return strings.Repeat(" ", n)
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

func StripANSI(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}

// truncateVisible cuts plain text to width runes. Styled text is returned
// unchanged when it already fits and stripped of styling when it does not.
func truncateVisible(s string, width int) string {
	if width <= 0 || visibleLen(s) <= width {
		return s
	}
	return truncateRunes(StripANSI(s), width)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= 3 {
		return string([]rune(s)[:limit])
	}
	return string([]rune(s)[:limit-3]) + "..."
}
