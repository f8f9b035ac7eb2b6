package view

import (
	"fmt"
	"strings"

	"github.com/glabrego/cargonav/internal/content"
	"github.com/glabrego/cargonav/internal/render/richtext"
	tuitheme "github.com/glabrego/cargonav/internal/tui/theme"
)

type HeroParams struct {
	Slide    content.Slide
	Index    int
	Count    int
	Revealed string
	Width    int
}

// Hero renders the current slide. Revealed is the part of the description
// shown so far by the entrance animation.
func Hero(p HeroParams, th tuitheme.Theme) []string {
	width := max(20, p.Width)
	lines := []string{
		"",
		"  ✈  " + th.SlideName.Render(p.Slide.Name),
		"",
	}
	for _, line := range richtext.Wrap(p.Revealed, width-4) {
		lines = append(lines, "  "+th.SlideDesc.Render(line))
	}
	if p.Slide.Alt != "" {
		lines = append(lines, "  "+th.Muted.Render("("+p.Slide.Alt+")"))
	}
	lines = append(lines, "")
	if p.Slide.CTA != "" {
		lines = append(lines, "  "+th.SlideCTA.Render(p.Slide.CTA+" ›"))
	}
	dots := make([]string, p.Count)
	for i := range dots {
		dots[i] = "○"
		if i == p.Index {
			dots[i] = "●"
		}
	}
	lines = append(lines, "", "  ‹ "+strings.Join(dots, " ")+" ›", "")
	return lines
}

func About(about content.About, width int, th tuitheme.Theme) []string {
	width = max(20, width)
	lines := []string{th.CardTitle.Render(strings.ToUpper(about.Heading)), th.Muted.Render("»»»"), ""}
	lines = append(lines, richtext.Lines(about.Body, width)...)
	for _, h := range about.Highlights {
		lines = append(lines, "", "  ● "+th.CardTitle.Render(h.Title))
		for _, line := range richtext.Wrap(h.Description, width-4) {
			lines = append(lines, "    "+th.CardBody.Render(line))
		}
	}
	return lines
}

func StaticPage(path, body string, width int, th tuitheme.Theme) []string {
	if body == "" {
		return []string{"", th.Muted.Render(fmt.Sprintf("Nothing here yet (%s).", path))}
	}
	return append([]string{""}, richtext.Lines(body, max(20, width))...)
}

// Section renders one page body as a block of the scrolling home page.
func Section(body string, width int, th tuitheme.Theme) []string {
	if body == "" {
		return nil
	}
	width = max(20, width)
	lines := []string{"", th.Muted.Render(strings.Repeat("─", min(width, 40))), ""}
	return append(lines, richtext.Lines(body, width)...)
}
