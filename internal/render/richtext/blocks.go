package richtext

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	nethtml "golang.org/x/net/html"
)

func (r renderer) renderNodes(nodes []*nethtml.Node) []string {
	lines := make([]string, 0, len(nodes)*2)
	inlineParts := make([]string, 0, 4)
	appendBlock := func(block []string) {
		if len(block) == 0 {
			return
		}
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	flushInline := func() {
		text := normalizeInlineText(strings.Join(inlineParts, " "))
		inlineParts = inlineParts[:0]
		if text != "" {
			appendBlock(Wrap(text, r.width))
		}
	}

	for _, node := range nodes {
		switch node.Type {
		case nethtml.TextNode:
			inlineParts = append(inlineParts, node.Data)
		case nethtml.ElementNode:
			if isBlockElement(node.Data) {
				flushInline()
				appendBlock(r.renderBlock(node))
				continue
			}
			inlineParts = append(inlineParts, r.renderInlineNode(node))
		}
	}
	flushInline()
	return trimBlankLines(lines)
}

func (r renderer) renderBlock(node *nethtml.Node) []string {
	tag := strings.ToLower(node.Data)
	switch tag {
	case "script", "style", "noscript", "img":
		return nil
	case "h1", "h2", "h3", "h4", "h5", "h6":
		text := normalizeInlineText(r.renderInlineChildren(node))
		return styleNonBlankLines(Wrap(text, r.width), headingStyle)
	case "ul":
		return r.renderList(node, false)
	case "ol":
		return r.renderList(node, true)
	case "li":
		return r.renderListItem(node, "• ")
	case "hr":
		return []string{ruleStyle.Render(strings.Repeat("─", min(max(r.width, 3), 24)))}
	default:
		if hasBlockChild(node) {
			return r.renderNodes(elementChildren(node))
		}
		return Wrap(normalizeInlineText(r.renderInlineChildren(node)), r.width)
	}
}

func (r renderer) renderList(node *nethtml.Node, ordered bool) []string {
	lines := make([]string, 0, 8)
	itemIndex := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode || strings.ToLower(child.Data) != "li" {
			continue
		}
		itemIndex++
		marker := "• "
		if ordered {
			marker = fmt.Sprintf("%d. ", itemIndex)
		}
		lines = append(lines, r.renderListItem(child, marker)...)
	}
	return lines
}

func (r renderer) renderListItem(node *nethtml.Node, marker string) []string {
	text := normalizeInlineText(r.renderInlineChildren(node))
	if text == "" {
		return nil
	}
	first := markerStyle.Render(strings.TrimRight(marker, " ")) + " "
	rest := strings.Repeat(" ", visibleLen(marker))
	wrapped := Wrap(text, max(1, r.width-visibleLen(marker)))
	out := make([]string, 0, len(wrapped))
	for i, line := range wrapped {
		if i == 0 {
			out = append(out, first+line)
			continue
		}
		out = append(out, rest+line)
	}
	return out
}

func styleNonBlankLines(lines []string, style lipgloss.Style) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		out[i] = style.Render(line)
	}
	return out
}

func isBlockElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "h1", "h2", "h3", "h4", "h5", "h6",
		"p", "div", "section", "article", "header", "footer", "aside", "nav",
		"ul", "ol", "li", "img", "hr", "blockquote":
		return true
	default:
		return false
	}
}

func hasBlockChild(node *nethtml.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && isBlockElement(child.Data) {
			return true
		}
	}
	return false
}
