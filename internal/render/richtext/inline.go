package richtext

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

func (r renderer) renderInlineChildren(node *nethtml.Node) string {
	parts := make([]string, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		parts = append(parts, r.renderInlineNode(child))
	}
	return strings.Join(parts, " ")
}

func (r renderer) renderInlineNode(node *nethtml.Node) string {
	if node == nil {
		return ""
	}
	switch node.Type {
	case nethtml.TextNode:
		return node.Data
	case nethtml.ElementNode:
		tag := strings.ToLower(node.Data)
		switch tag {
		case "script", "style", "noscript", "img":
			return ""
		case "br":
			return "\n"
		case "strong", "b":
			return styleWords(normalizeInlineText(r.renderInlineChildren(node)), strongStyle.Render)
		case "em", "i":
			return styleWords(normalizeInlineText(r.renderInlineChildren(node)), emphasisStyle.Render)
		case "a":
			text := normalizeInlineText(r.renderInlineChildren(node))
			href := nodeAttr(node, "href")
			switch {
			case href == "":
				return text
			case text == "" || strings.EqualFold(text, href):
				return linkStyle.Render(href)
			default:
				return text + " (" + linkStyle.Render(href) + ")"
			}
		default:
			return r.renderInlineChildren(node)
		}
	default:
		return ""
	}
}

// styleWords styles each word on its own so wrapping never splits an escape
// sequence across lines.
func styleWords(text string, render func(...string) string) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = render(w)
	}
	return strings.Join(words, " ")
}

func normalizeInlineText(s string) string {
	s = html.UnescapeString(s)
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	normalized := strings.Join(out, "\n")
	replacer := strings.NewReplacer(
		" .", ".",
		" ,", ",",
		" ;", ";",
		" :", ":",
		" !", "!",
		" ?", "?",
		" )", ")",
		"( ", "(",
	)
	return replacer.Replace(normalized)
}
