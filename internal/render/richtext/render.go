// Package richtext renders the small HTML fragments used in site copy as
// wrapped, styled terminal lines.
package richtext

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type renderer struct {
	width int
}

// Lines renders an HTML fragment wrapped to width columns.
func Lines(fragment string, width int) []string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	if err != nil {
		return Wrap(strings.TrimSpace(html.UnescapeString(fragment)), width)
	}
	body := findBodyNode(doc)
	if body == nil {
		return Wrap(strings.TrimSpace(html.UnescapeString(fragment)), width)
	}
	r := renderer{width: max(1, width)}
	return trimBlankLines(r.renderNodes(elementChildren(body)))
}

// PlainText renders fragment without styling, one paragraph per line.
func PlainText(fragment string) string {
	lines := Lines(fragment, 1<<16)
	for i, line := range lines {
		lines[i] = stripANSI(line)
	}
	return strings.Join(lines, "\n")
}

func trimBlankLines(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines) - 1
	for end >= start && strings.TrimSpace(lines[end]) == "" {
		end--
	}
	if end < start {
		return nil
	}
	out := make([]string, 0, end-start+1)
	prevBlank := false
	for i := start; i <= end; i++ {
		blank := strings.TrimSpace(lines[i]) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, lines[i])
		prevBlank = blank
	}
	return out
}

// Wrap breaks text into lines of at most width visible runes. Styled words are
// measured without their escape codes.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		lineLen := 0
		for _, word := range words {
			wordLen := visibleLen(word)
			if line == "" {
				line, lineLen = word, wordLen
				continue
			}
			if lineLen+1+wordLen <= width {
				line += " " + word
				lineLen += 1 + wordLen
				continue
			}
			out = append(out, line)
			line, lineLen = word, wordLen
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSI(s))
}

func stripANSI(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}

func findBodyNode(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "body") {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBodyNode(child); found != nil {
			return found
		}
	}
	return nil
}

func elementChildren(node *nethtml.Node) []*nethtml.Node {
	children := make([]*nethtml.Node, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func nodeAttr(node *nethtml.Node, name string) string {
	for _, attr := range node.Attr {
		if strings.EqualFold(attr.Key, name) {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}
