package doctree

import (
	"strings"
	"unicode"
)

// Words splits s into alternating Word and Whitespace nodes, keeping the
// original separator characters.
func Words(s string) []Node {
	var nodes []Node
	start := 0
	inSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			nodes = append(nodes, textNode(s[start:i], inSpace))
			start = i
			inSpace = space
		}
	}
	if start < len(s) {
		nodes = append(nodes, textNode(s[start:], inSpace))
	}
	return nodes
}

func textNode(s string, space bool) Node {
	if space {
		return &Whitespace{Chars: s}
	}
	return &Word{Text: s}
}

// PlainText concatenates the words and whitespace below n. Used for titles
// and content hashes.
func PlainText(n Node) string {
	var sb strings.Builder
	Walk(n, func(c Node) bool {
		switch t := c.(type) {
		case *Word:
			sb.WriteString(t.Text)
		case *LinkedWord:
			sb.WriteString(t.Text)
		case *Whitespace:
			sb.WriteString(t.Chars)
		case *URL:
			sb.WriteString(t.Text)
		case *Verbatim:
			sb.WriteString(t.Text)
		}
		return true
	})
	return sb.String()
}
