package parser

import (
	"strings"

	"github.com/dgallion1/docrtf/internal/doctree"
)

// sections returns the Section children of n.
func sections(n doctree.Node) []*doctree.Section {
	var out []*doctree.Section
	for _, c := range doctree.Children(n) {
		if s, ok := c.(*doctree.Section); ok {
			out = append(out, s)
		}
	}
	return out
}

// ofType returns the children of n with type T.
func ofType[T doctree.Node](n doctree.Node) []T {
	var out []T
	for _, c := range doctree.Children(n) {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// find returns the first node of type T below n.
func find[T doctree.Node](n doctree.Node) (T, bool) {
	var found T
	ok := false
	doctree.Walk(n, func(c doctree.Node) bool {
		if ok {
			return false
		}
		if t, is := c.(T); is {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

func nodeText(n doctree.Node) string {
	return strings.TrimSpace(doctree.PlainText(n))
}
