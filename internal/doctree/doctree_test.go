package doctree

import (
	"testing"
)

func TestWalk_DocumentOrder(t *testing.T) {
	root := &Root{
		Title: "doc",
		Branch: Of(
			&Paragraph{Branch: Of(&Word{Text: "a"}, &Whitespace{Chars: " "}, &Word{Text: "b"})},
			&AutoList{Ordered: true, Branch: Of(
				&AutoListItem{Branch: Of(&Word{Text: "c"})},
			)},
		),
	}

	var kinds []Kind
	Walk(root, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})

	want := []Kind{KindRoot, KindParagraph, KindWord, KindWhitespace, KindWord, KindAutoList, KindAutoListItem, KindWord}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("node[%d]: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	root := &Root{Branch: Of(&IndexEntry{Branch: Of(&Word{Text: "hidden"})}, &Word{Text: "shown"})}

	var words []string
	Walk(root, func(n Node) bool {
		if w, ok := n.(*Word); ok {
			words = append(words, w.Text)
		}
		return n.Kind() != KindIndexEntry
	})
	if len(words) != 1 || words[0] != "shown" {
		t.Errorf("expected only %q, got %v", "shown", words)
	}
}

func TestChildren_Leaf(t *testing.T) {
	if c := Children(&Word{Text: "x"}); c != nil {
		t.Errorf("expected nil children for leaf, got %v", c)
	}
}

func TestWords(t *testing.T) {
	nodes := Words("one  two\tthree")
	if len(nodes) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(nodes))
	}
	if ws, ok := nodes[1].(*Whitespace); !ok || ws.Chars != "  " {
		t.Errorf("expected whitespace %q, got %#v", "  ", nodes[1])
	}
	if w, ok := nodes[4].(*Word); !ok || w.Text != "three" {
		t.Errorf("expected word %q, got %#v", "three", nodes[4])
	}
}

func TestWords_LeadingSpaceAndEmpty(t *testing.T) {
	if n := Words(""); len(n) != 0 {
		t.Errorf("expected no nodes for empty input, got %d", len(n))
	}
	nodes := Words(" x")
	if len(nodes) != 2 || nodes[0].Kind() != KindWhitespace {
		t.Errorf("expected leading whitespace node, got %v", nodes)
	}
}

func TestPlainText(t *testing.T) {
	p := &Paragraph{Branch: Of(Words("Hello  world")...)}
	if got := PlainText(p); got != "Hello  world" {
		t.Errorf("expected %q, got %q", "Hello  world", got)
	}
}

func TestKindString(t *testing.T) {
	if KindHTMLTable.String() != "HTMLTable" {
		t.Errorf("expected %q, got %q", "HTMLTable", KindHTMLTable.String())
	}
	if Kind(999).String() != "Kind(?)" {
		t.Errorf("expected fallback name, got %q", Kind(999).String())
	}
}
