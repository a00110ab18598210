package parser

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/dgallion1/docrtf/internal/doctree"
)

type sectionFrame struct {
	branch *doctree.Branch
	level  int
}

// treeBuilder nests content under the most recent heading of a lower level.
type treeBuilder struct {
	root    *doctree.Root
	file    string
	stack   []sectionFrame
	anchors map[string]int
}

func newTreeBuilder(filename string) *treeBuilder {
	root := &doctree.Root{Title: baseName(filename)}
	return &treeBuilder{
		root:    root,
		file:    baseName(filename),
		stack:   []sectionFrame{{branch: &root.Branch}},
		anchors: make(map[string]int),
	}
}

// heading opens a section at level, closing sections at the same or a
// deeper level first.
func (b *treeBuilder) heading(level int, title string) *doctree.Section {
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	sec := &doctree.Section{Level: level, Title: title, File: b.file, Anchor: b.anchor(title)}
	b.add(sec)
	b.stack = append(b.stack, sectionFrame{branch: &sec.Branch, level: level})
	return sec
}

// add appends n to the innermost open section.
func (b *treeBuilder) add(n doctree.Node) {
	top := b.stack[len(b.stack)-1].branch
	top.Nodes = append(top.Nodes, n)
}

// addText appends a paragraph of plain text, ignoring blank input.
func (b *treeBuilder) addText(text string) {
	if p := paragraph(text); p != nil {
		b.add(p)
	}
}

func (b *treeBuilder) finish() *doctree.Root {
	return b.root
}

// anchor returns a unique slug for title within the document.
func (b *treeBuilder) anchor(title string) string {
	slug := slugify(title)
	if slug == "" {
		slug = "section"
	}
	n := b.anchors[slug]
	b.anchors[slug] = n + 1
	if n > 0 {
		slug += "-" + strconv.Itoa(n)
	}
	return slug
}

func slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// paragraph builds a paragraph from text, or returns nil for blank text.
func paragraph(text string) *doctree.Paragraph {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return &doctree.Paragraph{Branch: doctree.Of(doctree.Words(text)...)}
}

// styled wraps nodes in a matching pair of style changes.
func styled(style doctree.Style, nodes ...doctree.Node) []doctree.Node {
	out := make([]doctree.Node, 0, len(nodes)+2)
	out = append(out, &doctree.StyleChange{Style: style, Enable: true})
	out = append(out, nodes...)
	return append(out, &doctree.StyleChange{Style: style})
}

// tableOf builds a table whose first row is rendered bold when header is set.
func tableOf(rows [][]string, header bool) *doctree.HTMLTable {
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	t := &doctree.HTMLTable{Columns: max(cols, 1)}
	for i, r := range rows {
		row := &doctree.HTMLTableRow{}
		for j := 0; j < t.Columns; j++ {
			cell := &doctree.HTMLTableCell{IsLast: j == t.Columns-1}
			if j < len(r) {
				words := doctree.Words(strings.TrimSpace(r[j]))
				if header && i == 0 && len(words) > 0 {
					words = styled(doctree.Bold, words...)
				}
				cell.Nodes = words
			}
			row.Nodes = append(row.Nodes, cell)
		}
		t.Nodes = append(t.Nodes, row)
	}
	return t
}

// image returns the node for an embedded picture. Graphviz sources become
// graphs rendered at output time.
func image(src string, caption []doctree.Node) doctree.Node {
	switch strings.ToLower(filepath.Ext(src)) {
	case ".dot", ".gv":
		return &doctree.ExternalGraphFile{Branch: doctree.Of(caption...), Path: src, HasCaption: len(caption) > 0}
	}
	return &doctree.Image{
		Branch:     doctree.Of(caption...),
		Format:     doctree.ImageRTF,
		Name:       src,
		HasCaption: len(caption) > 0,
	}
}
