package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/docrtf/internal/doctree"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

var alertKinds = map[string]doctree.SimpleSectionKind{
	"[!NOTE]":      doctree.SectNote,
	"[!TIP]":       doctree.SectRemark,
	"[!IMPORTANT]": doctree.SectAttention,
	"[!WARNING]":   doctree.SectWarning,
	"[!CAUTION]":   doctree.SectWarning,
}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Root, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	c := &mdConverter{src: src, b: newTreeBuilder(filename)}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			c.b.heading(h.Level, plainText(h, src))
			continue
		}
		for _, block := range c.block(n) {
			c.b.add(block)
		}
	}
	return c.b.finish(), nil
}

type mdConverter struct {
	src []byte
	b   *treeBuilder
}

// block converts one block-level node.
func (c *mdConverter) block(n ast.Node) []doctree.Node {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		inl := c.inlines(n)
		if len(inl) == 0 {
			return nil
		}
		return []doctree.Node{&doctree.Paragraph{Branch: doctree.Of(inl...)}}
	case *ast.Heading:
		// Headings nested in lists or quotes stay inline.
		return []doctree.Node{&doctree.HTMLHeader{Branch: doctree.Of(c.inlines(n)...), Level: node.Level}}
	case *ast.FencedCodeBlock:
		return []doctree.Node{&doctree.Verbatim{
			Type:    doctree.VerbatimCode,
			Context: string(node.Language(c.src)),
			Text:    c.lines(n),
		}}
	case *ast.CodeBlock:
		return []doctree.Node{&doctree.Verbatim{Type: doctree.VerbatimCode, Text: c.lines(n)}}
	case *ast.HTMLBlock:
		return []doctree.Node{&doctree.Verbatim{Type: doctree.VerbatimHTMLOnly, Text: c.lines(n)}}
	case *ast.ThematicBreak:
		return []doctree.Node{&doctree.HorizontalRule{}}
	case *ast.List:
		list := &doctree.AutoList{Ordered: node.IsOrdered()}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			list.Nodes = append(list.Nodes, &doctree.AutoListItem{Branch: doctree.Of(c.blocks(item)...)})
		}
		return []doctree.Node{list}
	case *ast.Blockquote:
		return c.blockquote(node)
	case *east.Table:
		return []doctree.Node{c.table(node)}
	}
	return c.blocks(n)
}

func (c *mdConverter) blocks(parent ast.Node) []doctree.Node {
	var out []doctree.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.block(n)...)
	}
	return out
}

// blockquote maps GitHub alerts ("> [!NOTE]") to labeled sections and keeps
// plain quotes as italic paragraphs.
func (c *mdConverter) blockquote(q *ast.Blockquote) []doctree.Node {
	body := c.blocks(q)
	if first, ok := q.FirstChild().(*ast.Paragraph); ok {
		marker := strings.TrimSpace(firstLine(first, c.src))
		if kind, ok := alertKinds[strings.ToUpper(marker)]; ok {
			if len(body) > 0 {
				if para, ok := body[0].(*doctree.Paragraph); ok {
					para.Nodes = trimMarker(para.Nodes)
					if len(para.Nodes) == 0 {
						body = body[1:]
					}
				}
			}
			return []doctree.Node{&doctree.SimpleSection{Branch: doctree.Of(body...), Type: kind}}
		}
	}
	for _, n := range body {
		if p, ok := n.(*doctree.Paragraph); ok {
			p.Nodes = styled(doctree.Italic, p.Nodes...)
		}
	}
	return body
}

// trimMarker drops the alert marker line from the start of a paragraph.
func trimMarker(nodes []doctree.Node) []doctree.Node {
	for i, n := range nodes {
		if isBreak(n) {
			rest := nodes[i+1:]
			for len(rest) > 0 && isSpace(rest[0]) {
				rest = rest[1:]
			}
			return rest
		}
	}
	return nil
}

func isBreak(n doctree.Node) bool {
	switch n := n.(type) {
	case *doctree.LineBreak:
		return true
	case *doctree.Whitespace:
		return strings.Contains(n.Chars, "\n")
	}
	return false
}

func isSpace(n doctree.Node) bool {
	_, ok := n.(*doctree.Whitespace)
	return ok || isBreak(n)
}

func (c *mdConverter) table(t *east.Table) *doctree.HTMLTable {
	cols := max(len(t.Alignments), 1)
	table := &doctree.HTMLTable{Columns: cols}
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		_, header := row.(*east.TableHeader)
		r := &doctree.HTMLTableRow{}
		i := 0
		for cell := row.FirstChild(); cell != nil && i < cols; cell = cell.NextSibling() {
			inl := c.inlines(cell)
			if header && len(inl) > 0 {
				inl = styled(doctree.Bold, inl...)
			}
			r.Nodes = append(r.Nodes, &doctree.HTMLTableCell{Branch: doctree.Of(inl...)})
			i++
		}
		for ; i < cols; i++ {
			r.Nodes = append(r.Nodes, &doctree.HTMLTableCell{})
		}
		r.Nodes[len(r.Nodes)-1].(*doctree.HTMLTableCell).IsLast = true
		table.Nodes = append(table.Nodes, r)
	}
	return table
}

// inlines converts the inline children of n.
func (c *mdConverter) inlines(n ast.Node) []doctree.Node {
	var out []doctree.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.inline(child)...)
	}
	return out
}

func (c *mdConverter) inline(n ast.Node) []doctree.Node {
	switch node := n.(type) {
	case *ast.Text:
		out := doctree.Words(string(node.Segment.Value(c.src)))
		switch {
		case node.HardLineBreak():
			out = append(out, &doctree.LineBreak{})
		case node.SoftLineBreak():
			out = append(out, &doctree.Whitespace{Chars: "\n"})
		}
		return out
	case *ast.String:
		return doctree.Words(string(node.Value))
	case *ast.CodeSpan:
		return styled(doctree.Code, doctree.Words(plainText(node, c.src))...)
	case *ast.Emphasis:
		style := doctree.Italic
		if node.Level >= 2 {
			style = doctree.Bold
		}
		return styled(style, c.inlines(node)...)
	case *ast.Link:
		dest := string(node.Destination)
		if anchor, ok := strings.CutPrefix(dest, "#"); ok {
			return []doctree.Node{&doctree.InternalReference{
				Branch: doctree.Of(c.inlines(node)...),
				File:   c.b.file,
				Anchor: anchor,
			}}
		}
		return []doctree.Node{&doctree.HRef{Branch: doctree.Of(c.inlines(node)...), URL: dest}}
	case *ast.AutoLink:
		return []doctree.Node{&doctree.URL{Text: string(node.URL(c.src))}}
	case *ast.Image:
		return []doctree.Node{image(string(node.Destination), c.inlines(node))}
	case *ast.RawHTML:
		return nil
	}
	return c.inlines(n)
}

// lines joins the raw source lines of a block.
func (c *mdConverter) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(c.src))
	}
	return buf.String()
}

// plainText gets the text content of a goldmark AST node.
func plainText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(plainText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}

// firstLine returns the first source line of a paragraph.
func firstLine(p *ast.Paragraph, src []byte) string {
	if p.Lines().Len() == 0 {
		return ""
	}
	seg := p.Lines().At(0)
	return string(seg.Value(src))
}
