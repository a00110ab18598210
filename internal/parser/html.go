package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dgallion1/docrtf/internal/doctree"
)

// HTMLParser handles HTML files.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Root, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	b := newTreeBuilder(filename)
	if title := findTitle(doc); title != "" {
		b.root.Title = title
	}

	c := &htmlConverter{file: b.file}
	body := findBody(doc)
	if body == nil {
		body = doc
	}
	for _, n := range c.blocks(body) {
		if h, ok := n.(*doctree.HTMLHeader); ok {
			b.heading(h.Level, strings.TrimSpace(doctree.PlainText(h)))
			continue
		}
		b.add(n)
	}
	return b.finish(), nil
}

type htmlConverter struct {
	file string
}

var inlineStyles = map[atom.Atom]doctree.Style{
	atom.B:      doctree.Bold,
	atom.Strong: doctree.Bold,
	atom.I:      doctree.Italic,
	atom.Em:     doctree.Italic,
	atom.Var:    doctree.Italic,
	atom.Code:   doctree.Code,
	atom.Tt:     doctree.Code,
	atom.Kbd:    doctree.Code,
	atom.Sub:    doctree.Subscript,
	atom.Sup:    doctree.Superscript,
	atom.Small:  doctree.Small,
	atom.Center: doctree.Center,
}

func skipped(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Nav, atom.Footer, atom.Header, atom.Head, atom.Noscript:
		return true
	}
	return n.Type == html.CommentNode
}

// blocks converts the children of parent into block nodes. Loose inline
// content between blocks is gathered into paragraphs.
func (c *htmlConverter) blocks(parent *html.Node) []doctree.Node {
	var out, pending []doctree.Node
	flush := func() {
		if p := trimmedParagraph(pending); p != nil {
			out = append(out, p)
		}
		pending = nil
	}
	for n := parent.FirstChild; n != nil; n = n.NextSibling {
		if skipped(n) {
			continue
		}
		if n.Type == html.ElementNode && isBlock(n) {
			flush()
			out = append(out, c.block(n)...)
			continue
		}
		pending = append(pending, c.inline(n)...)
	}
	flush()
	return out
}

func isBlock(n *html.Node) bool {
	if headingLevel(n.Data) > 0 {
		return true
	}
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Main, atom.Blockquote,
		atom.Ul, atom.Ol, atom.Dl, atom.Pre, atom.Table, atom.Hr, atom.Figure:
		return true
	}
	return false
}

func (c *htmlConverter) block(n *html.Node) []doctree.Node {
	if level := headingLevel(n.Data); level > 0 {
		return []doctree.Node{&doctree.HTMLHeader{Branch: doctree.Of(c.inlines(n)...), Level: level}}
	}
	switch n.DataAtom {
	case atom.P:
		if p := trimmedParagraph(c.inlines(n)); p != nil {
			return []doctree.Node{p}
		}
		return nil
	case atom.Ul, atom.Ol:
		list := &doctree.HTMLList{Ordered: n.DataAtom == atom.Ol}
		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if li.DataAtom == atom.Li {
				list.Nodes = append(list.Nodes, &doctree.HTMLListItem{Branch: doctree.Of(c.blocks(li)...)})
			}
		}
		return []doctree.Node{list}
	case atom.Dl:
		return []doctree.Node{c.descList(n)}
	case atom.Pre:
		return []doctree.Node{&doctree.HTMLPreformatted{Branch: doctree.Of(preformatted(n)...)}}
	case atom.Table:
		return []doctree.Node{c.table(n)}
	case atom.Hr:
		return []doctree.Node{&doctree.HorizontalRule{}}
	}
	return c.blocks(n)
}

func (c *htmlConverter) descList(n *html.Node) *doctree.HTMLDescList {
	dl := &doctree.HTMLDescList{}
	for d := n.FirstChild; d != nil; d = d.NextSibling {
		switch d.DataAtom {
		case atom.Dt:
			dl.Nodes = append(dl.Nodes, &doctree.HTMLDescTitle{Branch: doctree.Of(trimSpaceNodes(c.inlines(d))...)})
		case atom.Dd:
			dl.Nodes = append(dl.Nodes, &doctree.HTMLDescData{Branch: doctree.Of(c.blocks(d)...)})
		}
	}
	return dl
}

func (c *htmlConverter) table(n *html.Node) *doctree.HTMLTable {
	var rows []*html.Node
	var caption *html.Node
	var collect func(*html.Node)
	collect = func(p *html.Node) {
		for x := p.FirstChild; x != nil; x = x.NextSibling {
			switch x.DataAtom {
			case atom.Tr:
				rows = append(rows, x)
			case atom.Thead, atom.Tbody, atom.Tfoot:
				collect(x)
			case atom.Caption:
				caption = x
			}
		}
	}
	collect(n)

	cols := 1
	for _, tr := range rows {
		cols = max(cols, len(cells(tr)))
	}
	t := &doctree.HTMLTable{Columns: cols, HasCaption: caption != nil}
	for _, tr := range rows {
		row := &doctree.HTMLTableRow{}
		tds := cells(tr)
		for i := 0; i < cols; i++ {
			cell := &doctree.HTMLTableCell{IsLast: i == cols-1}
			if i < len(tds) {
				inl := trimSpaceNodes(c.inlines(tds[i]))
				if tds[i].DataAtom == atom.Th && len(inl) > 0 {
					inl = styled(doctree.Bold, inl...)
				}
				cell.Nodes = inl
			}
			row.Nodes = append(row.Nodes, cell)
		}
		t.Nodes = append(t.Nodes, row)
	}
	if caption != nil {
		t.Nodes = append(t.Nodes, &doctree.HTMLCaption{Branch: doctree.Of(trimSpaceNodes(c.inlines(caption))...)})
	}
	return t
}

func cells(tr *html.Node) []*html.Node {
	var out []*html.Node
	for td := tr.FirstChild; td != nil; td = td.NextSibling {
		if td.DataAtom == atom.Td || td.DataAtom == atom.Th {
			out = append(out, td)
		}
	}
	return out
}

func (c *htmlConverter) inlines(n *html.Node) []doctree.Node {
	var out []doctree.Node
	for x := n.FirstChild; x != nil; x = x.NextSibling {
		if skipped(x) {
			continue
		}
		out = append(out, c.inline(x)...)
	}
	return out
}

func (c *htmlConverter) inline(n *html.Node) []doctree.Node {
	switch n.Type {
	case html.TextNode:
		return doctree.Words(n.Data)
	case html.ElementNode:
	default:
		return nil
	}
	if style, ok := inlineStyles[n.DataAtom]; ok {
		return styled(style, c.inlines(n)...)
	}
	switch n.DataAtom {
	case atom.Br:
		return []doctree.Node{&doctree.LineBreak{}}
	case atom.Img:
		var caption []doctree.Node
		if alt := strings.TrimSpace(attr(n, "alt")); alt != "" {
			caption = doctree.Words(alt)
		}
		return []doctree.Node{image(attr(n, "src"), caption)}
	case atom.A:
		var out []doctree.Node
		if id := attr(n, "name"); id != "" {
			out = append(out, &doctree.Anchor{ID: id, File: c.file})
		}
		href := attr(n, "href")
		switch {
		case href == "":
			return append(out, c.inlines(n)...)
		case strings.HasPrefix(href, "#"):
			return append(out, &doctree.InternalReference{
				Branch: doctree.Of(c.inlines(n)...),
				File:   c.file,
				Anchor: href[1:],
			})
		}
		return append(out, &doctree.HRef{Branch: doctree.Of(c.inlines(n)...), URL: href})
	}
	if id := attr(n, "id"); id != "" && n.DataAtom == atom.Span {
		return append([]doctree.Node{&doctree.Anchor{ID: id, File: c.file}}, c.inlines(n)...)
	}
	return c.inlines(n)
}

// preformatted keeps the text of a <pre> element, turning newlines into
// line breaks.
func preformatted(n *html.Node) []doctree.Node {
	text := strings.TrimPrefix(textContentRaw(n), "\n")
	text = strings.TrimSuffix(text, "\n")
	var out []doctree.Node
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out = append(out, &doctree.LineBreak{})
		}
		out = append(out, doctree.Words(line)...)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// trimmedParagraph wraps inline nodes in a paragraph without leading or
// trailing whitespace; nil if nothing remains.
func trimmedParagraph(nodes []doctree.Node) *doctree.Paragraph {
	nodes = trimSpaceNodes(nodes)
	if len(nodes) == 0 {
		return nil
	}
	return &doctree.Paragraph{Branch: doctree.Of(nodes...)}
}

func trimSpaceNodes(nodes []doctree.Node) []doctree.Node {
	for len(nodes) > 0 {
		if _, ok := nodes[0].(*doctree.Whitespace); !ok {
			break
		}
		nodes = nodes[1:]
	}
	for len(nodes) > 0 {
		if _, ok := nodes[len(nodes)-1].(*doctree.Whitespace); !ok {
			break
		}
		nodes = nodes[:len(nodes)-1]
	}
	return nodes
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContentRaw(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func textContent(n *html.Node) string {
	return strings.TrimSpace(textContentRaw(n))
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
