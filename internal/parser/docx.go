package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/docrtf/internal/doctree"
)

// DOCXParser handles .docx files.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*doctree.Root, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "docrtf-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	c := &docxConverter{doc: doc}
	b := newTreeBuilder(filename)
	var list *doctree.AutoList
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			if level := docxHeadingLevel(it); level > 0 {
				if title := docxParagraphText(it); title != "" {
					list = nil
					b.heading(level, title)
				}
				continue
			}
			inl := trimSpaceNodes(c.inlines(it))
			if len(inl) == 0 {
				continue
			}
			para := &doctree.Paragraph{Branch: doctree.Of(inl...)}
			if !isListParagraph(it) {
				list = nil
				b.add(para)
				continue
			}
			if list == nil {
				list = &doctree.AutoList{}
				b.add(list)
			}
			list.Nodes = append(list.Nodes, &doctree.AutoListItem{Branch: doctree.Of(para)})
		case *docx.Table:
			list = nil
			b.add(c.table(it))
		}
	}
	return b.finish(), nil
}

type docxConverter struct {
	doc *docx.Docx
}

func (c *docxConverter) inlines(para *docx.Paragraph) []doctree.Node {
	var out []doctree.Node
	for _, child := range para.Children {
		switch x := child.(type) {
		case *docx.Run:
			out = append(out, c.run(x)...)
		case *docx.Hyperlink:
			text := x.Run.InstrText
			if text == "" {
				text = runText(&x.Run)
			}
			target, err := c.doc.ReferTarget(x.ID)
			if err != nil || target == "" {
				out = append(out, doctree.Words(text)...)
				continue
			}
			out = append(out, &doctree.HRef{Branch: doctree.Of(doctree.Words(text)...), URL: target})
		}
	}
	return out
}

func (c *docxConverter) run(r *docx.Run) []doctree.Node {
	var out []doctree.Node
	for _, rc := range r.Children {
		switch t := rc.(type) {
		case *docx.Text:
			out = append(out, doctree.Words(t.Text)...)
		case *docx.Tab:
			out = append(out, &doctree.Whitespace{Chars: "\t"})
		case *docx.BarterRabbet:
			out = append(out, &doctree.LineBreak{})
		}
	}
	if len(out) == 0 || r.RunProperties == nil {
		return out
	}
	if r.RunProperties.Italic != nil {
		out = styled(doctree.Italic, out...)
	}
	if r.RunProperties.Bold != nil {
		out = styled(doctree.Bold, out...)
	}
	return out
}

func (c *docxConverter) table(t *docx.Table) *doctree.HTMLTable {
	cols := 1
	for _, row := range t.TableRows {
		cols = max(cols, len(row.TableCells))
	}
	table := &doctree.HTMLTable{Columns: cols}
	for _, row := range t.TableRows {
		r := &doctree.HTMLTableRow{}
		for i := 0; i < cols; i++ {
			cell := &doctree.HTMLTableCell{IsLast: i == cols-1}
			if i < len(row.TableCells) {
				for j, para := range row.TableCells[i].Paragraphs {
					if j > 0 {
						cell.Nodes = append(cell.Nodes, &doctree.LineBreak{})
					}
					cell.Nodes = append(cell.Nodes, trimSpaceNodes(c.inlines(para))...)
				}
			}
			r.Nodes = append(r.Nodes, cell)
		}
		table.Nodes = append(table.Nodes, r)
	}
	return table
}

func isListParagraph(para *docx.Paragraph) bool {
	return para.Properties != nil && para.Properties.NumProperties != nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if level, ok := strings.CutPrefix(style, "heading"); ok && len(level) == 1 && level[0] >= '1' && level[0] <= '6' {
		return int(level[0] - '0')
	}
	if style == "title" {
		return 1
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		if run, ok := child.(*docx.Run); ok {
			buf.WriteString(runText(run))
		}
	}
	return strings.TrimSpace(buf.String())
}

func runText(run *docx.Run) string {
	var buf strings.Builder
	for _, rc := range run.Children {
		if t, ok := rc.(*docx.Text); ok {
			buf.WriteString(t.Text)
		}
	}
	return buf.String()
}
