package rtf

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dgallion1/docrtf/internal/doctree"
	"github.com/dgallion1/docrtf/internal/translator"
)

const (
	styleReset     = `\pard\plain `
	par            = "\\par\n"
	tableWidth     = 8640
	bulletMarker   = `\'95\tab `
	codeBlockClose = "\\par\n}\n"
)

type listFrame struct {
	ordered bool
	number  int
}

// Visitor writes one document tree as RTF. It is not safe for concurrent
// use; render each document with its own Visitor.
type Visitor struct {
	w      io.Writer
	out    *bufio.Writer
	opts   Options
	styles *StyleTable
	tr     Translator
	code   CodeFormatter
	graphs GraphRenderer
	log    *slog.Logger

	enc textEncoder

	hidden    bool
	// runHidden is the visibility in force when the current include run
	// started; the run restores it and stays silent while it is set.
	runHidden bool
	insidePre bool
	depth     int
	lists     []listFrame
	tables    []int
	figures   []bool
	err       error
}

// NewVisitor returns a Visitor writing to w. A nil styles uses
// DefaultStyles and a nil log uses slog.Default.
func NewVisitor(w io.Writer, opts Options, styles *StyleTable, tr Translator, log *slog.Logger) *Visitor {
	if styles == nil {
		styles = DefaultStyles()
	}
	if log == nil {
		log = slog.Default()
	}
	cp := DefaultCodePage
	if tr != nil {
		if s, ok := tr.Lookup(translator.KeyRTFCodePage); ok {
			cp = s
		}
	}
	enc, ok := newTextEncoder(cp)
	if !ok {
		log.Warn("unsupported code page, using "+DefaultCodePage, "code_page", cp)
	}
	return &Visitor{
		w:      w,
		opts:   opts,
		styles: styles,
		tr:     tr,
		code:   PlainCode{},
		log:    log,
		enc:    enc,
	}
}

// text escapes s in the document code page.
func (v *Visitor) text(s string) string { return v.enc.encode(s) }

// SetCodeFormatter replaces the formatter used for code blocks.
func (v *Visitor) SetCodeFormatter(f CodeFormatter) { v.code = f }

// SetGraphRenderer enables rendering of external graph files.
func (v *Visitor) SetGraphRenderer(g GraphRenderer) { v.graphs = g }

// Render writes the body of the tree rooted at root. It returns the first
// missing style, missing translation or write error; output stops at that
// point. Render panics if the tree contains a node type it does not know.
func (v *Visitor) Render(root doctree.Node) error {
	v.begin()
	v.visit(root, nil, true)
	return v.end()
}

// RenderDocument writes a complete RTF document: prolog, title heading,
// body and the closing brace.
func (v *Visitor) RenderDocument(root *doctree.Root) error {
	v.begin()
	v.prolog(root.Title)
	if root.Title != "" {
		v.put("{" + styleReset + v.heading(1) + "\n" + v.text(root.Title) + "\\par}\n")
	}
	v.visit(root, nil, true)
	v.put("}\n")
	return v.end()
}

func (v *Visitor) begin() {
	v.out = bufio.NewWriter(v.w)
	v.hidden = false
	v.runHidden = false
	v.insidePre = false
	v.depth = 0
	v.lists = v.lists[:0]
	v.tables = v.tables[:0]
	v.figures = v.figures[:0]
	v.err = nil
}

func (v *Visitor) end() error {
	if err := v.out.Flush(); err != nil && v.err == nil {
		v.err = fmt.Errorf("write output: %w", err)
	}
	return v.err
}

func (v *Visitor) fail(err error) {
	if v.err == nil {
		v.err = err
	}
}

// put writes s unless output is suppressed or an error has occurred.
func (v *Visitor) put(s string) {
	if v.hidden {
		return
	}
	v.raw(s)
}

// raw writes s regardless of suppression.
func (v *Visitor) raw(s string) {
	if v.err != nil || s == "" {
		return
	}
	if _, err := v.out.WriteString(s); err != nil {
		v.fail(fmt.Errorf("write output: %w", err))
	}
}

func (v *Visitor) level() int {
	return min(v.depth, MaxIndentLevel)
}

func (v *Visitor) incIndent() {
	v.depth++
	if v.depth > MaxIndentLevel {
		v.log.Warn("maximum indentation level reached", "depth", v.depth, "max", MaxIndentLevel)
	}
}

func (v *Visitor) decIndent() {
	if v.depth > 0 {
		v.depth--
	}
}

// style returns the reference of the named style at the current level.
func (v *Visitor) style(name string) string {
	return v.styleAt(name, v.level())
}

func (v *Visitor) styleAt(name string, level int) string {
	sd, err := v.styles.Lookup(name, level)
	if err != nil {
		v.fail(err)
		return ""
	}
	return sd.Reference
}

// heading returns the reference of the Heading style numbered n.
func (v *Visitor) heading(n int) string {
	sd, err := v.styles.Lookup("Heading", n)
	if err != nil {
		v.fail(err)
		return ""
	}
	return sd.Reference
}

func (v *Visitor) label(key string) string {
	if v.tr == nil {
		v.fail(fmt.Errorf("%w: %s", ErrMissingTranslation, key))
		return ""
	}
	s, ok := v.tr.Lookup(key)
	if !ok {
		v.fail(fmt.Errorf("%w: %s", ErrMissingTranslation, key))
		return ""
	}
	return s
}

func (v *Visitor) visit(n doctree.Node, parent doctree.Node, last bool) {
	if v.err != nil {
		return
	}
	c, ok := n.(doctree.Compound)
	if !ok {
		v.visitLeaf(n)
		return
	}
	entry := v.hidden
	scoped := v.visitPre(c, parent)
	kids := c.Children()
	for i, child := range kids {
		v.visit(child, c, i == len(kids)-1)
	}
	after := v.hidden
	if scoped {
		after = entry
	}
	// Closing markers follow the visibility of the opening ones.
	v.hidden = entry
	v.visitPost(c, parent, last)
	v.hidden = after
}

func (v *Visitor) visitLeaf(n doctree.Node) {
	switch n := n.(type) {
	case *doctree.Word:
		v.put(v.text(n.Text))
	case *doctree.LinkedWord:
		v.startLink(n.Ref, n.File, n.Anchor)
		v.put(v.text(n.Text))
		v.endLink(n.Ref)
	case *doctree.Whitespace:
		if v.insidePre {
			v.put(v.text(n.Chars))
		} else {
			v.put(" ")
		}
	case *doctree.Symbol:
		text, letter, known := symbolText(n)
		if !known {
			v.log.Warn("unsupported symbol", "symbol", int(n.Symbol))
		}
		if letter {
			text = v.text(text)
		}
		v.put(text)
	case *doctree.URL:
		v.startURL(n.Text)
		v.put(v.text(n.Text))
		v.endURL()
	case *doctree.LineBreak:
		v.put(par)
	case *doctree.HorizontalRule:
		v.put(`{\pard\widctlpar\brdrb\brdrs\brdrw5\brsp20 \adjustright \par}` + "\n")
	case *doctree.StyleChange:
		v.styleChange(n)
	case *doctree.Verbatim:
		switch n.Type {
		case doctree.VerbatimCode:
			v.codeBlock(v.code.FormatCode(n.Context, n.Text, v.text))
		case doctree.VerbatimText:
			v.codeBlock(PlainCode{}.FormatCode("", n.Text, v.text))
		}
	case *doctree.Anchor:
		v.bookmark(n.ID, "")
		if v.opts.EnablePDFTargets && n.File != "" {
			v.bookmark(n.File, n.ID)
		}
	case *doctree.IncludeBlock:
		switch n.Type {
		case doctree.Include:
			v.codeBlock(v.code.FormatCode(n.Context, n.Text, v.text))
		case doctree.VerbInclude, doctree.VerbatimOnly:
			v.codeBlock(PlainCode{}.FormatCode("", n.Text, v.text))
		}
	case *doctree.IncludeOperator:
		v.includeOperator(n)
	case *doctree.Formula:
		v.put(v.text(n.Text))
	default:
		panic(fmt.Sprintf("rtf: unexpected node %T", n))
	}
}

func (v *Visitor) styleChange(s *doctree.StyleChange) {
	if !s.Enable {
		v.put("} ")
		return
	}
	switch s.Style {
	case doctree.Bold:
		v.put(`{\b `)
	case doctree.Italic:
		v.put(`{\i `)
	case doctree.Code:
		v.put(`{\f2 `)
	case doctree.Subscript, doctree.Small:
		v.put(`{\sub `)
	case doctree.Superscript:
		v.put(`{\super `)
	case doctree.Center:
		v.put(`{\qc `)
	default:
		v.log.Warn("unsupported style", "style", int(s.Style))
		v.put("{")
	}
}

func (v *Visitor) codeBlock(body string) {
	v.put("{\n" + par + styleReset + v.style("CodeExample") + body + codeBlockClose)
}

// includeOperator renders one line range of a split inclusion. The first
// operator of a run opens a code block and hides the text between the
// operators; the last one closes it again.
func (v *Visitor) includeOperator(op *doctree.IncludeOperator) {
	if op.IsFirst {
		v.runHidden = v.hidden
		v.run("{\n" + par + styleReset + v.style("CodeExample"))
		v.hidden = true
	}
	if op.Type != doctree.OpSkip {
		v.run(v.code.FormatCode(op.Context, op.Text, v.text))
	}
	if op.IsLast {
		v.hidden = v.runHidden
		v.run(codeBlockClose)
	} else {
		v.run(par)
	}
}

// run writes include-run output unless the run sits in a hidden subtree.
func (v *Visitor) run(s string) {
	if !v.runHidden {
		v.raw(s)
	}
}

// visitPre emits the opening markers of c. It reports whether c hides its
// own subtree.
func (v *Visitor) visitPre(c doctree.Compound, parent doctree.Node) bool {
	switch n := c.(type) {
	case *doctree.Root, *doctree.Language, *doctree.Copy, *doctree.Paragraph,
		*doctree.HTMLTableCell:
	case *doctree.AutoList:
		v.listPre(n.Ordered)
	case *doctree.HTMLList:
		v.listPre(n.Ordered)
	case *doctree.SimpleList:
		v.listPre(false)
	case *doctree.AutoListItem, *doctree.HTMLListItem, *doctree.SimpleListItem:
		v.itemPre()
	case *doctree.Section:
		v.sectionPre(n)
	case *doctree.HTMLHeader:
		v.put("{" + styleReset + v.heading(v.htmlHeading(n.Level)) + "\n")
	case *doctree.SimpleSection:
		v.simpleSectionPre(n)
	case *doctree.Title:
		if !isSectionTitle(n, parent) {
			v.put(`{\b `)
		}
	case *doctree.HTMLPreformatted:
		v.put("{\n" + par + styleReset + v.style("CodeExample"))
		v.insidePre = true
	case *doctree.HTMLDescList:
		v.put("{\n" + styleReset + v.style("ListContinue"))
	case *doctree.HTMLDescTitle:
		v.put(par + `{\b `)
	case *doctree.HTMLDescData:
		v.incIndent()
		v.put(styleReset + v.style("DescContinue"))
	case *doctree.HTMLTable:
		if n.HasCaption {
			v.put(`{\pard\keep\keepn ` + "\n")
		}
		v.put("{\n")
		v.tables = append(v.tables, max(n.Columns, 1))
	case *doctree.HTMLTableRow:
		v.rowPre()
	case *doctree.HTMLCaption:
		v.put(`\pard\plain\qc {\b `)
	case *doctree.IndexEntry:
		v.hidden = true
		return true
	case *doctree.InternalOnly:
		v.labeledBlockPre(v.text(v.label(translator.KeyInternalOnly)))
	case *doctree.HRef:
		v.startURL(n.URL)
	case *doctree.HyperlinkRef:
		v.startLink(n.Ref, n.File, n.Anchor)
		if !n.HasText {
			text := n.Anchor
			if text == "" {
				text = n.File
			}
			v.put(v.text(text))
		}
	case *doctree.CrossReference:
		v.startLink(n.Ref, n.File, n.Anchor)
		if len(n.Children()) == 0 {
			v.put(v.text(n.TargetTitle))
		}
	case *doctree.SectionReferenceList:
		v.put("{\n")
		v.incIndent()
	case *doctree.SectionReference:
		v.put(par + styleReset + v.style("ListBullet") + bulletMarker)
		v.startLink("", n.File, n.Anchor)
	case *doctree.ParameterSection:
		v.labeledBlockPre(v.text(v.paramLabel(n.Type)))
	case *doctree.ParameterList:
		names := make([]string, len(n.Names))
		for i, name := range n.Names {
			names[i] = v.text(name)
		}
		v.put(`{\i ` + strings.Join(names, ",") + "} ")
	case *doctree.CrossReferenceItem:
		v.put("{{" + v.heading(5) + "\n")
		v.startLink("", n.File, n.Anchor)
		v.put(v.text(n.Title))
		v.endLink("")
		v.put("\\par}\n")
		v.incIndent()
		v.put(styleReset + v.style("DescContinue"))
	case *doctree.InternalReference:
		v.startLink("", n.File, n.Anchor)
	case *doctree.Image:
		if n.Format != doctree.ImageRTF {
			v.figures = append(v.figures, false)
			v.hidden = true
			return true
		}
		v.figures = append(v.figures, true)
		v.figurePre(n.Name, n.HasCaption)
	case *doctree.ExternalGraphFile:
		name, ok := v.renderGraph(n.Path)
		v.figures = append(v.figures, ok)
		if !ok {
			v.hidden = true
			return true
		}
		v.figurePre(name, n.HasCaption)
	default:
		panic(fmt.Sprintf("rtf: unexpected node %T", c))
	}
	return false
}

func (v *Visitor) visitPost(c doctree.Compound, parent doctree.Node, last bool) {
	switch n := c.(type) {
	case *doctree.Root, *doctree.Language, *doctree.Copy, *doctree.Section,
		*doctree.IndexEntry:
	case *doctree.Paragraph:
		if !last && !isParameterSection(parent) {
			v.put(par)
		}
	case *doctree.AutoList, *doctree.HTMLList, *doctree.SimpleList:
		v.listPost()
	case *doctree.AutoListItem, *doctree.HTMLListItem, *doctree.SimpleListItem:
	case *doctree.HTMLHeader:
		v.put("\\par}\n")
	case *doctree.SimpleSection:
		v.decIndent()
		v.put("\\par}\n")
	case *doctree.Title:
		if isSectionTitle(n, parent) {
			v.put("\\par}\n")
			v.incIndent()
			v.put(styleReset + v.style("DescContinue"))
		} else {
			v.put("}")
		}
	case *doctree.HTMLPreformatted:
		v.insidePre = false
		v.put(codeBlockClose)
	case *doctree.HTMLDescList:
		v.put("}\n" + par)
	case *doctree.HTMLDescTitle:
		v.put("}\n")
	case *doctree.HTMLDescData:
		v.decIndent()
	case *doctree.HTMLTable:
		v.tables = v.tables[:len(v.tables)-1]
		v.put("}\n")
		if n.HasCaption {
			v.put("\\par}\n")
		}
	case *doctree.HTMLTableRow:
		v.put("\\cell\\row\n")
	case *doctree.HTMLTableCell:
		if !n.IsLast {
			v.put(`\cell `)
		}
	case *doctree.HTMLCaption:
		v.put("}" + par)
	case *doctree.InternalOnly, *doctree.ParameterSection, *doctree.CrossReferenceItem:
		v.decIndent()
		v.put("\\par}\n")
	case *doctree.HRef:
		v.endURL()
	case *doctree.HyperlinkRef:
		v.endLink(n.Ref)
	case *doctree.CrossReference:
		v.endLink(n.Ref)
		v.put(" ")
	case *doctree.SectionReferenceList:
		v.decIndent()
		v.put("\\par}\n")
	case *doctree.SectionReference:
		v.endLink("")
	case *doctree.ParameterList:
		if !last {
			v.put(par + styleReset + v.style("DescContinue"))
		}
	case *doctree.InternalReference:
		v.endLink("")
		v.put(" ")
	case *doctree.Image:
		v.figurePost(n.HasCaption)
	case *doctree.ExternalGraphFile:
		v.figurePost(n.HasCaption)
	default:
		panic(fmt.Sprintf("rtf: unexpected node %T", c))
	}
}

func isParameterSection(n doctree.Node) bool {
	_, ok := n.(*doctree.ParameterSection)
	return ok
}

// isSectionTitle reports whether t is the label of a user section.
func isSectionTitle(t *doctree.Title, parent doctree.Node) bool {
	s, ok := parent.(*doctree.SimpleSection)
	if !ok || s.Type != doctree.SectUser || !hasTitle(s) {
		return false
	}
	return s.Children()[0] == doctree.Node(t)
}

func (v *Visitor) listPre(ordered bool) {
	v.put("{\n")
	v.incIndent()
	v.lists = append(v.lists, listFrame{ordered: ordered, number: 1})
}

func (v *Visitor) listPost() {
	if len(v.lists) > 0 {
		v.lists = v.lists[:len(v.lists)-1]
	}
	v.decIndent()
	v.put("\\par}\n")
}

func (v *Visitor) itemPre() {
	v.put(par + styleReset)
	if len(v.lists) == 0 || !v.lists[len(v.lists)-1].ordered {
		v.put(v.style("ListBullet") + bulletMarker)
		return
	}
	f := &v.lists[len(v.lists)-1]
	v.put(v.style("ListEnum") + strconv.Itoa(f.number) + `.\tab `)
	f.number++
}

// sectionHeading maps a section level to its Heading style number.
func (v *Visitor) sectionHeading(level int) int {
	n := 4
	switch level {
	case 1:
		n = 2
	case 2:
		n = 3
	}
	if v.opts.CompactNumbering && n < 4 {
		n++
	}
	return n
}

func (v *Visitor) htmlHeading(level int) int {
	n := min(max(level, 1), 4)
	if v.opts.CompactNumbering {
		n = min(n+1, 4)
	}
	return n
}

func (v *Visitor) sectionPre(s *doctree.Section) {
	if v.opts.EnablePDFTargets {
		v.bookmark(s.File, s.Anchor)
	}
	v.put("{" + styleReset + v.heading(v.sectionHeading(s.Level)) + "\n")
	v.put(v.text(s.Title) + "\\par}\n")
	if s.Anchor != "" {
		v.bookmark(s.Anchor, "")
	}
}

func (v *Visitor) simpleSectionLabel(t doctree.SimpleSectionKind) string {
	keys := map[doctree.SimpleSectionKind]string{
		doctree.SectSee:       translator.KeySeeAlso,
		doctree.SectReturn:    translator.KeyReturns,
		doctree.SectAuthor:    translator.KeyAuthor,
		doctree.SectAuthors:   translator.KeyAuthors,
		doctree.SectVersion:   translator.KeyVersion,
		doctree.SectSince:     translator.KeySince,
		doctree.SectDate:      translator.KeyDate,
		doctree.SectNote:      translator.KeyNote,
		doctree.SectWarning:   translator.KeyWarning,
		doctree.SectPre:       translator.KeyPrecondition,
		doctree.SectPost:      translator.KeyPostcondition,
		doctree.SectInvariant: translator.KeyInvariant,
		doctree.SectRemark:    translator.KeyRemarks,
		doctree.SectAttention: translator.KeyAttention,
	}
	key, ok := keys[t]
	if !ok {
		return ""
	}
	return v.label(key)
}

func (v *Visitor) simpleSectionPre(s *doctree.SimpleSection) {
	v.put("{")
	if s.Type == doctree.SectUser && hasTitle(s) {
		// The Title child closes the label group and raises the indent.
		v.put("{" + v.heading(5) + "\n")
		return
	}
	label := ""
	if s.Type != doctree.SectUser {
		label = v.simpleSectionLabel(s.Type)
	}
	if label != "" {
		label = v.text(label) + ":"
	}
	v.labelGroup(label)
}

func hasTitle(s *doctree.SimpleSection) bool {
	kids := s.Children()
	if len(kids) == 0 {
		return false
	}
	_, ok := kids[0].(*doctree.Title)
	return ok
}

// labelGroup writes a bold label line and starts the indented body that
// follows it.
func (v *Visitor) labelGroup(label string) {
	v.put("{" + v.heading(5) + "\n" + label + "\\par}\n")
	v.incIndent()
	v.put(styleReset + v.style("DescContinue"))
}

func (v *Visitor) labeledBlockPre(label string) {
	v.put("{")
	v.labelGroup(label)
}

func (v *Visitor) paramLabel(t doctree.ParamSectionKind) string {
	switch t {
	case doctree.Param:
		return v.label(translator.KeyParameters)
	case doctree.RetVal:
		return v.label(translator.KeyReturnValues)
	case doctree.Exception:
		return v.label(translator.KeyExceptions)
	}
	v.log.Warn("unknown parameter section", "type", int(t))
	return ""
}

func (v *Visitor) rowPre() {
	cols := 1
	if len(v.tables) > 0 {
		cols = v.tables[len(v.tables)-1]
	}
	var sb strings.Builder
	sb.WriteString(`\trowd \trgaph108\trleft-108`)
	width := tableWidth / cols
	for i := 1; i <= cols; i++ {
		sb.WriteString(`\clbrdrt\brdrs\brdrw10 \clbrdrl\brdrs\brdrw10 \clbrdrb\brdrs\brdrw10 \clbrdrr\brdrs\brdrw10 `)
		sb.WriteString(`\cellx` + strconv.Itoa(i*width))
	}
	sb.WriteString("\n" + `\pard \intbl `)
	v.put(sb.String())
}

func (v *Visitor) figurePre(name string, caption bool) {
	v.put("{")
	if caption {
		v.put(`\pard\qc `)
	}
	v.put("\n" + `{\field\flddirty {\*\fldinst INCLUDEPICTURE "` + Escape(name) +
		`" \\d \\* MERGEFORMAT}{\fldrslt IMAGE}}` + "\n")
	if caption {
		v.put(par + `{\i `)
	}
}

func (v *Visitor) figurePost(caption bool) {
	shown := false
	if n := len(v.figures); n > 0 {
		shown = v.figures[n-1]
		v.figures = v.figures[:n-1]
	}
	if !shown {
		return
	}
	if caption {
		v.put("}" + par)
	}
	v.put("}\n")
}

func (v *Visitor) renderGraph(path string) (string, bool) {
	if v.hidden {
		return "", false
	}
	if v.graphs == nil {
		v.log.Warn("no graph renderer configured", "path", path)
		return "", false
	}
	name, err := v.graphs.RenderGraph(path, v.opts.OutputDir)
	if err != nil {
		v.log.Warn("graph render failed", "path", path, "error", err)
		return "", false
	}
	return name, true
}
