package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dgallion1/docrtf/internal/doctree"
	"github.com/dgallion1/docrtf/internal/parser"
	"github.com/dgallion1/docrtf/internal/rtf"
	"github.com/dgallion1/docrtf/internal/translator"
)

// Converter turns uploaded documents into RTF. It holds no per-document
// state and is safe for concurrent use.
type Converter struct {
	Options     rtf.Options
	Styles      *rtf.StyleTable
	Catalog     *translator.Catalog
	PDFFallback bool

	// Code colours code blocks; nil renders them plain.
	Code rtf.CodeFormatter
	// Graphs renders Graphviz references; nil skips them.
	Graphs rtf.GraphRenderer
}

// Parse selects a front end by file extension and builds the document tree.
func (c *Converter) Parse(data []byte, filename string) (*doctree.Root, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = c.PDFFallback
	}
	tree, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return tree, nil
}

// Render writes tree as a complete RTF document using the labels of
// language.
func (c *Converter) Render(w io.Writer, tree *doctree.Root, language string, log *slog.Logger) error {
	catalog := c.Catalog
	if catalog == nil {
		catalog = translator.Default()
	}
	styles := c.Styles
	if styles == nil {
		styles = rtf.DefaultStyles()
	}
	v := rtf.NewVisitor(w, c.Options, styles, catalog.For(language), log)
	if c.Code != nil {
		v.SetCodeFormatter(c.Code)
	}
	if c.Graphs != nil {
		v.SetGraphRenderer(c.Graphs)
	}
	if err := v.RenderDocument(tree); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// CountNodes returns the number of nodes in the tree below and including n.
func CountNodes(n doctree.Node) int {
	count := 0
	doctree.Walk(n, func(doctree.Node) bool {
		count++
		return true
	})
	return count
}

// warnRecorder forwards log records and reports every warning to onWarn.
type warnRecorder struct {
	slog.Handler
	onWarn func(msg string)
}

func (h *warnRecorder) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn || h.Handler.Enabled(ctx, level)
}

func (h *warnRecorder) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.onWarn(r.Message)
	}
	if !h.Handler.Enabled(ctx, r.Level) {
		return nil
	}
	return h.Handler.Handle(ctx, r)
}

func (h *warnRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &warnRecorder{Handler: h.Handler.WithAttrs(attrs), onWarn: h.onWarn}
}

func (h *warnRecorder) WithGroup(name string) slog.Handler {
	return &warnRecorder{Handler: h.Handler.WithGroup(name), onWarn: h.onWarn}
}
