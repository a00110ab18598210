package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docrtf/internal/dotgraph"
	"github.com/dgallion1/docrtf/internal/pipeline"
	"github.com/dgallion1/docrtf/internal/rtf"
	"github.com/dgallion1/docrtf/internal/translator"
)

type renderOpts struct {
	output      string
	title       string
	lang        string
	hyperlinks  bool
	pdfTargets  bool
	compact     bool
	styles      string
	pdfFallback bool
	plainCode   bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Convert a document to RTF",
		Long: `Convert a document to RTF.

The input format is chosen by file extension. Graphviz files referenced as
images (.dot, .gv) are rendered to PNG next to the output file.`,
		Example: `  docrtf render guide.md
  docrtf render guide.md -o out/guide.rtf --lang es --pdf-targets
  docrtf render report.pdf -o - > report.rtf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .rtf, - for stdout)")
	f.StringVar(&opts.title, "title", "", "document title (default: taken from the document)")
	f.StringVar(&opts.lang, "lang", "en", "output language for generated labels")
	f.BoolVar(&opts.hyperlinks, "hyperlinks", true, "emit HYPERLINK fields for references")
	f.BoolVar(&opts.pdfTargets, "pdf-targets", false, "emit bookmarks for sections and anchors")
	f.BoolVar(&opts.compact, "compact", false, "shift section headings one level down")
	f.StringVar(&opts.styles, "styles", "", "TOML stylesheet overriding the default styles")
	f.BoolVar(&opts.pdfFallback, "pdf-fallback", false, "use pdftotext when the PDF text layer is empty")
	f.BoolVar(&opts.plainCode, "plain-code", false, "disable syntax highlighting of code blocks")
	return cmd
}

func runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	log := slogger(ctx)

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	styles := rtf.DefaultStyles()
	if opts.styles != "" {
		if styles, err = rtf.LoadStyles(opts.styles); err != nil {
			return err
		}
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".rtf"
	}
	outDir := filepath.Dir(output)
	if output == "-" {
		outDir = "."
	}

	conv := &pipeline.Converter{
		Options: rtf.Options{
			EnableHyperlinks: opts.hyperlinks,
			EnablePDFTargets: opts.pdfTargets,
			CompactNumbering: opts.compact,
			OutputDir:        outDir,
		},
		Styles:      styles,
		Catalog:     translator.Default(),
		PDFFallback: opts.pdfFallback,
		Code:        rtf.ChromaCode{},
		Graphs:      dotgraph.New(filepath.Dir(input), log),
	}
	if opts.plainCode {
		conv.Code = rtf.PlainCode{}
	}

	prog := newProgress(logger)
	tree, err := conv.Parse(data, filepath.Base(input))
	if err != nil {
		return err
	}
	if opts.title != "" {
		tree.Title = opts.title
	}
	logger.Debug("parsed", "file", input, "nodes", pipeline.CountNodes(tree), "title", tree.Title)

	lang := conv.Catalog.For(opts.lang).Locale()
	if lang != opts.lang {
		logger.Debug("language matched", "requested", opts.lang, "using", lang)
	}

	var buf bytes.Buffer
	if err := conv.Render(&buf, tree, lang, log); err != nil {
		return err
	}

	if output == "-" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	size := buf.Len()
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Wrote %s (%d bytes)", output, size))
	return nil
}
