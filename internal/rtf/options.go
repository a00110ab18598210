// Package rtf renders doctree documents as Rich Text Format.
package rtf

import "errors"

// Options switches optional output features.
type Options struct {
	// EnableHyperlinks emits HYPERLINK fields for local references.
	// Without it references are shown in bold.
	EnableHyperlinks bool
	// EnablePDFTargets emits bookmarks for sections and file anchors so
	// converted documents keep their link targets.
	EnablePDFTargets bool
	// CompactNumbering shifts section headings one level down.
	CompactNumbering bool
	// OutputDir receives files produced while rendering, such as graphs.
	OutputDir string
}

// Translator resolves localized labels by key.
type Translator interface {
	Lookup(key string) (string, bool)
}

// GraphRenderer converts an external graph description into an image in
// outDir and returns the image's file name.
type GraphRenderer interface {
	RenderGraph(path, outDir string) (string, error)
}

// ErrMissingTranslation is returned when a label key has no translation.
var ErrMissingTranslation = errors.New("missing translation")
