// Package dotgraph renders Graphviz DOT files referenced by documents into
// images the RTF output can embed.
package dotgraph

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Renderer turns DOT files into PNG images.
type Renderer struct {
	// BaseDir resolves relative graph paths. Empty means the working
	// directory.
	BaseDir string
	log     *slog.Logger
}

func New(baseDir string, log *slog.Logger) *Renderer {
	return &Renderer{BaseDir: baseDir, log: log}
}

// RenderGraph renders the DOT file at path into outDir and returns the file
// name of the image, relative to outDir.
func (r *Renderer) RenderGraph(path, outDir string) (string, error) {
	if !filepath.IsAbs(path) && r.BaseDir != "" {
		path = filepath.Join(r.BaseDir, path)
	}
	dot, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read graph: %w", err)
	}
	png, err := Render(context.Background(), dot)
	if err != nil {
		return "", fmt.Errorf("graph %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, name), png, 0o644); err != nil {
		return "", fmt.Errorf("write graph image: %w", err)
	}
	r.log.Debug("graph rendered", "source", path, "image", name, "bytes", len(png))
	return name, nil
}

// Render lays out a DOT graph and returns it as PNG.
func Render(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
