package dotgraph

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderGraph(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "flow.dot"), []byte("digraph G { a -> b; }"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "images")

	r := New(src, slog.New(slog.DiscardHandler))
	name, err := r.RenderGraph("flow.dot", out)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if name != "flow.png" {
		t.Fatalf("expected flow.png, got %q", name)
	}
	data, err := os.ReadFile(filepath.Join(out, name))
	if err != nil {
		t.Fatalf("read image: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("expected PNG data, got % x", data[:min(len(data), 8)])
	}
}

func TestRenderGraph_Errors(t *testing.T) {
	r := New(t.TempDir(), slog.New(slog.DiscardHandler))
	if _, err := r.RenderGraph("missing.dot", t.TempDir()); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.dot")
	if err := os.WriteFile(bad, []byte("digraph {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := r.RenderGraph(bad, t.TempDir()); err == nil {
		t.Fatal("expected error for malformed DOT")
	}
}
