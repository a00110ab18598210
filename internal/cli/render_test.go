package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const guide = "# Guide\n\nHola {mundo}.\n\n```go\nvar x = 1\n```\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRender_WritesFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "guide.md", guide)
	out := filepath.Join(dir, "out", "guide.rtf")

	if _, err := execute(t, "render", in, "-o", out, "--title", "CLI Guide", "--lang", "es"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	rtf := string(data)
	for _, want := range []string{`{\rtf1`, `{\title CLI Guide}`, `Hola \{mundo\}.`} {
		if !strings.Contains(rtf, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestRender_DefaultOutputName(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "notes.txt", "first\n\nsecond\n")

	if _, err := execute(t, "render", in); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.rtf")); err != nil {
		t.Fatalf("expected notes.rtf next to the input: %v", err)
	}
}

func TestRender_Stdout(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "guide.md", guide)

	out, err := execute(t, "render", in, "-o", "-", "--plain-code")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, `{\rtf1`) {
		t.Fatalf("expected RTF on stdout, got %.40q", out)
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	unsupported := writeFile(t, dir, "image.bmp", "BM")

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"render", filepath.Join(dir, "nope.md")}},
		{"unsupported type", []string{"render", unsupported}},
		{"missing stylesheet", []string{"render", writeFile(t, dir, "a.md", "x"), "--styles", filepath.Join(dir, "none.toml")}},
		{"no args", []string{"render"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
