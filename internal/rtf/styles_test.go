package rtf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultStyles_Coverage(t *testing.T) {
	styles := DefaultStyles()
	for _, name := range []string{"CodeExample", "ListBullet", "ListEnum", "ListContinue", "DescContinue"} {
		for level := 0; level <= MaxIndentLevel; level++ {
			if _, err := styles.Lookup(name, level); err != nil {
				t.Fatalf("expected %s%d, got %v", name, level, err)
			}
		}
	}
	for n := 1; n <= 5; n++ {
		if _, err := styles.Lookup("Heading", n); err != nil {
			t.Fatalf("expected Heading%d, got %v", n, err)
		}
	}
	if _, err := styles.Lookup("CodeExample", MaxIndentLevel+1); !errors.Is(err, ErrMissingStyle) {
		t.Fatalf("expected ErrMissingStyle past the last level, got %v", err)
	}
}

func TestLoadStyles_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.toml")
	sheet := `
[styles.CodeExample0]
reference = '\s40\li0\f2\fs18 '
definition = '{\s40\li0\f2\fs18 \sbasedon0 \snext40 Code Example 0;}'

[styles.Quote0]
reference = '\s130\li720\i '
`
	if err := os.WriteFile(path, []byte(sheet), 0o644); err != nil {
		t.Fatal(err)
	}
	styles, err := LoadStyles(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sd, _ := styles.Lookup("CodeExample", 0)
	if sd.Reference != `\s40\li0\f2\fs18 ` {
		t.Fatalf("expected overridden reference, got %q", sd.Reference)
	}
	if _, err := styles.Lookup("Quote", 0); err != nil {
		t.Fatalf("expected added style, got %v", err)
	}
	if _, err := styles.Lookup("ListBullet", 3); err != nil {
		t.Fatalf("expected defaults kept, got %v", err)
	}
	defs := strings.Join(styles.Definitions(), "\n")
	if !strings.Contains(defs, `\fs18 \sbasedon0`) {
		t.Fatalf("expected overridden definition in stylesheet")
	}
}

func TestLoadStyles_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadStyles(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[styles.X0]\ndefinition = 'x'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStyles(path); err == nil {
		t.Fatal("expected error for style without reference")
	}
}
