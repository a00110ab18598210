package rtf

import (
	"strings"
	"testing"

	"github.com/dgallion1/docrtf/internal/doctree"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "hello world", "hello world"},
		{"braces", "a{b}c", `a\{b\}c`},
		{"backslash", `C:\dir`, `C:\\dir`},
		{"two byte", "é", `\'C3\'A9`},
		{"ascii after pair", "é{", `\'C3\'A9\{`},
		{"trail byte not reinterpreted", "\x82{", `\'82\'7B`},
		{"trail backslash", "\x95\\", `\'95\'5C`},
		{"three bytes", "€", `\'E2\'82\'AC`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Escape(tc.in); got != tc.want {
				t.Fatalf("Escape(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEscape_StateDoesNotLeak(t *testing.T) {
	_ = Escape("\xC3")
	if got := Escape("{"); got != `\{` {
		t.Fatalf("expected state reset between calls, got %q", got)
	}
}

func TestEscape_NoBareSpecials(t *testing.T) {
	in := "x{y}\\z\xE2\x82{\\}"
	out := Escape(in)
	depth, ok := braceDepth(out)
	if !ok || depth != 0 {
		t.Fatalf("expected no structural braces in %q", out)
	}
	for i := 0; i < len(out); i++ {
		if out[i] >= 0x80 {
			t.Fatalf("expected ASCII output, got byte %#x in %q", out[i], out)
		}
	}
}

func TestTextEncoder_CodePages(t *testing.T) {
	latin, _ := newTextEncoder("1252")
	if got := latin.encode("Versión"); got != `Versi\'F3n` {
		t.Fatalf("expected cp1252 escape, got %q", got)
	}
	if got := latin.encode("日"); got != `\u26085?` {
		t.Fatalf("expected unicode escape, got %q", got)
	}
	if got := latin.encode("😀"); got != `\u-10179?\u-8704?` {
		t.Fatalf("expected surrogate pair escapes, got %q", got)
	}

	// 0x5C is a valid Shift-JIS trail byte and must not become a control
	// character.
	sjis, ok := newTextEncoder("932")
	if !ok {
		t.Fatal("expected code page 932 to be supported")
	}
	if got := sjis.encode("ソ"); got != `\'83\'5C` {
		t.Fatalf("expected Shift-JIS pair, got %q", got)
	}
}

func TestTextEncoder_UnknownCodePage(t *testing.T) {
	enc, ok := newTextEncoder("65001")
	if ok {
		t.Fatal("expected 65001 to be reported unsupported")
	}
	if got := enc.encode("ü"); got != `\'FC` {
		t.Fatalf("expected cp1252 fallback, got %q", got)
	}
}

func TestSymbolText(t *testing.T) {
	tests := []struct {
		name   string
		sym    doctree.Symbol
		want   string
		letter bool
		known  bool
	}{
		{"acute e", doctree.Symbol{Symbol: doctree.SymAcute, Letter: 'e'}, "é", true, true},
		{"umlaut Y", doctree.Symbol{Symbol: doctree.SymUml, Letter: 'Y'}, "Ÿ", true, true},
		{"tilde n", doctree.Symbol{Symbol: doctree.SymTilde, Letter: 'n'}, "ñ", true, true},
		{"unmapped letter", doctree.Symbol{Symbol: doctree.SymCedil, Letter: 'x'}, "?", false, true},
		{"copyright", doctree.Symbol{Symbol: doctree.SymCopy}, "©", true, true},
		{"backslash", doctree.Symbol{Symbol: doctree.SymBSlash}, `\\`, false, true},
		{"nbsp", doctree.Symbol{Symbol: doctree.SymNbsp}, `\~`, false, true},
		{"unknown", doctree.Symbol{Symbol: doctree.SymUnknown}, "?", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, letter, known := symbolText(&tc.sym)
			if got != tc.want || letter != tc.letter || known != tc.known {
				t.Fatalf("symbolText = (%q, %v, %v), want (%q, %v, %v)",
					got, letter, known, tc.want, tc.letter, tc.known)
			}
		})
	}
}

func TestBookmarkName(t *testing.T) {
	if got := bookmarkName("dir/file.html", "a1"); got != "dir_file_html_a1" {
		t.Fatalf("expected sanitized name, got %q", got)
	}
	if got := bookmarkName("index", ""); got != "index" {
		t.Fatalf("expected bare file name, got %q", got)
	}
	long := bookmarkName(strings.Repeat("x", 60), "anchor")
	if len(long) != maxBookmarkLen {
		t.Fatalf("expected %d characters, got %d (%q)", maxBookmarkLen, len(long), long)
	}
	if other := bookmarkName(strings.Repeat("x", 60), "other"); other == long {
		t.Fatal("expected distinct shortened names")
	}
}

func TestPlainCode(t *testing.T) {
	got := PlainCode{}.FormatCode("", "a{\n\tb}\n", nil)
	want := "a\\{\\par\n\\tab b\\}"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestChromaCode(t *testing.T) {
	got := ChromaCode{}.FormatCode("main.go", "package main\n// hi\nvar x = 1\n", nil)
	for _, want := range []string{`{\cf3\b package}`, `{\cf4\i // hi}`, "\\par\n"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
	if strings.HasSuffix(got, "\\par\n") {
		t.Fatalf("expected no trailing paragraph break, got %q", got)
	}
	if depth, ok := braceDepth(got); !ok || depth != 0 {
		t.Fatalf("expected balanced output, got %q", got)
	}
}

// braceDepth returns the group depth at the end of s, skipping escaped
// characters. ok is false if the depth ever goes negative.
func braceDepth(s string) (int, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return depth, false
			}
		}
	}
	return depth, true
}
