package rtf

import "strings"

// CodeFormatter renders a code fragment as RTF body text. Context names the
// language or source file the fragment came from and may be empty. Text runs
// must go through escape, which converts them to the document code page. The
// result must be brace balanced and must not end with a paragraph break.
type CodeFormatter interface {
	FormatCode(context, text string, escape func(string) string) string
}

// PlainCode escapes code without highlighting.
type PlainCode struct{}

func (PlainCode) FormatCode(_, text string, escape func(string) string) string {
	var sb strings.Builder
	for i, line := range codeLines(text) {
		if i > 0 {
			sb.WriteString("\\par\n")
		}
		sb.WriteString(escapeCode(line, escape))
	}
	return sb.String()
}

// codeLines splits text into lines, dropping one trailing newline.
func codeLines(text string) []string {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return strings.Split(text, "\n")
}

func escapeCode(s string, escape func(string) string) string {
	if escape == nil {
		escape = Escape
	}
	return strings.ReplaceAll(escape(s), "\t", `\tab `)
}
