package rtf

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ChromaCode highlights code with chroma lexers. The lexer is chosen from
// the context (a file name or a language name), then by content analysis.
type ChromaCode struct {
	// Language is used when the context does not identify a lexer.
	Language string
}

func (c ChromaCode) lexer(context, text string) chroma.Lexer {
	if context != "" {
		if l := lexers.Match(context); l != nil {
			return l
		}
		if l := lexers.Get(context); l != nil {
			return l
		}
	}
	if c.Language != "" {
		if l := lexers.Get(c.Language); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

func (c ChromaCode) FormatCode(context, text string, escape func(string) string) string {
	text = strings.Join(codeLines(text), "\n")
	it, err := chroma.Coalesce(c.lexer(context, text)).Tokenise(nil, text)
	if err != nil {
		return PlainCode{}.FormatCode(context, text, escape)
	}
	var sb strings.Builder
	for _, tok := range it.Tokens() {
		open := tokenGroup(tok.Type)
		for i, line := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				sb.WriteString("\\par\n")
			}
			if line == "" {
				continue
			}
			if open == "" {
				sb.WriteString(escapeCode(line, escape))
				continue
			}
			sb.WriteString(open)
			sb.WriteString(escapeCode(line, escape))
			sb.WriteByte('}')
		}
	}
	return strings.TrimSuffix(sb.String(), "\\par\n")
}

// tokenGroup returns the group opener used for tokens of type t, or "" for
// unstyled tokens. Colour indices refer to colorTable.
func tokenGroup(t chroma.TokenType) string {
	switch {
	case t.InSubCategory(chroma.CommentPreproc):
		return `{\cf7 `
	case t.InCategory(chroma.Comment):
		return `{\cf4\i `
	case t.InCategory(chroma.Keyword):
		return `{\cf3\b `
	case t.InSubCategory(chroma.LiteralString):
		return `{\cf5 `
	case t.InSubCategory(chroma.LiteralNumber):
		return `{\cf6 `
	}
	return ""
}
