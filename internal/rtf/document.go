package rtf

import (
	"strings"

	"github.com/dgallion1/docrtf/internal/translator"
)

const fontTable = `{\fonttbl {\f0\froman\fcharset%s Times New Roman;}` +
	`{\f1\fswiss\fcharset%s Arial;}` +
	`{\f2\fmodern\fcharset%s Courier New;}` +
	`{\f3\froman\fcharset2 Symbol;}}`

// colorTable indices: 1 text, 2 links, 3 keywords, 4 comments, 5 strings,
// 6 numbers, 7 preprocessor lines.
const colorTable = `{\colortbl;\red0\green0\blue0;\red0\green0\blue255;` +
	`\red0\green0\blue128;\red0\green128\blue0;\red128\green0\blue0;` +
	`\red128\green0\blue128;\red128\green64\blue0;}`

// prolog writes the document header: code page, font, colour and style
// tables, and the info group.
func (v *Visitor) prolog(title string) {
	cp := v.label(translator.KeyRTFCodePage)
	charset := v.label(translator.KeyRTFCharset)
	var sb strings.Builder
	sb.WriteString(`{\rtf1\ansi\ansicpg` + cp + `\uc1 \deff0\deflang1033` + "\n")
	sb.WriteString(strings.ReplaceAll(fontTable, "%s", charset) + "\n")
	sb.WriteString(colorTable + "\n")
	sb.WriteString("{\\stylesheet\n")
	sb.WriteString(`{\widctlpar\adjustright \fs20\cgrid \snext0 Normal;}` + "\n")
	sb.WriteString(`{\*\cs10 \additive Default Paragraph Font;}` + "\n")
	sb.WriteString(`{\*\cs37 \additive \ul\cf2 Hyperlink;}` + "\n")
	for _, def := range v.styles.Definitions() {
		sb.WriteString(def + "\n")
	}
	sb.WriteString("}\n")
	if title != "" {
		sb.WriteString(`{\info {\title ` + v.text(title) + "}}\n")
	}
	v.put(sb.String())
}
