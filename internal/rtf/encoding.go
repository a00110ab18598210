package rtf

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// DefaultCodePage is used when a language does not name its own.
const DefaultCodePage = "1252"

var codePages = map[string]encoding.Encoding{
	"874":  charmap.Windows874,
	"932":  japanese.ShiftJIS,
	"936":  simplifiedchinese.GBK,
	"949":  korean.EUCKR,
	"950":  traditionalchinese.Big5,
	"1250": charmap.Windows1250,
	"1251": charmap.Windows1251,
	"1252": charmap.Windows1252,
	"1253": charmap.Windows1253,
	"1254": charmap.Windows1254,
	"1255": charmap.Windows1255,
	"1256": charmap.Windows1256,
	"1257": charmap.Windows1257,
	"1258": charmap.Windows1258,
}

// CodePage returns the encoding of an ANSI code page number such as "1252".
func CodePage(cp string) (encoding.Encoding, bool) {
	enc, ok := codePages[cp]
	return enc, ok
}

// textEncoder converts UTF-8 text to escaped RTF in one code page. Runes the
// code page cannot represent become \uN? escapes.
type textEncoder struct {
	enc *encoding.Encoder
}

func newTextEncoder(cp string) (textEncoder, bool) {
	enc, ok := CodePage(cp)
	if !ok {
		enc = charmap.Windows1252
	}
	return textEncoder{enc: enc.NewEncoder()}, ok
}

func (te textEncoder) encode(s string) string {
	if te.enc == nil {
		return Escape(s)
	}
	var sb strings.Builder
	sb.Grow(len(s))
	var st filterState
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		if r < utf8.RuneSelf {
			st = st.step(&sb, byte(r))
			continue
		}
		n := utf8.EncodeRune(buf[:], r)
		b, err := te.enc.Bytes(buf[:n])
		if err != nil || len(b) == 0 {
			writeUnicode(&sb, r)
			st = filterState{}
			continue
		}
		for _, c := range b {
			st = st.step(&sb, c)
		}
		// A pair never spans two runes.
		st = filterState{}
	}
	return sb.String()
}

// writeUnicode writes r as \uN? escapes, N being signed UTF-16 units.
func writeUnicode(sb *strings.Builder, r rune) {
	for _, u := range utf16.Encode([]rune{r}) {
		sb.WriteString(`\u`)
		sb.WriteString(strconv.Itoa(int(int16(u))))
		sb.WriteByte('?')
	}
}
