package rtf

import "strings"

const hexDigits = "0123456789ABCDEF"

// filterState tracks whether the previous byte opened a two-byte sequence.
type filterState struct {
	multiByte bool
}

// step appends the escaped form of c. A byte with the high bit set opens a
// two-byte sequence whose second byte is always hex-escaped as-is.
func (st filterState) step(sb *strings.Builder, c byte) filterState {
	if st.multiByte {
		writeHex(sb, c)
		return filterState{}
	}
	if c >= 0x80 {
		writeHex(sb, c)
		return filterState{multiByte: true}
	}
	switch c {
	case '{', '}', '\\':
		sb.WriteByte('\\')
	}
	sb.WriteByte(c)
	return st
}

func writeHex(sb *strings.Builder, c byte) {
	sb.WriteString(`\'`)
	sb.WriteByte(hexDigits[c>>4])
	sb.WriteByte(hexDigits[c&0x0f])
}

// Escape makes s safe for RTF text: braces and backslashes are escaped and
// every non-ASCII byte becomes a \'XX hex escape.
func Escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	var st filterState
	for i := 0; i < len(s); i++ {
		st = st.step(&sb, s[i])
	}
	return sb.String()
}
