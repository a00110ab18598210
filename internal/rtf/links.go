package rtf

import (
	"fmt"
	"hash/crc32"
	"strings"
)

const (
	fieldStart = `{\field {\*\fldinst { HYPERLINK  `
	fieldText  = ` }{}}{\fldrslt {\cs37\ul\cf2 `
	fieldEnd   = `}}}`

	// maxBookmarkLen is the longest bookmark name word processors accept.
	maxBookmarkLen = 40
)

// startLink opens a reference to file#anchor. Ref is the external document
// set of the target; only local targets become hyperlinks.
func (v *Visitor) startLink(ref, file, anchor string) {
	if ref == "" && v.opts.EnableHyperlinks {
		v.put(fieldStart + `\\l "` + bookmarkName(file, anchor) + `"` + fieldText)
		return
	}
	v.put(`{\b `)
}

func (v *Visitor) endLink(ref string) {
	if ref == "" && v.opts.EnableHyperlinks {
		v.put(fieldEnd)
		return
	}
	v.put("}")
}

func (v *Visitor) startURL(url string) {
	if v.opts.EnableHyperlinks {
		v.put(fieldStart + `"` + Escape(url) + `"` + fieldText)
		return
	}
	v.put(`{\f2 `)
}

func (v *Visitor) endURL() {
	if v.opts.EnableHyperlinks {
		v.put(fieldEnd)
		return
	}
	v.put("}")
}

func (v *Visitor) bookmark(file, anchor string) {
	name := bookmarkName(file, anchor)
	if name == "" {
		return
	}
	v.put(`{\bkmkstart ` + name + `}{\bkmkend ` + name + "}\n")
}

// bookmarkName derives the bookmark for file#anchor. Characters outside
// [A-Za-z0-9_] become underscores and long names are shortened with a
// checksum of the full name.
func bookmarkName(file, anchor string) string {
	name := file
	if anchor != "" {
		name += "_" + anchor
	}
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			sb.WriteByte(c)
		default:
			sb.WriteByte('_')
		}
	}
	out := sb.String()
	if len(out) <= maxBookmarkLen {
		return out
	}
	return fmt.Sprintf("%s_%08x", out[:maxBookmarkLen-9], crc32.ChecksumIEEE([]byte(name)))
}
