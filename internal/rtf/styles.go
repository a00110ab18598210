package rtf

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
)

// MaxIndentLevel is the deepest nesting level that has its own styles.
const MaxIndentLevel = 9

// ErrMissingStyle is returned when the style table has no entry for a
// requested style at the current indentation level.
var ErrMissingStyle = errors.New("missing style")

// StyleData is one stylesheet entry. Reference is emitted where the style is
// applied; Definition is its line in the document stylesheet.
type StyleData struct {
	Reference  string `toml:"reference"`
	Definition string `toml:"definition"`
}

// StyleTable maps style keys such as "CodeExample3" or "Heading2" to their
// control words.
type StyleTable struct {
	styles map[string]StyleData
}

type styleFamily struct {
	name   string
	title  string
	number int
	format func(level int) string
}

var leveledFamilies = []styleFamily{
	{"CodeExample", "Code Example", 40, func(l int) string {
		return fmt.Sprintf(`\li%d\widctlpar\adjustright \shading1000\cbpat8 \f2\fs16\cgrid `, l*360)
	}},
	{"ListBullet", "List Bullet", 81, func(l int) string {
		return fmt.Sprintf(`\fi-360\li%d\widctlpar\tx%d\adjustright \fs20\cgrid `, (l+1)*360, (l+1)*360)
	}},
	{"ListEnum", "List Enum", 91, func(l int) string {
		return fmt.Sprintf(`\fi-360\li%d\widctlpar\tx%d\adjustright \fs20\cgrid `, (l+1)*360, (l+1)*360)
	}},
	{"ListContinue", "List Continue", 101, func(l int) string {
		return fmt.Sprintf(`\li%d\sa60\widctlpar\adjustright \fs20\cgrid `, (l+1)*360)
	}},
	{"DescContinue", "Desc Continue", 111, func(l int) string {
		return fmt.Sprintf(`\li%d\widctlpar\ql\adjustright \fs20\cgrid `, (l+1)*360)
	}},
}

var headings = []string{
	1: `\sb240\sa60\keepn\widctlpar\adjustright \b\f1\fs36\kerning36\cgrid `,
	2: `\sb240\sa60\keepn\widctlpar\adjustright \b\f1\fs28\kerning28\cgrid `,
	3: `\sb240\sa60\keepn\widctlpar\adjustright \b\f1\cgrid `,
	4: `\sb240\sa60\keepn\widctlpar\adjustright \b\f1\fs20\cgrid `,
	5: `\sb90\sa30\keepn\widctlpar\adjustright \b\f1\fs20\cgrid `,
}

func styleEntry(number int, format, title string) StyleData {
	ref := fmt.Sprintf(`\s%d%s`, number, format)
	return StyleData{
		Reference:  ref,
		Definition: fmt.Sprintf(`{%s\sbasedon0 \snext%d %s;}`, ref, number, title),
	}
}

// DefaultStyles returns the built-in style table. It covers every leveled
// style from level 0 to MaxIndentLevel, Heading1 to Heading5 and BodyText.
func DefaultStyles() *StyleTable {
	t := &StyleTable{styles: make(map[string]StyleData)}
	for _, f := range leveledFamilies {
		for level := 0; level <= MaxIndentLevel; level++ {
			t.styles[f.name+strconv.Itoa(level)] = styleEntry(f.number+level, f.format(level),
				fmt.Sprintf("%s %d", f.title, level))
		}
	}
	for n := 1; n < len(headings); n++ {
		t.styles["Heading"+strconv.Itoa(n)] = styleEntry(n, headings[n], fmt.Sprintf("heading %d", n))
	}
	t.styles["BodyText"] = styleEntry(18, `\sa60\sb30\widctlpar\qj \fs22\cgrid `, "Body Text")
	return t
}

type styleFile struct {
	Styles map[string]StyleData `toml:"styles"`
}

// LoadStyles reads a TOML style sheet and layers it over DefaultStyles.
//
//	[styles.CodeExample0]
//	reference = '\s40\li0\f2\fs18 '
//	definition = '{\s40\li0\f2\fs18 \sbasedon0 \snext40 Code Example 0;}'
func LoadStyles(path string) (*StyleTable, error) {
	var f styleFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("load styles %s: %w", path, err)
	}
	t := DefaultStyles()
	for key, sd := range f.Styles {
		if sd.Reference == "" {
			return nil, fmt.Errorf("load styles %s: style %q has no reference", path, key)
		}
		t.Set(key, sd)
	}
	return t, nil
}

// Set adds or replaces the style stored under key.
func (t *StyleTable) Set(key string, sd StyleData) {
	if t.styles == nil {
		t.styles = make(map[string]StyleData)
	}
	t.styles[key] = sd
}

// Delete removes key from the table.
func (t *StyleTable) Delete(key string) {
	delete(t.styles, key)
}

// Lookup returns the style name at level. Level is appended to name, so
// Lookup("Heading", 2) reads the "Heading2" entry.
func (t *StyleTable) Lookup(name string, level int) (StyleData, error) {
	key := name + strconv.Itoa(level)
	sd, ok := t.styles[key]
	if !ok {
		return StyleData{}, fmt.Errorf("%w: %s", ErrMissingStyle, key)
	}
	return sd, nil
}

// Definitions returns the stylesheet lines of all styles, ordered by key.
func (t *StyleTable) Definitions() []string {
	keys := make([]string, 0, len(t.styles))
	for k := range t.styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	defs := make([]string, 0, len(keys))
	for _, k := range keys {
		if d := t.styles[k].Definition; d != "" {
			defs = append(defs, d)
		}
	}
	return defs
}
