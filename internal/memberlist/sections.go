package memberlist

import "github.com/dgallion1/docrtf/internal/translator"

// Section is one declaration section a page generator should write.
type Section struct {
	Key   string `json:"key" yaml:"key"`
	Title string `json:"title" yaml:"title"`
	Count int    `json:"count" yaml:"count"`
}

// Lookup resolves a message key to a localized label.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// Sections returns the non-empty declaration sections for c in page order.
// Titles come from tr; a missing title falls back to the key.
func Sections(c Counts, tr Lookup) []Section {
	order := []struct {
		key string
		n   int
	}{
		{translator.KeyDefines, c.Defines},
		{translator.KeyFuncProtos, c.Prototypes},
		{translator.KeyTypedefs, c.Typedefs},
		{translator.KeyEnumerations, c.Enums},
		{translator.KeyEnumerationValues, c.EnumValues},
		{translator.KeyFunctions, c.Functions},
		{translator.KeyVariables, c.Variables},
		{translator.KeyFriends, c.Friends},
	}
	var out []Section
	for _, s := range order {
		if s.n == 0 {
			continue
		}
		title := s.key
		if tr != nil {
			if t, ok := tr.Lookup(s.key); ok {
				title = t
			}
		}
		out = append(out, Section{Key: s.key, Title: title, Count: s.n})
	}
	return out
}
