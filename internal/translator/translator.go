// Package translator resolves localized labels from per-locale message
// tables. Locale tables only list the messages they override; anything
// missing falls back to the default locale.
package translator

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Message keys used by the renderers.
const (
	KeySeeAlso       = "see_also"
	KeyReturns       = "returns"
	KeyAuthor        = "author"
	KeyAuthors       = "authors"
	KeyVersion       = "version"
	KeySince         = "since"
	KeyDate          = "date"
	KeyNote          = "note"
	KeyWarning       = "warning"
	KeyPrecondition  = "precondition"
	KeyPostcondition = "postcondition"
	KeyInvariant     = "invariant"
	KeyRemarks       = "remarks"
	KeyAttention     = "attention"
	KeyParameters    = "parameters"
	KeyReturnValues  = "return_values"
	KeyExceptions    = "exceptions"
	KeyInternalOnly  = "internal_only"

	KeyDefines           = "defines"
	KeyFuncProtos        = "func_protos"
	KeyTypedefs          = "typedefs"
	KeyEnumerations      = "enumerations"
	KeyEnumerationValues = "enumeration_values"
	KeyFunctions         = "functions"
	KeyVariables         = "variables"
	KeyFriends           = "friends"

	KeyRTFCodePage = "rtf.ansicp"
	KeyRTFCharset  = "rtf.charset"
)

// DefaultLocale is the locale every other table falls back to.
const DefaultLocale = "en"

//go:embed locales/*.yaml
var embedded embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the message tables of all known locales.
type Catalog struct {
	tags    []language.Tag
	tables  []map[string]string
	base    map[string]string
	matcher language.Matcher
}

// Load reads every *.yaml file in the root of fsys. One of them must
// define DefaultLocale.
func Load(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	c := &Catalog{}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var lf localeFile
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		tag, err := language.Parse(lf.Locale)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid locale %q: %w", name, lf.Locale, err)
		}
		if lf.Messages == nil {
			lf.Messages = map[string]string{}
		}
		c.tags = append(c.tags, tag)
		c.tables = append(c.tables, lf.Messages)
		if lf.Locale == DefaultLocale {
			c.base = lf.Messages
		}
	}
	if c.base == nil {
		return nil, fmt.Errorf("no %q locale table found", DefaultLocale)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded locale tables. It is
// loaded on first use and never changes afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "locales")
		if err == nil {
			defaultCatalog, err = Load(sub)
		}
		if err != nil {
			panic(fmt.Sprintf("translator: embedded locales: %v", err))
		}
	})
	return defaultCatalog
}

// Locales lists the locales that have a table.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Lookup resolves key for locale.
func (c *Catalog) Lookup(key, locale string) (string, bool) {
	return c.For(locale).Lookup(key)
}

// For returns a Translator bound to the closest available match of locale.
// Unknown or unparsable locales get the default table.
func (c *Catalog) For(locale string) *Translator {
	t := &Translator{locale: DefaultLocale, base: c.base}
	if locale == "" {
		return t
	}
	want, err := language.Parse(locale)
	if err != nil {
		return t
	}
	_, idx, conf := c.matcher.Match(want)
	if conf == language.No {
		return t
	}
	t.locale = c.tags[idx].String()
	t.table = c.tables[idx]
	return t
}

// Translator resolves message keys for one locale.
type Translator struct {
	locale string
	table  map[string]string
	base   map[string]string
}

// Locale is the locale the translator was matched to.
func (t *Translator) Locale() string { return t.locale }

// Lookup returns the message for key, falling back to the default locale.
func (t *Translator) Lookup(key string) (string, bool) {
	if s, ok := t.table[key]; ok {
		return s, true
	}
	s, ok := t.base[key]
	return s, ok
}
