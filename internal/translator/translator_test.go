package translator

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EnglishLabels(t *testing.T) {
	tr := Default().For("en")
	got, ok := tr.Lookup(KeySeeAlso)
	require.True(t, ok)
	assert.Equal(t, "See also", got)
	assert.Equal(t, "en", tr.Locale())
}

func TestDefault_SpanishOverridesAndFallback(t *testing.T) {
	tr := Default().For("es-MX")
	assert.Equal(t, "es", tr.Locale())

	got, ok := tr.Lookup(KeyParameters)
	require.True(t, ok)
	assert.Equal(t, "Parámetros", got)

	// The Spanish table does not define the code page; the default does.
	cp, ok := tr.Lookup(KeyRTFCodePage)
	require.True(t, ok)
	assert.Equal(t, "1252", cp)
}

func TestDefault_UnknownLocaleUsesDefault(t *testing.T) {
	for _, loc := range []string{"", "fr", "not a locale!"} {
		tr := Default().For(loc)
		assert.Equal(t, DefaultLocale, tr.Locale(), "locale %q", loc)
		got, ok := tr.Lookup(KeyReturns)
		require.True(t, ok)
		assert.Equal(t, "Returns", got)
	}
}

func TestLookup_MissingKey(t *testing.T) {
	_, ok := Default().Lookup("no_such_key", "es")
	assert.False(t, ok)
}

func TestDefault_EveryLocaleKeyExistsInBase(t *testing.T) {
	c := Default()
	for i, table := range c.tables {
		for key := range table {
			_, ok := c.base[key]
			assert.True(t, ok, "locale %s defines %q which the default locale lacks", c.tags[i], key)
		}
	}
}

func TestLoad_RequiresDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"de.yaml": {Data: []byte("locale: de\nmessages:\n  note: Hinweis\n")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("locale: [\n")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
}

func TestLoad_CustomTables(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("locale: en\nmessages:\n  note: Note\n  date: Date\n")},
		"de.yaml": {Data: []byte("locale: de\nmessages:\n  note: Hinweis\n")},
	}
	c, err := Load(fsys)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "de"}, c.Locales())

	note, _ := c.Lookup(KeyNote, "de-AT")
	assert.Equal(t, "Hinweis", note)
	date, _ := c.Lookup(KeyDate, "de")
	assert.Equal(t, "Date", date)
}
