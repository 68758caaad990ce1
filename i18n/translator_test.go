package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/i18n"
)

func testCatalogs() map[string]map[string]any {
	return map[string]map[string]any{
		"en": {
			"hello": "Hello",
			"validation": map[string]any{
				"required": "%{field} is required",
				"min_len":  "%{field} must be at least %{min} characters",
			},
		},
		"de": {
			"hello": "Hallo",
			"validation": map[string]any{
				"required": "%{field} ist erforderlich",
			},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("builds a translator from catalogs", func(t *testing.T) {
		translator, err := i18n.New(testCatalogs())
		require.NoError(t, err)
		assert.Equal(t, "en", translator.DefaultLang())
		assert.Equal(t, []string{"en", "de"}, translator.Supported())
	})

	t.Run("rejects empty catalogs", func(t *testing.T) {
		_, err := i18n.New(nil)
		require.ErrorIs(t, err, i18n.ErrEmptyCatalog)
	})

	t.Run("rejects a language without entries", func(t *testing.T) {
		catalogs := testCatalogs()
		catalogs["fr"] = map[string]any{}
		_, err := i18n.New(catalogs)
		require.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("rejects a default language without a catalog", func(t *testing.T) {
		_, err := i18n.New(testCatalogs(), i18n.WithDefaultLanguage("fr"))
		require.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("rejects an unparseable language tag", func(t *testing.T) {
		catalogs := testCatalogs()
		catalogs["not a tag"] = map[string]any{"hello": "?"}
		_, err := i18n.New(catalogs)
		require.ErrorIs(t, err, i18n.ErrInvalidLanguage)
	})
}

func TestNewFromYAML(t *testing.T) {
	t.Run("parses a YAML catalog", func(t *testing.T) {
		data := []byte(`
en:
  hello: Hello
  validation:
    required: "%{field} is required"
de:
  hello: Hallo
`)
		translator, err := i18n.NewFromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, "Hallo", translator.T("de", "hello"))
		assert.Equal(t, "email is required", translator.T("en", "validation.required", "field", "email"))
	})

	t.Run("reports invalid YAML", func(t *testing.T) {
		_, err := i18n.NewFromYAML([]byte("en: [broken"))
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})
}

func TestT(t *testing.T) {
	translator, err := i18n.New(testCatalogs())
	require.NoError(t, err)

	t.Run("resolves a flat key", func(t *testing.T) {
		assert.Equal(t, "Hello", translator.T("en", "hello"))
	})

	t.Run("resolves a dot-path key with interpolation", func(t *testing.T) {
		got := translator.T("en", "validation.min_len", "field", "username", "min", "3")
		assert.Equal(t, "username must be at least 3 characters", got)
	})

	t.Run("falls back to the default language", func(t *testing.T) {
		got := translator.T("de", "validation.min_len", "field", "username", "min", "3")
		assert.Equal(t, "username must be at least 3 characters", got)
	})

	t.Run("keeps unmatched placeholders verbatim", func(t *testing.T) {
		got := translator.T("en", "validation.min_len", "field", "username")
		assert.Equal(t, "username must be at least %{min} characters", got)
	})

	t.Run("missing key resolves to empty string by default", func(t *testing.T) {
		assert.Equal(t, "", translator.T("en", "no.such.key"))
	})

	t.Run("missing key resolves to the key with fallback enabled", func(t *testing.T) {
		fallback, err := i18n.New(testCatalogs(), i18n.WithFallbackToKey(true))
		require.NoError(t, err)
		assert.Equal(t, "no.such.key", fallback.T("en", "no.such.key"))
	})

	t.Run("non-string nodes do not resolve", func(t *testing.T) {
		assert.Equal(t, "", translator.T("en", "validation"))
	})
}

func TestNegotiate(t *testing.T) {
	translator, err := i18n.New(testCatalogs())
	require.NoError(t, err)

	t.Run("matches an exact language", func(t *testing.T) {
		assert.Equal(t, "de", translator.Negotiate("de"))
	})

	t.Run("matches a regional variant to its base", func(t *testing.T) {
		assert.Equal(t, "de", translator.Negotiate("de-AT,en;q=0.5"))
	})

	t.Run("honors quality ordering", func(t *testing.T) {
		assert.Equal(t, "de", translator.Negotiate("en;q=0.3, de;q=0.9"))
	})

	t.Run("unsupported languages fall back to the default", func(t *testing.T) {
		assert.Equal(t, "en", translator.Negotiate("ja,ko;q=0.8"))
	})

	t.Run("empty header falls back to the default", func(t *testing.T) {
		assert.Equal(t, "en", translator.Negotiate(""))
	})

	t.Run("garbage header falls back to the default", func(t *testing.T) {
		assert.Equal(t, "en", translator.Negotiate(";;;"))
	})
}
