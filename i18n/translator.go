package i18n

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when negotiation fails and no override is configured.
const DefaultLanguage = "en"

// paramRegex matches %{name} placeholders in translation templates.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator resolves dot-path keys against per-language catalogs and
// interpolates %{name} placeholders. A Translator is immutable after New
// returns and is safe for concurrent use.
type Translator struct {
	catalogs      map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
	matcher       language.Matcher
	supported     []string
}

// Option configures a Translator during construction.
type Option func(*Translator)

// WithDefaultLanguage sets the language returned when negotiation fails.
// The language must be one of the catalog keys.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		t.defaultLang = lang
	}
}

// WithFallbackToKey makes missing translations resolve to the lookup key
// instead of an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger used to report missing translations.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Translator from per-language catalogs. Catalog keys must be
// valid BCP 47 tags; nested maps are addressed with dot-path keys.
func New(catalogs map[string]map[string]any, opts ...Option) (*Translator, error) {
	if len(catalogs) == 0 {
		return nil, ErrEmptyCatalog
	}

	t := &Translator{
		catalogs:    catalogs,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for lang, entries := range catalogs {
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: language %q has no entries", ErrInvalidCatalog, lang)
		}
	}
	if _, ok := catalogs[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q has no catalog", ErrInvalidCatalog, t.defaultLang)
	}

	// The matcher's first tag doubles as its fallback, so the default
	// language always leads. Remaining languages follow sorted to keep
	// negotiation deterministic across runs.
	t.supported = append(t.supported, t.defaultLang)
	for lang := range catalogs {
		if lang != t.defaultLang {
			t.supported = append(t.supported, lang)
		}
	}
	sort.Strings(t.supported[1:])

	tags := make([]language.Tag, 0, len(t.supported))
	for _, lang := range t.supported {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, lang, err)
		}
		tags = append(tags, tag)
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// NewFromYAML creates a Translator from a YAML document keyed by language:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//	de:
//	  validation:
//	    required: "%{field} ist erforderlich"
func NewFromYAML(data []byte, opts ...Option) (*Translator, error) {
	var catalogs map[string]map[string]any
	if err := yaml.Unmarshal(data, &catalogs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseYAML, err)
	}
	return New(catalogs, opts...)
}

// DefaultLang returns the configured default language.
func (t *Translator) DefaultLang() string {
	return t.defaultLang
}

// Supported returns the negotiable languages, default first.
func (t *Translator) Supported() []string {
	out := make([]string, len(t.supported))
	copy(out, t.supported)
	return out
}

// Negotiate picks the best supported language for an Accept-Language header.
// Unparseable or empty headers resolve to the default language.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, _ := t.matcher.Match(tags...)
	return t.supported[idx]
}

// T translates a dot-path key for the given language. Args are alternating
// placeholder names and values for %{name} interpolation:
//
//	t.T("en", "validation.min_len", "field", "username", "min", "3")
//
// Missing translations fall back to the default language, then to the key
// itself when fallback-to-key is enabled, then to an empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		t.logger.Warn("missing translation", "lang", lang, "key", key)
		if t.fallbackToKey {
			return key
		}
		return ""
	}
	return interpolate(tmpl, pairArgs(args))
}

// lookup resolves a dot-path key, trying the requested language before the
// default one.
func (t *Translator) lookup(lang, key string) (string, bool) {
	if entries, ok := t.catalogs[lang]; ok {
		if tmpl, ok := resolvePath(entries, key); ok {
			return tmpl, true
		}
	}
	if lang != t.defaultLang {
		if tmpl, ok := resolvePath(t.catalogs[t.defaultLang], key); ok {
			return tmpl, true
		}
	}
	return "", false
}

// resolvePath walks nested maps along dot-separated segments. YAML decodes
// nested mappings as map[string]any, so only that shape is traversed.
func resolvePath(entries map[string]any, key string) (string, bool) {
	segments := strings.Split(key, ".")
	current := any(entries)
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok {
			return "", false
		}
	}
	tmpl, ok := current.(string)
	return tmpl, ok
}

// interpolate substitutes %{name} placeholders from params. Placeholders
// without a matching param are kept verbatim so broken catalogs stay visible.
func interpolate(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := params[name]; ok {
			return fmt.Sprint(value)
		}
		return match
	})
}

// pairArgs converts alternating name/value strings into a param map.
// A trailing name without a value is ignored.
func pairArgs(args []string) map[string]any {
	if len(args) < 2 {
		return nil
	}
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
