// Package i18n translates validation errors and other user-facing strings
// from per-language catalogs.
//
// # Catalogs
//
// Catalogs are nested maps keyed by BCP 47 language tags. Entries are
// addressed with dot-path keys and may carry %{name} placeholders:
//
//	catalogs := map[string]map[string]any{
//		"en": {
//			"validation": map[string]any{
//				"required": "%{field} is required",
//				"min_len":  "%{field} must be at least %{min} characters",
//			},
//		},
//	}
//	translator, err := i18n.New(catalogs)
//
// YAML catalogs load the same shape via NewFromYAML, typically from an
// embedded file:
//
//	//go:embed translations.yaml
//	var translationsYAML []byte
//
//	translator, err := i18n.NewFromYAML(translationsYAML)
//
// # Error Localization
//
// Localize flattens a field's error map into translated messages. Error kinds
// become catalog keys under the "validation." prefix and each detail's params
// fill the placeholders. When the catalog has no entry for a kind, the
// detail's built-in message is used so validation output never goes blank
// over a sparse catalog:
//
//	messages := translator.Localize(lang, formkit.ExtractFieldErrors(err))
//
// # Language Negotiation
//
// Negotiate matches an Accept-Language header against the catalog languages
// using golang.org/x/text/language and falls back to the default language
// when nothing matches:
//
//	lang := translator.Negotiate(r.Header.Get("Accept-Language"))
//
// # Concurrency
//
// A Translator is immutable after construction and safe for concurrent use
// without synchronization.
package i18n
