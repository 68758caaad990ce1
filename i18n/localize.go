package i18n

import (
	"github.com/dmitrymomot/formkit"
)

// validationPrefix namespaces error-kind keys inside the catalogs.
const validationPrefix = "validation."

// Localize flattens a field's error map into translated messages keyed by
// error kind. Namespaced nests flatten to "ns.kind" keys while the catalog
// lookup still uses the inner kind, so a wrapped required error under
// "illuminatiError" lands at key "illuminatiError.required" with the plain
// required message.
func (t *Translator) Localize(lang string, errs formkit.Errors) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	t.localizeInto(out, lang, "", errs)
	return out
}

func (t *Translator) localizeInto(out map[string]string, lang, prefix string, errs formkit.Errors) {
	for kind, detail := range errs {
		key := kind
		if prefix != "" {
			key = prefix + "." + kind
		}
		if detail.IsNested() {
			t.localizeInto(out, lang, key, detail.Nested)
			continue
		}
		out[key] = t.Message(lang, kind, detail)
	}
}

// LocalizeForm translates every field's errors in a form error map.
func (t *Translator) LocalizeForm(lang string, formErrs formkit.FormErrors) map[string]map[string]string {
	if len(formErrs) == 0 {
		return nil
	}
	out := make(map[string]map[string]string, len(formErrs))
	for field, errs := range formErrs {
		out[field] = t.Localize(lang, errs)
	}
	return out
}

// Message translates a single error detail. The catalog is consulted at
// "validation.<kind>"; when no entry exists the detail's built-in message is
// used instead, interpolated with the same params. Details that carry neither
// a catalog entry nor a message resolve like any other missing key.
func (t *Translator) Message(lang, kind string, detail formkit.Detail) string {
	key := validationPrefix + kind
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if detail.Message != "" {
			return interpolate(detail.Message, detail.Params)
		}
		t.logger.Warn("missing translation", "lang", lang, "key", key)
		if t.fallbackToKey {
			return key
		}
		return ""
	}
	return interpolate(tmpl, detail.Params)
}
