package i18n

import "errors"

var (
	// ErrEmptyCatalog indicates no language catalogs were provided.
	ErrEmptyCatalog = errors.New("no translation catalogs provided")

	// ErrInvalidCatalog indicates a catalog had no translations for a language.
	ErrInvalidCatalog = errors.New("invalid translation catalog")

	// ErrInvalidLanguage indicates a catalog key is not a parseable BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language tag")

	// ErrFailedToParseYAML indicates the YAML catalog could not be decoded.
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")
)
