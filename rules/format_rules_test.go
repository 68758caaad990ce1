package rules_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/rules"
)

func TestEmail(t *testing.T) {
	t.Run("passes for valid addresses", func(t *testing.T) {
		for _, v := range []string{
			"test@example.com",
			"first.last@sub.example.co.uk",
			"user+tag@example.io",
		} {
			assert.Nil(t, check(rules.Email(), "email", v), v)
		}
	})

	t.Run("fails for invalid addresses", func(t *testing.T) {
		for _, v := range []string{
			"not-an-email",
			"@example.com",
			"user@",
			"user@localhost",
			"user@.example.com",
			"user@example.com.",
			"user@exa..mple.com",
		} {
			errs := check(rules.Email(), "email", v)
			assert.True(t, errs.Has("email"), v)
		}
	})

	t.Run("skips empty values", func(t *testing.T) {
		assert.Nil(t, check(rules.Email(), "email", ""))
	})

	t.Run("reports kind and params", func(t *testing.T) {
		errs := check(rules.Email(), "contact_email", "nope")
		require.True(t, errs.Has("email"))

		detail, _ := errs.Get("email")
		assert.Equal(t, "must be a valid email address", detail.Message)
		assert.Equal(t, "contact_email", detail.Params["field"])
	})
}

func TestURL(t *testing.T) {
	t.Run("passes for absolute URLs", func(t *testing.T) {
		assert.Nil(t, check(rules.URL(), "website", "https://example.com/path?q=1"))
		assert.Nil(t, check(rules.URL(), "website", "http://example.com"))
	})

	t.Run("fails without scheme or host", func(t *testing.T) {
		assert.True(t, check(rules.URL(), "website", "example.com").Has("url"))
		assert.True(t, check(rules.URL(), "website", "/relative/path").Has("url"))
		assert.True(t, check(rules.URL(), "website", "not a url").Has("url"))
	})

	t.Run("skips empty values", func(t *testing.T) {
		assert.Nil(t, check(rules.URL(), "website", ""))
	})
}

func TestPattern(t *testing.T) {
	hexColor := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	t.Run("passes on match", func(t *testing.T) {
		assert.Nil(t, check(rules.Pattern(hexColor), "color", "#a1b2c3"))
	})

	t.Run("fails on mismatch with the pattern in params", func(t *testing.T) {
		errs := check(rules.Pattern(hexColor), "color", "red")
		require.True(t, errs.Has("pattern"))

		detail, _ := errs.Get("pattern")
		assert.Equal(t, hexColor.String(), detail.Params["pattern"])
	})

	t.Run("skips empty values", func(t *testing.T) {
		assert.Nil(t, check(rules.Pattern(hexColor), "color", ""))
	})

	t.Run("panics on nil expression", func(t *testing.T) {
		assert.Panics(t, func() { rules.Pattern(nil) })
	})
}

func TestAlphanumeric(t *testing.T) {
	t.Run("passes for letters and digits", func(t *testing.T) {
		assert.Nil(t, check(rules.Alphanumeric(), "username", "user123"))
	})

	t.Run("fails for anything else", func(t *testing.T) {
		assert.True(t, check(rules.Alphanumeric(), "username", "user-123").Has("alphanumeric"))
		assert.True(t, check(rules.Alphanumeric(), "username", "user 123").Has("alphanumeric"))
	})

	t.Run("skips empty values", func(t *testing.T) {
		assert.Nil(t, check(rules.Alphanumeric(), "username", ""))
	})
}
