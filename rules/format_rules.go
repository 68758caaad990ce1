package rules

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Email fails with kind "email" when a non-empty value is not a valid email
// address. Parses with RFC 5322 rules, then applies the stricter checks
// typical web signups expect: a single @, a non-empty local part, and a
// dotted domain.
func Email() formkit.Validator[string] {
	return func(f *formkit.Field[string]) formkit.Errors {
		v := f.Value()
		if v == "" {
			return nil
		}
		if isEmailAddress(v) {
			return nil
		}
		return formkit.Errors{"email": formkit.Detail{
			Message: "must be a valid email address",
			Params:  map[string]any{"field": f.Name()},
		}}
	}
}

func isEmailAddress(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL fails with kind "url" when a non-empty value is not an absolute URL
// with both scheme and host.
func URL() formkit.Validator[string] {
	return func(f *formkit.Field[string]) formkit.Errors {
		v := f.Value()
		if v == "" {
			return nil
		}
		if u, err := url.ParseRequestURI(v); err == nil && u.Scheme != "" && u.Host != "" {
			return nil
		}
		return formkit.Errors{"url": formkit.Detail{
			Message: "must be a valid URL",
			Params:  map[string]any{"field": f.Name()},
		}}
	}
}

// Pattern fails with kind "pattern" when a non-empty value does not match the
// given expression. Panics if re is nil.
func Pattern(re *regexp.Regexp) formkit.Validator[string] {
	if re == nil {
		panic("rules: Pattern requires a compiled expression")
	}
	return func(f *formkit.Field[string]) formkit.Errors {
		v := f.Value()
		if v == "" || re.MatchString(v) {
			return nil
		}
		return formkit.Errors{"pattern": formkit.Detail{
			Message: "has an invalid format",
			Params:  map[string]any{"field": f.Name(), "pattern": re.String()},
		}}
	}
}

// Alphanumeric fails with kind "alphanumeric" when a non-empty value contains
// anything besides ASCII letters and digits.
func Alphanumeric() formkit.Validator[string] {
	return func(f *formkit.Field[string]) formkit.Errors {
		v := f.Value()
		if v == "" || alphanumericRegex.MatchString(v) {
			return nil
		}
		return formkit.Errors{"alphanumeric": formkit.Detail{
			Message: "must contain only letters and digits",
			Params:  map[string]any{"field": f.Name()},
		}}
	}
}
