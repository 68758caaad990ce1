package formkit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Decoder converts raw form input (every value submitted under one key) into
// a field's value type. Supplied per field via WithDecoder when the built-in
// decoder does not cover the type.
type Decoder[T any] func(raw []string) (T, error)

// decodeValue is the built-in decoder covering the value types HTML forms
// commonly produce.
func decodeValue[T any](raw []string) (T, error) {
	var v T
	first := ""
	if len(raw) > 0 {
		first = raw[0]
	}

	switch p := any(&v).(type) {
	case *string:
		*p = first
	case *bool:
		b, err := parseFormBool(first)
		if err != nil {
			return v, err
		}
		*p = b
	case *int:
		n, err := strconv.Atoi(first)
		if err != nil {
			return v, fmt.Errorf("%w: invalid int %q", ErrDecode, first)
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(first, 10, 64)
		if err != nil {
			return v, fmt.Errorf("%w: invalid int %q", ErrDecode, first)
		}
		*p = n
	case *float64:
		n, err := strconv.ParseFloat(first, 64)
		if err != nil {
			return v, fmt.Errorf("%w: invalid float %q", ErrDecode, first)
		}
		*p = n
	case *[]string:
		*p = slices.Clone(raw)
	case *time.Time:
		t, err := time.Parse(time.RFC3339, first)
		if err != nil {
			return v, fmt.Errorf("%w: invalid timestamp %q", ErrDecode, first)
		}
		*p = t
	default:
		return v, ErrNoDecoder
	}

	return v, nil
}

// parseFormBool accepts strconv forms plus the values browsers send for
// checkboxes.
func parseFormBool(s string) (bool, error) {
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "", "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: invalid bool %q", ErrDecode, s)
}

// convertAny bridges the dynamic representations encoding/json produces
// (float64 for numbers, []any for arrays, RFC 3339 strings for timestamps)
// to the field's value type.
func convertAny[T any](v any) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *int:
		if fv, ok := v.(float64); ok {
			*p = int(fv)
			return out, true
		}
	case *int64:
		if fv, ok := v.(float64); ok {
			*p = int64(fv)
			return out, true
		}
	case *[]string:
		av, ok := v.([]any)
		if !ok {
			return out, false
		}
		ss := make([]string, 0, len(av))
		for _, item := range av {
			s, ok := item.(string)
			if !ok {
				return out, false
			}
			ss = append(ss, s)
		}
		*p = ss
		return out, true
	case *time.Time:
		if sv, ok := v.(string); ok {
			if t, err := time.Parse(time.RFC3339, sv); err == nil {
				*p = t
				return out, true
			}
		}
	}
	return out, false
}
