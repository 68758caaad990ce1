package upload

import (
	"mime/multipart"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit"
)

// Check inspects an uploaded file and reports violations in the form error
// model, so attachment problems merge into the same response shape as field
// validation.
type Check func(fh *multipart.FileHeader) formkit.Errors

// MaxSize fails files larger than maxBytes with kind "max_size".
func MaxSize(maxBytes int64) Check {
	return func(fh *multipart.FileHeader) formkit.Errors {
		if fh == nil || fh.Size <= maxBytes {
			return nil
		}
		return formkit.Errors{
			"max_size": {
				Message: "file is too large",
				Params: map[string]any{
					"file": fh.Filename,
					"size": fh.Size,
					"max":  maxBytes,
				},
			},
		}
	}
}

// AllowedTypes fails files whose sniffed MIME type is not listed, with kind
// "mime_type". The type comes from content sniffing, never from the
// client-declared header.
func AllowedTypes(types ...string) Check {
	allowed := slices.Clone(types)
	return func(fh *multipart.FileHeader) formkit.Errors {
		if fh == nil || len(allowed) == 0 {
			return nil
		}
		mimeType, err := DetectMIMEType(fh)
		if err != nil {
			return formkit.Errors{
				"mime_type": {
					Message: "cannot determine file type",
					Params:  map[string]any{"file": fh.Filename},
				},
			}
		}
		// DetectContentType appends charset parameters to text types;
		// allow lists name bare media types.
		base := mimeType
		if i := strings.Index(base, ";"); i >= 0 {
			base = strings.TrimSpace(base[:i])
		}
		if slices.Contains(allowed, base) {
			return nil
		}
		return formkit.Errors{
			"mime_type": {
				Message: "file type is not allowed",
				Params: map[string]any{
					"file":    fh.Filename,
					"type":    mimeType,
					"allowed": allowed,
				},
			},
		}
	}
}

// Validate runs all checks against the file and merges their findings.
// A nil result means the file passed every check.
func Validate(fh *multipart.FileHeader, checks ...Check) formkit.Errors {
	var errs formkit.Errors
	for _, check := range checks {
		errs = errs.Merge(check(fh))
	}
	return errs
}
