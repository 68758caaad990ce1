package binder

import (
	"fmt"
	"mime/multipart"
	"net/http"
)

// File extracts a single uploaded file from a multipart request. Non-multipart
// requests and absent fields yield nil with no error, so optional file fields
// need no special casing. When several files share the field name, the first
// one wins.
//
// The returned header plugs straight into an upload storage:
//
//	fh, err := binder.File(r, "avatar")
//	if err != nil {
//		// 400
//	}
//	if fh != nil {
//		att, err := store.Save(ctx, fh, "avatars")
//		...
//	}
func File(r *http.Request, field string) (*multipart.FileHeader, error) {
	headers, err := Files(r, field)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, nil
	}
	return headers[0], nil
}

// Files extracts every uploaded file sharing the field name. Returns nil for
// non-multipart requests and for fields carrying no files.
func Files(r *http.Request, field string) ([]*multipart.FileHeader, error) {
	if mediaType(r.Header.Get("Content-Type")) != "multipart/form-data" {
		return nil, nil
	}

	// Form may already have parsed the body; ParseMultipartForm is not
	// idempotent, so only parse when nothing has yet.
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	}

	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil, nil
	}
	return r.MultipartForm.File[field], nil
}
