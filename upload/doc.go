// Package upload stores form attachments on the local filesystem or S3.
//
// Attachments are stored under generated keys ("<dir>/<uuid><ext>"), so
// client-supplied filenames never influence where bytes land. The original
// filename survives only as metadata on the returned Attachment.
//
// # Usage
//
//	storage, err := upload.NewLocalStorage("./uploads", "/uploads")
//	if err != nil {
//		return err
//	}
//
//	if errs := upload.Validate(fh, upload.MaxSize(5<<20), upload.AllowedTypes("image/png", "image/jpeg")); errs != nil {
//		// merge errs into the form's error map under the input's name
//	}
//
//	att, err := storage.Save(ctx, fh, submissionID.String())
//
// Checks report violations as formkit error maps, so oversized or mistyped
// files surface to clients exactly like failed field validation.
//
// # Backends
//
// LocalStorage confines all operations to its base directory and rejects
// traversal in keys. S3Storage targets Amazon S3 and S3-compatible services
// (MinIO, DigitalOcean Spaces) via the endpoint and path-style settings.
package upload
