package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Attachment represents a stored form attachment. Key is the storage key the
// attachment lives under; it never derives from the client's filename.
type Attachment struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	MIMEType string    `json:"mime_type"`
	Key      string    `json:"key"`
}

// Storage interface for attachment backends.
type Storage interface {
	// Save stores an uploaded file under the given directory prefix and
	// returns its metadata. The storage key is generated, not caller-chosen.
	Save(ctx context.Context, fh *multipart.FileHeader, dir string) (*Attachment, error)
	// Open streams a stored attachment by key. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes a single attachment by key.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every attachment under a directory prefix.
	DeletePrefix(ctx context.Context, dir string) error
	// Exists checks if an attachment exists under the key.
	Exists(ctx context.Context, key string) bool
	// URL returns the public URL for a stored attachment.
	URL(key string) string
}

// storageKey derives the key an attachment is stored under. User-supplied
// filenames never reach the key space; only the extension survives, lowercased
// and sanitized.
func storageKey(dir string, id uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(SanitizeFilename(filename)))
	key := id.String() + ext
	if dir != "" {
		key = strings.TrimSuffix(dir, "/") + "/" + key
	}
	return key
}

// SanitizeFilename strips path components and control characters from a
// client-supplied filename. Returns "unnamed" for empty or special directory
// references.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// DetectMIMEType sniffs the MIME type from the file content.
// http.DetectContentType reads at most the first 512 bytes; the file position
// is reset afterwards when the part supports seeking.
func DetectMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = file.Close() }()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	return http.DetectContentType(buffer[:n]), nil
}

// rejectTraversal normalizes a key and refuses traversal attempts. Keys are
// always slash-separated and relative.
func rejectTraversal(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}
	return key, nil
}
