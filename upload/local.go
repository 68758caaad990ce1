package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage implements Storage on the local filesystem. All operations are
// confined to the base directory; keys resolving outside it are rejected.
// It is safe for concurrent use.
type LocalStorage struct {
	baseDir       string
	baseURL       string
	uploadTimeout time.Duration
}

// LocalOption configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithUploadTimeout bounds each Save operation. Without it, only the caller's
// context deadline applies.
func WithUploadTimeout(timeout time.Duration) LocalOption {
	return func(s *LocalStorage) {
		s.uploadTimeout = timeout
	}
}

// NewLocalStorage creates a filesystem-backed attachment store rooted at
// baseDir. baseURL prefixes public URLs, e.g. "/uploads".
func NewLocalStorage(baseDir, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot resolve base directory: %v", ErrInvalidConfig, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: cannot create base directory: %v", ErrInvalidConfig, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &LocalStorage{
		baseDir: absBaseDir,
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Save stores the uploaded file under a generated key below dir.
func (s *LocalStorage) Save(ctx context.Context, fh *multipart.FileHeader, dir string) (*Attachment, error) {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	if fh == nil {
		return nil, ErrNilFileHeader
	}

	id := uuid.New()
	key := storageKey(dir, id, fh.Filename)

	absPath, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	defer func() { _ = dst.Close() }()

	written, err := s.copy(ctx, dst, src, absPath)
	if err != nil {
		return nil, err
	}

	mimeType, err := DetectMIMEType(fh)
	if err != nil {
		mimeType = "application/octet-stream"
	}

	return &Attachment{
		ID:       id,
		Filename: SanitizeFilename(fh.Filename),
		Size:     written,
		MIMEType: mimeType,
		Key:      key,
	}, nil
}

// copy streams src to dst in 32KB chunks, checking the context between
// chunks. A partial file is removed on any failure.
func (s *LocalStorage) copy(ctx context.Context, dst *os.File, src io.Reader, absPath string) (int64, error) {
	written := int64(0)
	buf := make([]byte, 32*1024)
	for {
		select {
		case <-ctx.Done():
			_ = dst.Close()
			_ = os.Remove(absPath)
			return 0, ctx.Err()
		default:
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			nw, writeErr := dst.Write(buf[:n])
			if writeErr != nil {
				_ = dst.Close()
				_ = os.Remove(absPath)
				return 0, fmt.Errorf("%w: %v", ErrFailedToWriteFile, writeErr)
			}
			written += int64(nw)
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			_ = dst.Close()
			_ = os.Remove(absPath)
			return 0, fmt.Errorf("%w: %v", ErrFailedToReadFile, readErr)
		}
	}
}

// Open streams a stored attachment by key.
func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	absPath, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	return f, nil
}

// Delete removes a single attachment by key.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	absPath, err := s.resolvePath(key)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidPath, key)
	}

	return os.Remove(absPath)
}

// DeletePrefix removes every attachment under a directory prefix.
func (s *LocalStorage) DeletePrefix(ctx context.Context, dir string) error {
	absPath, err := s.resolvePath(dir)
	if err != nil {
		return err
	}

	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}

	return os.RemoveAll(absPath)
}

// Exists checks if an attachment exists under the key.
func (s *LocalStorage) Exists(ctx context.Context, key string) bool {
	absPath, err := s.resolvePath(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(absPath)
	return err == nil
}

// URL returns the public URL for a stored attachment.
func (s *LocalStorage) URL(key string) string {
	key = filepath.ToSlash(filepath.Clean(key))
	if strings.HasPrefix(key, "/") {
		return key
	}
	return s.baseURL + key
}

// resolvePath confines a key to the base directory, rejecting traversal.
func (s *LocalStorage) resolvePath(key string) (string, error) {
	key = filepath.Clean(key)

	absPath, err := filepath.Abs(filepath.Join(s.baseDir, key))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}

	return absPath, nil
}
