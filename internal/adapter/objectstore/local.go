package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// LocalBucket stores objects as files below a directory. Files are served
// by Handler under the configured public base URL.
type LocalBucket struct {
	dir     string
	baseURL string
	log     *slog.Logger
}

// NewLocalBucket creates the directory if needed and returns a LocalBucket.
func NewLocalBucket(dir, publicBaseURL string, logger *slog.Logger) (*LocalBucket, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalBucket{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		log:     logger.With("adapter", "objectstore", "dir", dir),
	}, nil
}

// Ping checks that the storage directory is still there.
func (b *LocalBucket) Ping(context.Context) error {
	info, err := os.Stat(b.dir)
	if err != nil {
		return fmt.Errorf("stat storage dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage dir %s: not a directory", b.dir)
	}
	return nil
}

// Upload writes data to path. An existing file is not overwritten.
func (b *LocalBucket) Upload(ctx context.Context, objectPath string, data []byte, _ string) (string, error) {
	full, err := b.resolve(objectPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("upload %s: %w: %w", objectPath, domain.ErrRequestFailed, err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("upload %s: %w", objectPath, domain.ErrConflict)
		}
		return "", fmt.Errorf("upload %s: %w: %w", objectPath, domain.ErrRequestFailed, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("upload %s: %w: %w", objectPath, domain.ErrRequestFailed, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w: %w", objectPath, domain.ErrRequestFailed, err)
	}

	b.log.InfoContext(ctx, "object stored", slog.String("path", objectPath), slog.Int("bytes", len(data)))
	return objectPath, nil
}

// PublicURL returns the URL Handler serves path under.
func (b *LocalBucket) PublicURL(objectPath string) string {
	return b.baseURL + "/" + strings.TrimLeft(path.Clean("/"+objectPath), "/")
}

// Delete removes the file at path.
func (b *LocalBucket) Delete(ctx context.Context, objectPath string) error {
	full, err := b.resolve(objectPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("delete %s: %w", objectPath, domain.ErrNotFound)
		}
		return fmt.Errorf("delete %s: %w: %w", objectPath, domain.ErrRequestFailed, err)
	}

	b.log.InfoContext(ctx, "object removed", slog.String("path", objectPath))
	return nil
}

// Handler serves the stored files read-only. Directories are not listed.
func (b *LocalBucket) Handler() http.Handler {
	return http.FileServer(filesOnly{http.Dir(b.dir)})
}

// filesOnly hides directories so the file server answers 404 for them.
type filesOnly struct{ http.FileSystem }

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if st.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}

// resolve maps an object path to a file below dir, rejecting escapes.
func (b *LocalBucket) resolve(objectPath string) (string, error) {
	clean := path.Clean("/" + objectPath)
	if clean == "/" || strings.Contains(objectPath, "..") {
		return "", domain.NewValidationError("path", "invalid object path")
	}
	return filepath.Join(b.dir, filepath.FromSlash(clean)), nil
}
