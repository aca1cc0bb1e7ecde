package attachment

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	// MaxFiles caps the number of files accepted by one upload call.
	MaxFiles = 20

	uploadConcurrency = 4
)

type bucket interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	PublicURL(path string) string
	Delete(ctx context.Context, path string) error
}

// File is one image selected for upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Service uploads and removes entry images.
type Service struct {
	bucket   bucket
	log      *slog.Logger
	maxBytes int64
	now      func() time.Time
	suffix   func() string
}

// NewService creates a new attachment service. maxBytes caps each file;
// zero means no limit.
func NewService(log *slog.Logger, b bucket, maxBytes int64) *Service {
	return &Service{
		bucket:   b,
		log:      log.With("service", "attachment"),
		maxBytes: maxBytes,
		now:      time.Now,
		suffix:   randomSuffix,
	}
}

// UploadImages uploads every file concurrently and returns the public URLs
// in input order. Any failure fails the whole call. Objects already stored
// by sibling uploads are left in place.
func (s *Service) UploadImages(ctx context.Context, files []File) ([]string, error) {
	if err := s.validate(files); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return []string{}, nil
	}

	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i, f := range files {
		g.Go(func() error {
			name := s.objectName(f.Name)
			stored, err := s.bucket.Upload(gctx, name, f.Data, contentType(f))
			if err != nil {
				return fmt.Errorf("upload %q: %w", f.Name, err)
			}
			urls[i] = s.bucket.PublicURL(stored)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("upload images: %w", err)
	}

	s.log.InfoContext(ctx, "images uploaded", slog.Int("count", len(files)))
	return urls, nil
}

// DeleteImage removes the object behind a public URL. The object path is
// the last URL segment.
func (s *Service) DeleteImage(ctx context.Context, publicURL string) error {
	name, err := objectPath(publicURL)
	if err != nil {
		return err
	}
	if err := s.bucket.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	s.log.InfoContext(ctx, "image deleted", slog.String("path", name))
	return nil
}

func (s *Service) validate(files []File) error {
	var errs []domain.FieldError
	if len(files) > MaxFiles {
		errs = append(errs, domain.FieldError{Field: "files", Message: "max 20 files"})
	}
	for _, f := range files {
		switch {
		case len(f.Data) == 0:
			errs = append(errs, domain.FieldError{Field: "files", Message: fmt.Sprintf("%s: empty file", f.Name)})
		case s.maxBytes > 0 && int64(len(f.Data)) > s.maxBytes:
			errs = append(errs, domain.FieldError{Field: "files", Message: fmt.Sprintf("%s: too large", f.Name)})
		case !strings.HasPrefix(contentType(f), "image/"):
			errs = append(errs, domain.FieldError{Field: "files", Message: fmt.Sprintf("%s: not an image", f.Name)})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// objectName builds "{epoch millis}-{random}.{ext}" keeping the original
// extension, or "bin" when there is none.
func (s *Service) objectName(original string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(original), "."))
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), s.suffix(), ext)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func contentType(f File) string {
	if f.ContentType != "" && f.ContentType != "application/octet-stream" {
		return f.ContentType
	}
	return http.DetectContentType(f.Data)
}

func objectPath(publicURL string) (string, error) {
	raw := strings.TrimSpace(publicURL)
	if raw == "" {
		return "", domain.NewValidationError("url", "required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", domain.NewValidationError("url", "invalid url")
	}
	p := strings.TrimRight(u.Path, "/")
	name := p[strings.LastIndex(p, "/")+1:]
	if name == "" {
		return "", domain.NewValidationError("url", "no object path")
	}
	return name, nil
}
