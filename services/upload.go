package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/altos-estudio/altos-backend/errs"
)

// MaxUploadSize caps admin image uploads at 15MB.
const MaxUploadSize = 15 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

var whitespace = regexp.MustCompile(`\s+`)

// UploadService validates admin image uploads and writes them into the
// public uploads directory.
type UploadService struct {
	dir string
}

// NewUploadService returns a service writing under dir, e.g. "public/uploads".
func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// Save validates the file and writes it under a timestamped name, returning
// the public URL ("/uploads/<name>").
func (s *UploadService) Save(filename, contentType string, size int64, file io.Reader) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", errs.NewBadRequestError("Invalid file type. Only PNG, JPG, JPEG, and WebP are allowed.")
	}
	if size > MaxUploadSize {
		return "", errs.NewBadRequestError("File too large. Maximum size is 15MB.")
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), slugFilename(filename))

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, MaxUploadSize)); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return "/uploads/" + name, nil
}

func slugFilename(filename string) string {
	name := strings.ToLower(filepath.Base(filename))
	return whitespace.ReplaceAllString(name, "-")
}
