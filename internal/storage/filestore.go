package storage

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxFileSize is the hard cap for a single uploaded image (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	ErrDisallowedType = errors.New("solo se permiten imágenes (jpeg, jpg, png, gif, webp)")
	ErrFileTooLarge   = errors.New("la imagen supera el tamaño máximo de 5 MB")
)

// FileStore persists uploaded images under a single local directory.
type FileStore struct {
	dir string
}

// New creates the upload directory (and missing parents) if absent.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Save validates the upload against the image allow-list and size cap, then
// writes it under a generated collision-resistant name. Both the extension
// and the declared MIME type must be allowed; nothing is written otherwise.
func (s *FileStore) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", ErrDisallowedType
	}

	mimeType := fh.Header.Get("Content-Type")
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	if !allowedMIMETypes[strings.TrimSpace(strings.ToLower(mimeType))] {
		return "", ErrDisallowedType
	}

	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	// The declared size was already checked; the stream itself may still be
	// longer than declared.
	written, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > MaxFileSize {
		os.Remove(path)
		return "", ErrFileTooLarge
	}

	return name, nil
}

// Remove deletes a stored file. Used to clean up uploads whose report row
// was never created.
func (s *FileStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
