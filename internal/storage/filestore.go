// Package storage persists uploaded product images under the public
// products directory and hands back the path clients use to fetch them.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PublicPathPrefix is the URL prefix uploaded images are served under.
const PublicPathPrefix = "/public/products"

type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &FileStore{dir: dir}, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *FileStore) Dir() string {
	return s.dir
}

// SaveProductImage stores one uploaded file under a generated name and
// returns its public path.
func (s *FileStore) SaveProductImage(header *multipart.FileHeader) (string, error) {

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}

	defer src.Close()

	filename := uuid.NewString() + filepath.Ext(header.Filename)

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}

	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write stored file: %w", err)
	}

	return PublicPathPrefix + "/" + filename, nil
}
