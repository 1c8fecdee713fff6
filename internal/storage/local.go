package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

const maxUploadBytes = 10 << 20

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
	".pdf":  {},
}

// LocalStore writes uploads under a root directory on disk. Stored names are
// random so original file names never reach the filesystem.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (store *LocalStore) Root() string {
	return store.root
}

// Save stores an uploaded file under subdir and returns the path relative to
// the store root, suitable for persisting and serving.
func (store *LocalStore) Save(header *multipart.FileHeader, subdir string) (string, error) {
	if header.Size > maxUploadBytes {
		return "", ErrFileTooLarge
	}

	extension := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[extension]; !ok {
		return "", ErrUnsupportedFileType
	}

	directory := filepath.Join(store.root, subdir)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + extension
	destination := filepath.Join(directory, name)

	source, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer source.Close()

	target, err := os.Create(destination)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer target.Close()

	if _, err := io.Copy(target, source); err != nil {
		os.Remove(destination)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// Remove deletes a stored file by its relative path. A missing file is not
// an error.
func (store *LocalStore) Remove(relativePath string) error {
	if relativePath == "" {
		return nil
	}
	clean := filepath.Clean(relativePath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid stored path %q", relativePath)
	}
	err := os.Remove(filepath.Join(store.root, clean))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
