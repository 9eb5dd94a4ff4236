package photostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
)

// LocalStore writes photos into one directory, created on first save.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("photo directory is required")
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, r io.Reader, _ string) (string, error) {
	name = sanitize(name)
	if name == "" {
		return "", errors.New("empty photo name")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating photo directory: %w", err)
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating photo file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("writing photo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing photo file: %w", err)
	}
	return name, nil
}

func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, string, error) {
	clean := sanitize(name)
	if clean == "" || clean != name {
		return nil, "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	f, err := os.Open(filepath.Join(s.dir, clean))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, "", fmt.Errorf("opening photo: %w", err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(clean))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, contentType, nil
}
