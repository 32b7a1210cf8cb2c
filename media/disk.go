package media

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskStore stores media on the local filesystem. Files land under
// dir/<folder>/ and are served by the static /uploads route.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates a DiskStore rooted at dir. baseURL is the public
// origin the returned URLs are built from.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes the file and returns its public URL.
func (s *DiskStore) Save(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error) {
	if size > MaxFileSize {
		return "", ErrTooLarge
	}

	name, err := newObjectName(filename)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		os.Remove(dst)
		return "", err
	}
	if written > MaxFileSize {
		os.Remove(dst)
		return "", ErrTooLarge
	}

	return s.baseURL + "/uploads/" + path.Join(folder, name), nil
}

// Delete removes a stored file by its public URL.
func (s *DiskStore) Delete(ctx context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/uploads/")
	if !ok {
		return ErrNotFound
	}

	// Refuse anything that escapes the media dir.
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return ErrNotFound
	}

	if err := os.Remove(filepath.Join(s.dir, rel)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
