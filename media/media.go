// Package media stores uploaded listing images and videos and hands the
// controllers back a public URL.
package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// MaxFileSize caps a single upload.
const MaxFileSize = 50 << 20

var (
	ErrTooLarge = errors.New("media: file too large")
	ErrNotFound = errors.New("media: file not found")
)

// Store is the storage backend for uploaded media.
type Store interface {
	// Save stores a file under folder and returns its public URL.
	Save(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error)

	// Delete removes a stored file by its public URL. Deleting an
	// unknown URL returns ErrNotFound.
	Delete(ctx context.Context, url string) error
}

// newObjectName builds a unique object name keeping the original
// extension. Names never collide, so Save never overwrites.
func newObjectName(filename string) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix), filepath.Ext(filename)), nil
}
