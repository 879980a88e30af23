package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/findingbd/findingbd-backend/pkg/logger"
	"github.com/google/uuid"
)

// ImageStore accepts uploaded image bytes and returns a stable reference
// string that is later stored as a product's image_url. The core never
// interprets the bytes.
type ImageStore interface {
	Save(reader io.Reader, originalFilename string) (string, error)
}

// LocalImageStore copies uploads into a directory on disk. References
// take the form /images/<8char><ext> and are served statically by the
// router.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Dir returns the directory uploads are stored in
func (s *LocalImageStore) Dir() string {
	return s.dir
}

func (s *LocalImageStore) Save(reader io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := uuid.NewString()[:8] + ext
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create image file", err, map[string]interface{}{
			"path": path,
		})
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		logger.Error("Failed to write image file", err, map[string]interface{}{
			"path": path,
		})
		os.Remove(path)
		return "", err
	}

	reference := "/images/" + name
	logger.Debug("Image stored", map[string]interface{}{
		"reference": reference,
	})
	return reference, nil
}
