package localstorage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"adlibraryscraper/internal/core/domain"
)

// LocalStorage implements ports.Storage for the local filesystem.
// Run folders are not unique per invocation: a second run with the same key
// writes into the same folder and overwrites files with the same names.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

// InitRun creates the run directory with its images and videos folders.
func (s *LocalStorage) InitRun(ctx context.Context, runKey string) error {
	for _, kind := range []domain.MediaKind{domain.MediaImage, domain.MediaVideo} {
		path := filepath.Join(s.GetRunPath(runKey), kind.Dir())
		if err := os.MkdirAll(path, 0755); err != nil {
			return errors.Wrapf(err, "failed to create run directory %s", path)
		}
	}
	return nil
}

// SaveAsset streams reader into <run>/<kind dir>/<name>. A partially written
// file is removed when the copy fails.
func (s *LocalStorage) SaveAsset(ctx context.Context, runKey string, kind domain.MediaKind, name string, reader io.Reader) (string, error) {
	path := filepath.Join(s.GetRunPath(runKey), kind.Dir(), SafeName(name))

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create file %s", path)
	}

	if _, err := io.Copy(file, reader); err != nil {
		file.Close()
		os.Remove(path)
		return "", errors.Wrapf(err, "failed to write file %s", path)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", errors.Wrapf(err, "failed to close file %s", path)
	}
	return path, nil
}

// SaveFile writes data at the root of the run directory.
func (s *LocalStorage) SaveFile(ctx context.Context, runKey string, name string, data []byte) (string, error) {
	path := filepath.Join(s.GetRunPath(runKey), SafeName(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "failed to save %s", path)
	}
	return path, nil
}

// GetRunPath returns the path for a run directory.
func (s *LocalStorage) GetRunPath(runKey string) string {
	return filepath.Join(s.BaseDir, SafeName(runKey))
}

var unsafeChars = strings.NewReplacer("/", "_", "\\", "_", "\x00", "_")

// SafeName keeps name inside its directory.
func SafeName(name string) string {
	name = unsafeChars.Replace(name)
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return name
}
