// Package sizecache implements the persistent project size cache: an
// in-memory entry map backed by a single JSON document on disk.
package sizecache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
)

var _ ports.CacheStore = (*FileStore)(nil)

// FileStore persists the cache document as one JSON file, replaced
// atomically on every save.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: filepath.Clean(path)}
}

// DefaultStorePath returns the cache file location under the user cache
// directory.
func DefaultStorePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine user cache directory")
	}
	return filepath.Join(dir, "footprint", "size_cache.json"), nil
}

// Load reads the persisted document. A missing file yields a fresh empty
// document. A document that cannot be parsed or carries an unknown
// version is reset to empty and the reset is persisted immediately; if
// that write fails too, Load fails.
func (s *FileStore) Load() (*domain.CacheDocument, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewCacheDocument(time.Now()), nil
		}
		return nil, zerr.Wrap(err, "failed to read cache document")
	}

	var doc domain.CacheDocument
	if err := json.Unmarshal(data, &doc); err != nil || doc.Version != domain.CacheDocumentVersion {
		return s.reset()
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]domain.CacheEntry)
	}
	return &doc, nil
}

func (s *FileStore) reset() (*domain.CacheDocument, error) {
	doc := domain.NewCacheDocument(time.Now())
	if err := s.Save(doc); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrCacheStoreCorrupt, "path", s.path), "error", err.Error())
	}
	return doc, nil
}

// Save writes the document to a temporary file in the target directory
// and renames it over the previous one, so readers never observe a
// partial document.
func (s *FileStore) Save(doc *domain.CacheDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache document")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary cache file")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()         //nolint:errcheck,gosec // Write error takes precedence
		os.Remove(tmpPath)  //nolint:errcheck,gosec // Best effort cleanup
		return zerr.Wrap(err, "failed to write cache document")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath) //nolint:errcheck,gosec // Best effort cleanup
		return zerr.Wrap(err, "failed to close temporary cache file")
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) //nolint:errcheck,gosec // Best effort cleanup
		return zerr.Wrap(err, "failed to replace cache document")
	}
	return nil
}
