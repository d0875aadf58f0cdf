// Package snapshot persists the current country database to a single file so
// the resolver can start without network access.
package snapshot

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

const filePermissions = 0o644

// FileStore saves and loads encoded snapshots at a fixed path.
type FileStore struct {
	fs   afero.Fs
	path string
	log  logger.Logger
}

// NewFileStore returns a store writing to path on the OS filesystem.
func NewFileStore(path string, log logger.Logger) *FileStore {
	return NewFileStoreFs(afero.NewOsFs(), path, log)
}

// NewFileStoreFs returns a store on the given filesystem.
func NewFileStoreFs(fs afero.Fs, path string, log logger.Logger) *FileStore {
	if log == nil {
		log = GetLogger()
	}
	return &FileStore{fs: fs, path: path, log: log}
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string {
	return s.path
}

// Save encodes db and replaces the snapshot file atomically: the data is
// written to a temporary file in the same directory and renamed over the
// target.
func (s *FileStore) Save(db *country.Database) error {
	data, err := country.MarshalSnapshot(db)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return s.ioError(err, "mkdir")
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return s.ioError(err, "create_temp")
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = s.fs.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return s.ioError(err, "write")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return s.ioError(err, "sync")
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return s.ioError(err, "close")
	}
	if err := s.fs.Chmod(tmpName, filePermissions); err != nil {
		cleanup()
		return s.ioError(err, "chmod")
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		cleanup()
		return s.ioError(err, "rename")
	}

	s.log.Debug("snapshot saved",
		logger.String("path", s.path),
		logger.Int("bytes", len(data)),
		logger.Time("timestamp", db.Timestamp))
	return nil
}

// Load reads the snapshot. A missing file yields (nil, nil).
func (s *FileStore) Load() (*country.Database, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, s.ioError(err, "read")
	}

	db, err := country.UnmarshalSnapshot(data)
	if err != nil {
		return nil, err
	}

	s.log.Debug("snapshot loaded",
		logger.String("path", s.path),
		logger.Int("entities", len(db.Entities)),
		logger.Time("timestamp", db.Timestamp))
	return db, nil
}

func (s *FileStore) ioError(err error, operation string) error {
	return errors.New(err).
		Component("snapshot").
		Category(errors.CategoryFileIO).
		FileContext(s.path, 0).
		Context("operation", operation).
		Build()
}
