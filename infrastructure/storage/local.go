package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Skryldev/audio-core/domain/model"
	pkgerrors "github.com/Skryldev/audio-core/pkg/errors"
	"github.com/Skryldev/audio-core/pkg/logger"
	"go.uber.org/zap"
)

const (
	// DefaultRoot is used when Config.Root is empty
	DefaultRoot = "recordings"

	// DateLayout renders creation and save times
	DateLayout = "2006-01-02 15:04:05 UTC"

	// UnknownDate replaces a creation date that cannot be rendered
	UnknownDate = "Unknown"
)

// BirthTimeFunc reports the creation time of the file at path
type BirthTimeFunc func(path string, fi os.FileInfo) (time.Time, error)

// Config holds LocalStorage configuration
type Config struct {
	// Root is the store directory. It is created on first save.
	Root string

	// Logger is optional; a no-op logger is used when nil
	Logger *logger.Logger

	// Now overrides the clock used for save confirmations
	Now func() time.Time

	// BirthTime overrides the platform creation-time lookup
	BirthTime BirthTimeFunc

	// Remove overrides os.Remove for deletes
	Remove func(path string) error
}

// LocalStorage implements ports.RecordingStore over a flat directory
type LocalStorage struct {
	root      string
	log       *logger.Logger
	now       func() time.Time
	birthTime BirthTimeFunc
	remove    func(string) error
}

// NewLocalStorage creates a store rooted at cfg.Root. The directory is not touched.
func NewLocalStorage(cfg Config) *LocalStorage {
	root := cfg.Root
	if root == "" {
		root = DefaultRoot
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	bt := cfg.BirthTime
	if bt == nil {
		bt = platformBirthTime
	}
	remove := cfg.Remove
	if remove == nil {
		remove = os.Remove
	}
	return &LocalStorage{
		root:      root,
		log:       log.Named("store").With(zap.String("root", root)),
		now:       now,
		birthTime: bt,
		remove:    remove,
	}
}

// Root returns the store directory
func (s *LocalStorage) Root() string {
	return s.root
}

// Save writes data to root/filename, creating the root if needed and
// truncating any existing file. A failed write leaves the partial file in place.
func (s *LocalStorage) Save(_ context.Context, data []byte, filename string) (string, error) {
	if err := validateFilename(filename); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", pkgerrors.NewIOError("mkdir", s.root, err)
	}

	path := filepath.Join(s.root, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", pkgerrors.NewIOError("create", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", pkgerrors.NewIOError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return "", pkgerrors.NewIOError("close", path, err)
	}

	s.log.Info("audio recording saved",
		zap.String("filename", filename),
		zap.Int("bytes", len(data)),
	)

	return fmt.Sprintf("Audio recording saved successfully: %s (%.2f KB) at %s",
		filename,
		float64(len(data))/1024,
		s.now().UTC().Format(DateLayout),
	), nil
}

// List returns the names of regular files in the root, descending by name.
// A missing root is an empty store.
func (s *LocalStorage) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, pkgerrors.NewIOError("readdir", s.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if s.isRegular(e) {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)
	slices.Reverse(names)
	return names, nil
}

// Delete removes root/filename. A removal failure after the existence check,
// including the file vanishing in between, is an IOError.
func (s *LocalStorage) Delete(_ context.Context, filename string) (string, error) {
	path, _, err := s.lookup(filename)
	if err != nil {
		return "", err
	}

	if err := s.remove(path); err != nil {
		return "", pkgerrors.NewIOError("remove", path, err)
	}

	s.log.Info("recording deleted", zap.String("filename", filename))

	return fmt.Sprintf("Recording deleted successfully: %s", filename), nil
}

// Stat reads size and creation time of root/filename
func (s *LocalStorage) Stat(_ context.Context, filename string) (*model.RecordingInfo, error) {
	path, fi, err := s.lookup(filename)
	if err != nil {
		return nil, err
	}

	created, err := s.birthTime(path, fi)
	if err != nil {
		return nil, pkgerrors.NewTimeError(path, "failed to get creation time", err)
	}
	if created.Before(time.Unix(0, 0)) {
		return nil, pkgerrors.NewTimeError(path,
			fmt.Sprintf("creation time %s predates the Unix epoch", created.UTC().Format(time.RFC3339)), nil)
	}

	size := uint64(fi.Size())
	ts := uint64(created.Unix())

	return &model.RecordingInfo{
		Filename:         filename,
		SizeBytes:        size,
		SizeKB:           float64(size) / 1024,
		SizeMB:           float64(size) / (1024 * 1024),
		CreatedTimestamp: ts,
		CreatedDate:      FormatCreatedDate(ts),
	}, nil
}

// FormatCreatedDate renders ts in UTC, or UnknownDate when it does not fit a
// four-digit year.
func FormatCreatedDate(ts uint64) string {
	if ts > math.MaxInt64 {
		return UnknownDate
	}
	t := time.Unix(int64(ts), 0).UTC()
	if t.Year() > 9999 {
		return UnknownDate
	}
	return t.Format(DateLayout)
}

// lookup resolves filename to an existing regular file
func (s *LocalStorage) lookup(filename string) (string, os.FileInfo, error) {
	if err := validateFilename(filename); err != nil {
		return "", nil, err
	}
	path := filepath.Join(s.root, filename)
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, pkgerrors.NewNotFoundError("recording", filename)
	}
	if err != nil {
		return "", nil, pkgerrors.NewIOError("stat", path, err)
	}
	if !fi.Mode().IsRegular() {
		return "", nil, pkgerrors.NewNotFoundError("recording", filename)
	}
	return path, fi, nil
}

// isRegular follows symlinks so that linked recordings are listed
func (s *LocalStorage) isRegular(e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(s.root, e.Name()))
	return err == nil && fi.Mode().IsRegular()
}

func validateFilename(name string) error {
	switch {
	case name == "":
		return pkgerrors.NewValidationError("filename", name, "filename must not be empty")
	case name == "." || name == "..":
		return pkgerrors.NewValidationError("filename", name, "filename must name a file")
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return pkgerrors.NewValidationError("filename", name, "filename must not contain path separators")
	}
	return nil
}
