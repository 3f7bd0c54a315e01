package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Skryldev/audio-core/domain/model"
	"github.com/Skryldev/audio-core/domain/ports"
	pkgerrors "github.com/Skryldev/audio-core/pkg/errors"
	"github.com/Skryldev/audio-core/pkg/logger"
	"go.uber.org/zap"
)

// AudioService is the application service over the analyzer and the recording store
type AudioService struct {
	analyzer ports.MetadataAnalyzer
	store    ports.RecordingStore
	log      *logger.Logger
	now      func() time.Time
}

// Config holds AudioService configuration
type Config struct {
	Analyzer ports.MetadataAnalyzer
	Store    ports.RecordingStore
	Logger   *logger.Logger

	// Now overrides the clock used to name imported recordings
	Now func() time.Time
}

// NewAudioService creates a new AudioService
func NewAudioService(cfg Config) (*AudioService, error) {
	if cfg.Analyzer == nil {
		return nil, fmt.Errorf("MetadataAnalyzer is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("RecordingStore is required")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &AudioService{
		analyzer: cfg.Analyzer,
		store:    cfg.Store,
		log:      log,
		now:      now,
	}, nil
}

// Analyze returns combined container and subtitle metadata
func (s *AudioService) Analyze(ctx context.Context, audioPath, subtitlePath string) (*model.AudioMetadata, error) {
	return s.analyzer.Analyze(ctx, audioPath, subtitlePath)
}

// SaveRecording stores data under filename
func (s *AudioService) SaveRecording(ctx context.Context, data []byte, filename string) (string, error) {
	return s.store.Save(ctx, data, filename)
}

// ListRecordings returns stored names, newest-named first
func (s *AudioService) ListRecordings(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// DeleteRecording removes a stored recording
func (s *AudioService) DeleteRecording(ctx context.Context, filename string) (string, error) {
	return s.store.Delete(ctx, filename)
}

// RecordingInfo returns stat metadata for a stored recording
func (s *AudioService) RecordingInfo(ctx context.Context, filename string) (*model.RecordingInfo, error) {
	return s.store.Stat(ctx, filename)
}

// ImportRecording copies the file at srcPath into the store under a
// generated, time-sortable name and returns that name with the save message.
func (s *AudioService) ImportRecording(ctx context.Context, srcPath string) (string, string, error) {
	data, err := readSource(srcPath)
	if err != nil {
		return "", "", err
	}

	name := RecordingName(srcPath, s.now())
	msg, err := s.store.Save(ctx, data, name)
	if err != nil {
		return "", "", err
	}

	s.log.Info("recording imported",
		zap.String("source", srcPath),
		zap.String("filename", name),
	)

	return name, msg, nil
}

// SaveRecordingFrom copies the file at srcPath into the store as filename
func (s *AudioService) SaveRecordingFrom(ctx context.Context, srcPath, filename string) (string, error) {
	data, err := readSource(srcPath)
	if err != nil {
		return "", err
	}
	return s.store.Save(ctx, data, filename)
}

// LatestRecording returns the stat of the first listed recording
func (s *AudioService) LatestRecording(ctx context.Context) (*model.RecordingInfo, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, pkgerrors.NewNotFoundError("recording", "(store is empty)")
	}
	return s.store.Stat(ctx, names[0])
}

// RecordingName builds "saved_<stem>_<unix seconds><ext>" from a source path.
// The epoch suffix keeps List's name ordering newest first.
func RecordingName(srcPath string, at time.Time) string {
	ext := filepath.Ext(srcPath)
	stem := strings.Trim(sanitize(strings.TrimSuffix(filepath.Base(srcPath), ext)), "_")
	if stem == "" {
		stem = "recording"
	}
	return fmt.Sprintf("saved_%s_%d%s", stem, at.Unix(), strings.ToLower(ext))
}

func sanitize(s string) string {
	if len(s) > 40 {
		s = s[:40]
	}
	result := make([]byte, 0, len(s))
	for _, c := range []byte(s) {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}

func readSource(srcPath string) ([]byte, error) {
	data, err := os.ReadFile(srcPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pkgerrors.NewNotFoundError("source", srcPath)
	}
	if err != nil {
		return nil, pkgerrors.NewIOError("read", srcPath, err)
	}
	return data, nil
}
