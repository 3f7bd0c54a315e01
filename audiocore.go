// Package audiocore analyzes audio recordings against their SRT subtitles
// and manages a flat on-disk store of saved recordings.
package audiocore

import (
	"context"

	"github.com/Skryldev/audio-core/application/analyzer"
	"github.com/Skryldev/audio-core/application/usecase"
	"github.com/Skryldev/audio-core/domain/model"
	"github.com/Skryldev/audio-core/domain/ports"
	"github.com/Skryldev/audio-core/infrastructure/container"
	"github.com/Skryldev/audio-core/infrastructure/ffmpeg"
	"github.com/Skryldev/audio-core/infrastructure/storage"
	pkgerrors "github.com/Skryldev/audio-core/pkg/errors"
	"github.com/Skryldev/audio-core/pkg/logger"
	"go.uber.org/zap"
)

// Re-export types for convenient use by callers
type (
	AudioMetadata   = model.AudioMetadata
	RecordingInfo   = model.RecordingInfo
	AudioProperties = model.AudioProperties
	ContainerReader = ports.ContainerReader
)

// Re-export error sentinels
var (
	ErrNotFound   = pkgerrors.ErrNotFound
	ErrAudioRead  = pkgerrors.ErrAudioRead
	ErrIO         = pkgerrors.ErrIO
	ErrTime       = pkgerrors.ErrTime
	ErrValidation = pkgerrors.ErrValidation
)

// Config holds top-level configuration for the core
type Config struct {
	// StoreRoot is the recordings directory (default "recordings")
	StoreRoot string

	// EnableFFprobe appends an ffprobe reader for containers the native readers reject
	EnableFFprobe bool

	// FFprobePath is the path to the ffprobe binary (auto-detected if empty)
	FFprobePath string

	// Reader replaces the default container reader chain
	Reader ContainerReader

	// Logger is an optional custom logger. A no-op logger is used if nil.
	Logger *logger.Logger

	// ZapLogger allows passing a *zap.Logger directly
	ZapLogger *zap.Logger
}

// Core is the main entry point
type Core struct {
	service *usecase.AudioService
	store   *storage.LocalStorage
	log     *logger.Logger
}

// New creates a Core with the given configuration
func New(cfg Config) (*Core, error) {
	log := cfg.Logger
	if log == nil && cfg.ZapLogger != nil {
		log = logger.FromZap(cfg.ZapLogger)
	}
	if log == nil {
		log = logger.NewNop()
	}

	reader := cfg.Reader
	if reader == nil {
		var err error
		reader, err = defaultReader(cfg, log)
		if err != nil {
			return nil, err
		}
	}

	store := storage.NewLocalStorage(storage.Config{
		Root:   cfg.StoreRoot,
		Logger: log,
	})

	svc, err := usecase.NewAudioService(usecase.Config{
		Analyzer: analyzer.NewAnalyzer(reader, log),
		Store:    store,
		Logger:   log,
	})
	if err != nil {
		return nil, err
	}

	return &Core{
		service: svc,
		store:   store,
		log:     log,
	}, nil
}

func defaultReader(cfg Config, log *logger.Logger) (ContainerReader, error) {
	readers := []ports.ContainerReader{
		container.NewWAVReader(),
		container.NewTagReader(),
	}
	if cfg.EnableFFprobe {
		exec, err := ffmpeg.NewExecutor(ffmpeg.ExecutorConfig{
			FFprobePath: cfg.FFprobePath,
			Logger:      log,
		})
		if err != nil {
			return nil, err
		}
		readers = append(readers, ffmpeg.NewProber(exec))
	}
	return container.NewChain(log, readers...), nil
}

// StoreRoot returns the recordings directory in use
func (c *Core) StoreRoot() string {
	return c.store.Root()
}

// Analyze extracts container properties and subtitle speech statistics
func (c *Core) Analyze(ctx context.Context, audioPath, subtitlePath string) (*AudioMetadata, error) {
	return c.service.Analyze(ctx, audioPath, subtitlePath)
}

// SaveRecording writes data into the store and returns a confirmation message
func (c *Core) SaveRecording(ctx context.Context, data []byte, filename string) (string, error) {
	return c.service.SaveRecording(ctx, data, filename)
}

// ListRecordings returns stored filenames in descending name order
func (c *Core) ListRecordings(ctx context.Context) ([]string, error) {
	return c.service.ListRecordings(ctx)
}

// DeleteRecording removes a stored recording and returns a confirmation message
func (c *Core) DeleteRecording(ctx context.Context, filename string) (string, error) {
	return c.service.DeleteRecording(ctx, filename)
}

// RecordingInfo returns size and creation metadata of a stored recording
func (c *Core) RecordingInfo(ctx context.Context, filename string) (*RecordingInfo, error) {
	return c.service.RecordingInfo(ctx, filename)
}

// ImportRecording copies an existing file into the store under a generated name
func (c *Core) ImportRecording(ctx context.Context, srcPath string) (string, string, error) {
	return c.service.ImportRecording(ctx, srcPath)
}

// SaveRecordingFrom copies an existing file into the store under filename
func (c *Core) SaveRecordingFrom(ctx context.Context, srcPath, filename string) (string, error) {
	return c.service.SaveRecordingFrom(ctx, srcPath, filename)
}

// LatestRecording returns metadata for the first listed recording
func (c *Core) LatestRecording(ctx context.Context) (*RecordingInfo, error) {
	return c.service.LatestRecording(ctx)
}

// Close flushes the logger
func (c *Core) Close() {
	_ = c.log.Sync()
}
