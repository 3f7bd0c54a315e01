package analyzer

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/Skryldev/audio-core/domain/model"
	"github.com/Skryldev/audio-core/domain/ports"
	pkgerrors "github.com/Skryldev/audio-core/pkg/errors"
	"github.com/Skryldev/audio-core/pkg/logger"
	"github.com/Skryldev/audio-core/pkg/srt"
	"go.uber.org/zap"
)

// Analyzer implements ports.MetadataAnalyzer
type Analyzer struct {
	reader ports.ContainerReader
	log    *logger.Logger
}

// NewAnalyzer creates an analyzer reading containers through reader
func NewAnalyzer(reader ports.ContainerReader, log *logger.Logger) *Analyzer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Analyzer{
		reader: reader,
		log:    log.Named("analyzer"),
	}
}

// Analyze reads the audio container first and only then the subtitle file,
// so a missing or unreadable audio file fails before any subtitle parsing.
func (a *Analyzer) Analyze(ctx context.Context, audioPath, subtitlePath string) (*model.AudioMetadata, error) {
	if err := checkExists("audio", audioPath); err != nil {
		return nil, err
	}

	props, err := a.reader.ReadProperties(ctx, audioPath)
	if err != nil {
		return nil, pkgerrors.NewAudioReadError(audioPath, err)
	}

	if err := checkExists("subtitle", subtitlePath); err != nil {
		return nil, err
	}

	stats, err := scanSubtitles(subtitlePath)
	if err != nil {
		return nil, err
	}

	meta := &model.AudioMetadata{
		DurationSeconds:       props.Duration.Seconds(),
		SampleRate:            props.SampleRate,
		Bitrate:               props.Bitrate,
		Channels:              props.Channels,
		SRTSegments:           stats.Segments,
		SRTSpeechDuration:     stats.SpeechDuration,
		SRTAvgSegmentDuration: stats.AvgSegmentDuration,
	}

	a.log.Debug("metadata analyzed",
		zap.String("audio", audioPath),
		zap.String("subtitle", subtitlePath),
		zap.Float64("duration_seconds", meta.DurationSeconds),
		zap.Uint("srt_segments", meta.SRTSegments),
	)

	return meta, nil
}

func scanSubtitles(path string) (srt.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return srt.Stats{}, pkgerrors.NewIOError("open", path, err)
	}
	defer f.Close()

	stats, err := srt.Scan(f)
	if err != nil {
		return srt.Stats{}, pkgerrors.NewIOError("read", path, err)
	}
	return stats, nil
}

func checkExists(kind, path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return pkgerrors.NewNotFoundError(kind, path)
	}
	if err != nil {
		return pkgerrors.NewIOError("stat", path, err)
	}
	return nil
}
