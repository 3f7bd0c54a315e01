package container

import (
	"context"

	"github.com/simonhull/audiometa"

	"github.com/Skryldev/audio-core/domain/model"
)

// TagReader reads compressed containers through audiometa
type TagReader struct{}

// NewTagReader creates an audiometa-backed reader
func NewTagReader() *TagReader {
	return &TagReader{}
}

// Supports matches the containers audiometa parses
func (r *TagReader) Supports(path string) bool {
	return hasExt(path, ".mp3", ".m4a", ".m4b", ".mp4", ".flac", ".ogg", ".opus")
}

// ReadProperties opens the file metadata only; audio content is not decoded
func (r *TagReader) ReadProperties(ctx context.Context, path string) (*model.AudioProperties, error) {
	file, err := audiometa.OpenContext(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info := file.Audio
	return &model.AudioProperties{
		Duration:   info.Duration,
		SampleRate: clampU32(info.SampleRate),
		Bitrate:    clampU32(info.Bitrate / 1000),
		Channels:   uint16(clampU32(info.Channels)),
	}, nil
}

func clampU32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(v)
}
