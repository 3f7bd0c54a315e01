package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skryldev/audio-core/domain/model"
	"github.com/Skryldev/audio-core/internal/mocks"
	pkgerrors "github.com/Skryldev/audio-core/pkg/errors"
)

const exampleSRT = "1\n00:00:01,000 --> 00:00:03,500\nHello\n\n2\n00:00:05,000 --> 00:00:06,000\nWorld\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCombinesContainerAndSubtitles(t *testing.T) {
	dir := t.TempDir()
	audio := writeFile(t, dir, "talk.wav", "RIFF")
	subs := writeFile(t, dir, "talk.srt", exampleSRT)

	reader := &mocks.MockContainerReader{
		ReadFunc: func(context.Context, string) (*model.AudioProperties, error) {
			return &model.AudioProperties{
				Duration:   7500 * time.Millisecond,
				SampleRate: 48000,
				Bitrate:    1536,
				Channels:   2,
			}, nil
		},
	}

	meta, err := NewAnalyzer(reader, nil).Analyze(context.Background(), audio, subs)
	require.NoError(t, err)

	assert.Equal(t, &model.AudioMetadata{
		DurationSeconds:       7.5,
		SampleRate:            48000,
		Bitrate:               1536,
		Channels:              2,
		SRTSegments:           2,
		SRTSpeechDuration:     3.5,
		SRTAvgSegmentDuration: 1.75,
	}, meta)
	assert.Equal(t, []string{audio}, reader.ReadPaths)
}

func TestAnalyzeUnknownPropertiesStayZero(t *testing.T) {
	dir := t.TempDir()
	audio := writeFile(t, dir, "a.mp3", "ID3")
	subs := writeFile(t, dir, "a.srt", "no timing lines\n")

	reader := &mocks.MockContainerReader{
		ReadFunc: func(context.Context, string) (*model.AudioProperties, error) {
			return &model.AudioProperties{Duration: time.Second}, nil
		},
	}

	meta, err := NewAnalyzer(reader, nil).Analyze(context.Background(), audio, subs)
	require.NoError(t, err)
	assert.Equal(t, 1.0, meta.DurationSeconds)
	assert.Zero(t, meta.SampleRate)
	assert.Zero(t, meta.Bitrate)
	assert.Zero(t, meta.Channels)
	assert.Zero(t, meta.SRTSegments)
	assert.Equal(t, 0.0, meta.SRTAvgSegmentDuration)
}

func TestAnalyzeMissingAudioFailsFirst(t *testing.T) {
	dir := t.TempDir()
	subs := writeFile(t, dir, "a.srt", exampleSRT)
	reader := &mocks.MockContainerReader{}

	_, err := NewAnalyzer(reader, nil).Analyze(context.Background(), filepath.Join(dir, "missing.wav"), subs)
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)

	nf, ok := pkgerrors.As[*pkgerrors.NotFoundError](err)
	require.True(t, ok)
	assert.Equal(t, "audio", nf.Kind)
	assert.Empty(t, reader.ReadPaths)
}

func TestAnalyzeAudioReadError(t *testing.T) {
	dir := t.TempDir()
	audio := writeFile(t, dir, "broken.wav", "garbage")
	boom := errors.New("not a RIFF/WAVE file")
	reader := &mocks.MockContainerReader{
		ReadFunc: func(context.Context, string) (*model.AudioProperties, error) { return nil, boom },
	}

	// the subtitle path is never consulted
	_, err := NewAnalyzer(reader, nil).Analyze(context.Background(), audio, filepath.Join(dir, "missing.srt"))
	assert.ErrorIs(t, err, pkgerrors.ErrAudioRead)
	assert.ErrorIs(t, err, boom)
}

func TestAnalyzeMissingSubtitle(t *testing.T) {
	dir := t.TempDir()
	audio := writeFile(t, dir, "a.wav", "RIFF")

	_, err := NewAnalyzer(&mocks.MockContainerReader{}, nil).Analyze(context.Background(), audio, filepath.Join(dir, "none.srt"))
	nf, ok := pkgerrors.As[*pkgerrors.NotFoundError](err)
	require.True(t, ok)
	assert.Equal(t, "subtitle", nf.Kind)
}

func TestAnalyzeSubtitleReadFault(t *testing.T) {
	dir := t.TempDir()
	audio := writeFile(t, dir, "a.wav", "RIFF")

	// reading a directory fails after the existence check passes
	_, err := NewAnalyzer(&mocks.MockContainerReader{}, nil).Analyze(context.Background(), audio, dir)
	assert.ErrorIs(t, err, pkgerrors.ErrIO)
}
