package ffmpeg

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skryldev/audio-core/internal/mocks"
)

func TestProberMapsFirstAudioStream(t *testing.T) {
	exec := &mocks.MockProbeExecutor{}
	p := NewProber(exec)

	props, err := p.ReadProperties(context.Background(), "/tmp/in.wav")
	require.NoError(t, err)

	assert.Equal(t, []string{"/tmp/in.wav"}, exec.ProbedPaths)
	assert.Equal(t, 120500*time.Millisecond, props.Duration)
	assert.Equal(t, uint32(44100), props.SampleRate)
	assert.Equal(t, uint16(2), props.Channels)
	assert.Equal(t, uint32(1411), props.Bitrate)
}

func TestProberFallsBackToFormatBitrate(t *testing.T) {
	exec := &mocks.MockProbeExecutor{
		ProbeFunc: func(context.Context, string) ([]byte, error) {
			return []byte(`{
				"format": {"duration": "N/A", "bit_rate": "320000"},
				"streams": [
					{"codec_type": "video"},
					{"codec_type": "audio", "sample_rate": "48000", "channels": 1}
				]
			}`), nil
		},
	}

	props, err := NewProber(exec).ReadProperties(context.Background(), "clip.mkv")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), props.Duration)
	assert.Equal(t, uint32(48000), props.SampleRate)
	assert.Equal(t, uint16(1), props.Channels)
	assert.Equal(t, uint32(320), props.Bitrate)
}

func TestProberErrors(t *testing.T) {
	boom := errors.New("exit status 1")
	failing := &mocks.MockProbeExecutor{
		ProbeFunc: func(context.Context, string) ([]byte, error) { return nil, boom },
	}
	_, err := NewProber(failing).ReadProperties(context.Background(), "x.wav")
	assert.ErrorIs(t, err, boom)

	garbage := &mocks.MockProbeExecutor{
		ProbeFunc: func(context.Context, string) ([]byte, error) { return []byte("not json"), nil },
	}
	_, err = NewProber(garbage).ReadProperties(context.Background(), "x.wav")
	assert.ErrorContains(t, err, "failed to parse ffprobe output")
}

func TestProbeErrorMessage(t *testing.T) {
	err := &ProbeError{ExitCode: 1, Stderr: "  Invalid data found  \n", Cause: errors.New("exit status 1")}
	assert.Equal(t, `ffprobe execution failed (exit=1, stderr="Invalid data found"): exit status 1`, err.Error())
}
