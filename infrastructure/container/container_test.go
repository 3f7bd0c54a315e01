package container

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skryldev/audio-core/domain/model"
	"github.com/Skryldev/audio-core/internal/mocks"
)

// writeWAV writes a PCM WAV with an optional LIST chunk before fmt.
func writeWAV(t *testing.T, path string, sampleRate uint32, channels, bits uint16, dataBytes int, withList bool) {
	t.Helper()

	blockAlign := channels * bits / 8
	byteRate := sampleRate * uint32(blockAlign)

	var body []byte
	body = append(body, []byte("WAVE")...)
	if withList {
		body = append(body, []byte("LIST")...)
		body = binary.LittleEndian.AppendUint32(body, 5)
		body = append(body, []byte("INFO!")...)
		body = append(body, 0) // pad byte
	}
	body = append(body, []byte("fmt ")...)
	body = binary.LittleEndian.AppendUint32(body, 16)
	body = binary.LittleEndian.AppendUint16(body, 1)
	body = binary.LittleEndian.AppendUint16(body, channels)
	body = binary.LittleEndian.AppendUint32(body, sampleRate)
	body = binary.LittleEndian.AppendUint32(body, byteRate)
	body = binary.LittleEndian.AppendUint16(body, blockAlign)
	body = binary.LittleEndian.AppendUint16(body, bits)
	body = append(body, []byte("data")...)
	body = binary.LittleEndian.AppendUint32(body, uint32(dataBytes))
	body = append(body, make([]byte, dataBytes)...)

	out := append([]byte("RIFF"), binary.LittleEndian.AppendUint32(nil, uint32(len(body)))...)
	out = append(out, body...)
	require.NoError(t, os.WriteFile(path, out, 0o644))
}

func TestWAVReaderParsesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	// 2 seconds of 16-bit stereo at 8 kHz
	writeWAV(t, path, 8000, 2, 16, 8000*2*2*2, false)

	props, err := NewWAVReader().ReadProperties(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, props.Duration)
	assert.Equal(t, uint32(8000), props.SampleRate)
	assert.Equal(t, uint16(2), props.Channels)
	assert.Equal(t, uint32(256), props.Bitrate)
}

func TestWAVReaderSkipsUnknownChunks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagged.WAV")
	writeWAV(t, path, 44100, 1, 16, 44100*2/2, true)

	r := NewWAVReader()
	require.True(t, r.Supports(path))

	props, err := r.ReadProperties(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, props.Duration)
	assert.Equal(t, uint32(44100), props.SampleRate)
	assert.Equal(t, uint16(1), props.Channels)
	assert.Equal(t, uint32(705), props.Bitrate)
}

func TestWAVReaderRejectsGarbage(t *testing.T) {
	dir := t.TempDir()

	notRiff := filepath.Join(dir, "fake.wav")
	require.NoError(t, os.WriteFile(notRiff, []byte("this is not audio at all"), 0o644))
	_, err := NewWAVReader().ReadProperties(context.Background(), notRiff)
	assert.ErrorIs(t, err, errNotRIFF)

	empty := filepath.Join(dir, "empty.wav")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = NewWAVReader().ReadProperties(context.Background(), empty)
	assert.ErrorIs(t, err, errNotRIFF)

	headerOnly := filepath.Join(dir, "header.wav")
	require.NoError(t, os.WriteFile(headerOnly, []byte("RIFF\x04\x00\x00\x00WAVE"), 0o644))
	_, err = NewWAVReader().ReadProperties(context.Background(), headerOnly)
	assert.ErrorIs(t, err, errMissingFmt)
}

func TestWAVReaderOversizedFmtChunk(t *testing.T) {
	dir := t.TempDir()

	// fmt claims ~4 GiB but only the 16 core bytes follow
	var fmtBody [16]byte
	binary.LittleEndian.PutUint16(fmtBody[2:4], 1)
	binary.LittleEndian.PutUint32(fmtBody[4:8], 8000)
	binary.LittleEndian.PutUint32(fmtBody[8:12], 16000)
	huge := append([]byte("RIFF\x1c\x00\x00\x00WAVEfmt \xf0\xff\xff\xff"), fmtBody[:]...)
	path := filepath.Join(dir, "huge.wav")
	require.NoError(t, os.WriteFile(path, huge, 0o644))
	_, err := NewWAVReader().ReadProperties(context.Background(), path)
	assert.ErrorIs(t, err, errMissingData)

	truncated := filepath.Join(dir, "truncated.wav")
	require.NoError(t, os.WriteFile(truncated, huge[:28], 0o644))
	_, err = NewWAVReader().ReadProperties(context.Background(), truncated)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWAVReaderFmtAfterData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late_fmt.wav")

	body := []byte("WAVE")
	body = append(body, []byte("data")...)
	body = binary.LittleEndian.AppendUint32(body, 125)
	body = append(body, make([]byte, 126)...) // odd size is padded
	body = append(body, []byte("fmt ")...)
	body = binary.LittleEndian.AppendUint32(body, 18)
	body = binary.LittleEndian.AppendUint16(body, 1)
	body = binary.LittleEndian.AppendUint16(body, 1)
	body = binary.LittleEndian.AppendUint32(body, 1000)
	body = binary.LittleEndian.AppendUint32(body, 1000)
	body = binary.LittleEndian.AppendUint16(body, 1)
	body = binary.LittleEndian.AppendUint16(body, 8)
	body = binary.LittleEndian.AppendUint16(body, 0) // cbSize
	out := append([]byte("RIFF"), binary.LittleEndian.AppendUint32(nil, uint32(len(body)))...)
	require.NoError(t, os.WriteFile(path, append(out, body...), 0o644))

	props, err := NewWAVReader().ReadProperties(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), props.SampleRate)
	assert.Equal(t, uint16(1), props.Channels)
	assert.Equal(t, uint32(8), props.Bitrate)
	assert.Equal(t, 125*time.Millisecond, props.Duration)
}

func TestSupportsByExtension(t *testing.T) {
	assert.True(t, NewWAVReader().Supports("a/b/c.wav"))
	assert.False(t, NewWAVReader().Supports("c.mp3"))
	assert.True(t, NewTagReader().Supports("book.M4B"))
	assert.True(t, NewTagReader().Supports("song.flac"))
	assert.False(t, NewTagReader().Supports("notes.txt"))
}

func TestChainDispatch(t *testing.T) {
	ctx := context.Background()
	wavOnly := &mocks.MockContainerReader{
		SupportsFunc: func(p string) bool { return filepath.Ext(p) == ".wav" },
		ReadFunc: func(context.Context, string) (*model.AudioProperties, error) {
			return &model.AudioProperties{SampleRate: 1}, nil
		},
	}
	fallback := &mocks.MockContainerReader{
		ReadFunc: func(context.Context, string) (*model.AudioProperties, error) {
			return &model.AudioProperties{SampleRate: 2}, nil
		},
	}

	c := NewChain(nil, wavOnly, nil, fallback)

	props, err := c.ReadProperties(ctx, "a.wav")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), props.SampleRate)
	assert.Empty(t, fallback.ReadPaths)

	props, err = c.ReadProperties(ctx, "a.aiff")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), props.SampleRate)
	assert.Equal(t, []string{"a.wav"}, wavOnly.ReadPaths)
}

func TestChainFallsThroughOnFailure(t *testing.T) {
	first := errors.New("first failed")
	last := errors.New("last failed")
	a := &mocks.MockContainerReader{ReadFunc: func(context.Context, string) (*model.AudioProperties, error) { return nil, first }}
	b := &mocks.MockContainerReader{ReadFunc: func(context.Context, string) (*model.AudioProperties, error) { return nil, last }}

	_, err := NewChain(nil, a, b).ReadProperties(context.Background(), "x.mp3")
	assert.ErrorIs(t, err, last)
	assert.Len(t, a.ReadPaths, 1)
	assert.Len(t, b.ReadPaths, 1)
}

func TestChainUnsupported(t *testing.T) {
	c := NewChain(nil, NewWAVReader())
	assert.False(t, c.Supports("x.txt"))

	_, err := c.ReadProperties(context.Background(), "x.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
