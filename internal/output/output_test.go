package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/Skryldev/audio-core/domain/model"
)

func init() {
	color.NoColor = true
}

func TestAudioMetadataOutput(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf).AudioMetadata(&model.AudioMetadata{
		DurationSeconds:       8,
		SampleRate:            16000,
		Bitrate:               256,
		Channels:              1,
		SRTSegments:           2,
		SRTSpeechDuration:     3.5,
		SRTAvgSegmentDuration: 1.75,
	})

	out := buf.String()
	assert.Contains(t, out, "Sample Rate:          16000 Hz")
	assert.Contains(t, out, "Total Segments:       2")
	assert.Contains(t, out, "Avg Segment Duration: 1.75 seconds")
	assert.Contains(t, out, "Speech Density:       43.75%")
}

func TestRecordingList(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.RecordingList(nil)
	assert.Equal(t, "No recordings found.\n", buf.String())

	buf.Reset()
	f.RecordingList([]string{"b.wav", "a.wav"})
	assert.Equal(t, "Found 2 recording(s):\n  1. b.wav\n  2. a.wav\n", buf.String())
}

func TestRecordingInfoOutput(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf).RecordingInfo(&model.RecordingInfo{
		Filename:         "x.wav",
		SizeBytes:        2048,
		SizeKB:           2,
		SizeMB:           0.001953125,
		CreatedTimestamp: 0,
		CreatedDate:      "1970-01-01 00:00:00 UTC",
	})

	out := buf.String()
	assert.Contains(t, out, "Size (KB):       2.00 KB")
	assert.Contains(t, out, "Size (MB):       0.0020 MB")
	assert.Contains(t, out, "Created:         1970-01-01 00:00:00 UTC")
}
