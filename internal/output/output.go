package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Skryldev/audio-core/domain/model"
)

type Formatter struct {
	w       io.Writer
	ok      *color.Color
	bad     *color.Color
	heading *color.Color
	dim     *color.Color
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{
		w:       w,
		ok:      color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
		heading: color.New(color.FgCyan, color.Bold),
		dim:     color.New(color.Faint),
	}
}

func (f *Formatter) Success(msg string) {
	f.ok.Fprintf(f.w, "✓ %s\n", msg)
}

func (f *Formatter) Error(msg string) {
	f.bad.Fprintf(f.w, "✗ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "%s\n", msg)
}

func (f *Formatter) JSON(v any) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *Formatter) AudioMetadata(m *model.AudioMetadata) {
	f.heading.Fprintln(f.w, "Audio Metadata Analysis:")
	fmt.Fprintf(f.w, "  Duration:             %.2f seconds (%.2f minutes)\n", m.DurationSeconds, m.DurationSeconds/60)
	fmt.Fprintf(f.w, "  Sample Rate:          %d Hz\n", m.SampleRate)
	fmt.Fprintf(f.w, "  Bitrate:              %d kbps\n", m.Bitrate)
	fmt.Fprintf(f.w, "  Channels:             %d\n", m.Channels)

	f.heading.Fprintln(f.w, "\nSRT Subtitle Analysis:")
	fmt.Fprintf(f.w, "  Total Segments:       %d\n", m.SRTSegments)
	fmt.Fprintf(f.w, "  Speech Duration:      %.2f seconds (%.2f minutes)\n", m.SRTSpeechDuration, m.SRTSpeechDuration/60)
	fmt.Fprintf(f.w, "  Avg Segment Duration: %.2f seconds\n", m.SRTAvgSegmentDuration)
	if m.DurationSeconds > 0 {
		fmt.Fprintf(f.w, "  Speech Density:       %.2f%%\n", m.SpeechDensity())
	}
}

func (f *Formatter) RecordingList(names []string) {
	if len(names) == 0 {
		f.Info("No recordings found.")
		return
	}
	f.heading.Fprintf(f.w, "Found %d recording(s):\n", len(names))
	for i, name := range names {
		fmt.Fprintf(f.w, "  %d. %s\n", i+1, name)
	}
}

func (f *Formatter) RecordingInfo(info *model.RecordingInfo) {
	f.heading.Fprintln(f.w, info.Filename)
	fmt.Fprintf(f.w, "  Size (bytes):    %d\n", info.SizeBytes)
	fmt.Fprintf(f.w, "  Size (KB):       %.2f KB\n", info.SizeKB)
	fmt.Fprintf(f.w, "  Size (MB):       %.4f MB\n", info.SizeMB)
	fmt.Fprintf(f.w, "  Created:         %s\n", info.CreatedDate)
	fmt.Fprintf(f.w, "  Timestamp:       %d\n", info.CreatedTimestamp)
}

func (f *Formatter) WatchEvent(op, filename string) {
	f.dim.Fprintf(f.w, "[%s] ", op)
	fmt.Fprintf(f.w, "%s\n", filename)
}
