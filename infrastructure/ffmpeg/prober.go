package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Skryldev/audio-core/domain/model"
	"github.com/Skryldev/audio-core/domain/ports"
)

// ffprobeOutput maps key fields from ffprobe JSON
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
		BitRate  string `json:"bit_rate"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
		BitRate    string `json:"bit_rate"`
	} `json:"streams"`
}

// Prober is a ports.ContainerReader backed by ffprobe. It accepts every
// path and is meant to sit last in a container chain.
type Prober struct {
	executor ports.ProbeExecutor
}

// NewProber creates a prober over executor
func NewProber(executor ports.ProbeExecutor) *Prober {
	return &Prober{executor: executor}
}

// Supports always reports true
func (p *Prober) Supports(string) bool {
	return true
}

// ReadProperties probes path and maps the first audio stream
func (p *Prober) ReadProperties(ctx context.Context, path string) (*model.AudioProperties, error) {
	data, err := p.executor.Probe(ctx, path)
	if err != nil {
		return nil, err
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	props := &model.AudioProperties{}

	if secs, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil && secs > 0 {
		props.Duration = time.Duration(secs * float64(time.Second))
	}

	bitrate := probe.Format.BitRate
	for _, s := range probe.Streams {
		if s.CodecType != "" && s.CodecType != "audio" {
			continue
		}
		if sr, err := strconv.ParseUint(s.SampleRate, 10, 32); err == nil {
			props.SampleRate = uint32(sr)
		}
		if s.Channels > 0 && s.Channels <= 0xFFFF {
			props.Channels = uint16(s.Channels)
		}
		if s.BitRate != "" {
			bitrate = s.BitRate
		}
		break // take first audio stream
	}

	if bps, err := strconv.ParseUint(bitrate, 10, 64); err == nil {
		props.Bitrate = uint32(bps / 1000)
	}

	return props, nil
}
