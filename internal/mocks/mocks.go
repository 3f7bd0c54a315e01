package mocks

import (
	"context"
	"encoding/json"

	"github.com/Skryldev/audio-core/domain/model"
)

// MockProbeExecutor is a test double for ports.ProbeExecutor
type MockProbeExecutor struct {
	ProbeFunc   func(ctx context.Context, inputPath string) ([]byte, error)
	ProbedPaths []string
}

func (m *MockProbeExecutor) Probe(ctx context.Context, inputPath string) ([]byte, error) {
	m.ProbedPaths = append(m.ProbedPaths, inputPath)
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, inputPath)
	}
	return DefaultProbeResponse(), nil
}

// DefaultProbeResponse is a stereo 44.1 kHz PCM probe result
func DefaultProbeResponse() []byte {
	resp := map[string]interface{}{
		"format": map[string]interface{}{
			"duration":    "120.5",
			"bit_rate":    "192000",
			"size":        "2880000",
			"format_name": "wav",
		},
		"streams": []map[string]interface{}{
			{
				"codec_type":  "audio",
				"codec_name":  "pcm_s16le",
				"sample_rate": "44100",
				"channels":    2,
				"bit_rate":    "1411200",
			},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

// MockContainerReader is a test double for ports.ContainerReader
type MockContainerReader struct {
	SupportsFunc func(path string) bool
	ReadFunc     func(ctx context.Context, path string) (*model.AudioProperties, error)
	ReadPaths    []string
}

func (m *MockContainerReader) Supports(path string) bool {
	if m.SupportsFunc != nil {
		return m.SupportsFunc(path)
	}
	return true
}

func (m *MockContainerReader) ReadProperties(ctx context.Context, path string) (*model.AudioProperties, error) {
	m.ReadPaths = append(m.ReadPaths, path)
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, path)
	}
	return &model.AudioProperties{}, nil
}
