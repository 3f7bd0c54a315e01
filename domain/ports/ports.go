package ports

import (
	"context"

	"github.com/Skryldev/audio-core/domain/model"
)

// MetadataAnalyzer combines audio container properties with subtitle timing
type MetadataAnalyzer interface {
	// Analyze reads audioPath and subtitlePath and returns their combined metadata
	Analyze(ctx context.Context, audioPath, subtitlePath string) (*model.AudioMetadata, error)
}

// RecordingStore manages a flat directory of recording files
type RecordingStore interface {
	// Save writes data under filename, replacing any existing file
	Save(ctx context.Context, data []byte, filename string) (string, error)

	// List returns stored filenames in descending name order
	List(ctx context.Context) ([]string, error)

	// Delete removes a stored recording
	Delete(ctx context.Context, filename string) (string, error)

	// Stat returns size and creation metadata for a stored recording
	Stat(ctx context.Context, filename string) (*model.RecordingInfo, error)
}

// ContainerReader extracts audio properties from a file path
type ContainerReader interface {
	// Supports reports whether the reader can attempt path, usually by extension
	Supports(path string) bool

	// ReadProperties parses the container. Unknown properties are left at zero.
	ReadProperties(ctx context.Context, path string) (*model.AudioProperties, error)
}

// ProbeExecutor is the abstraction for ffprobe execution
type ProbeExecutor interface {
	// Probe runs ffprobe and returns JSON output
	Probe(ctx context.Context, inputPath string) ([]byte, error)
}
