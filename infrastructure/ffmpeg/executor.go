package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Skryldev/audio-core/pkg/logger"
	"go.uber.org/zap"
)

// Executor implements ports.ProbeExecutor
type Executor struct {
	ffprobePath string
	log         *logger.Logger
}

// ExecutorConfig holds configuration for the ffprobe executor
type ExecutorConfig struct {
	FFprobePath string
	Logger      *logger.Logger
}

// NewExecutor creates a new ffprobe executor
func NewExecutor(cfg ExecutorConfig) (*Executor, error) {
	ffprobePath := cfg.FFprobePath
	if ffprobePath == "" {
		var err error
		ffprobePath, err = exec.LookPath("ffprobe")
		if err != nil {
			return nil, fmt.Errorf("ffprobe not found in PATH: %w", err)
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &Executor{
		ffprobePath: ffprobePath,
		log:         log,
	}, nil
}

// Probe runs ffprobe and returns JSON output
func (e *Executor) Probe(ctx context.Context, inputPath string) ([]byte, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		"-select_streams", "a:0",
		inputPath,
	}

	cmd := exec.CommandContext(ctx, e.ffprobePath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.log.Debug("executing ffprobe",
		zap.Strings("args", args),
	)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return nil, &ProbeError{
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Cause:    err,
		}
	}

	return stdout.Bytes(), nil
}

// ProbeError represents an ffprobe execution failure
type ProbeError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("ffprobe execution failed (exit=%d, stderr=%q): %v",
		e.ExitCode, truncate(strings.TrimSpace(e.Stderr), 200), e.Cause)
}

func (e *ProbeError) Unwrap() error {
	return e.Cause
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
