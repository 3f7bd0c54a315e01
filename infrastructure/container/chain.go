// Package container holds the audio container readers used by the
// metadata analyzer and a Chain that dispatches between them.
package container

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Skryldev/audio-core/domain/model"
	"github.com/Skryldev/audio-core/domain/ports"
	"github.com/Skryldev/audio-core/pkg/logger"
	"go.uber.org/zap"
)

// ErrUnsupportedFormat is returned when no reader in a Chain accepts a path
var ErrUnsupportedFormat = errors.New("unsupported audio container")

// Chain tries each supporting reader in order until one succeeds
type Chain struct {
	readers []ports.ContainerReader
	log     *logger.Logger
}

// NewChain creates a chain over readers. Nil readers are skipped.
func NewChain(log *logger.Logger, readers ...ports.ContainerReader) *Chain {
	if log == nil {
		log = logger.NewNop()
	}
	c := &Chain{log: log}
	for _, r := range readers {
		if r != nil {
			c.readers = append(c.readers, r)
		}
	}
	return c
}

// Supports reports whether any reader accepts path
func (c *Chain) Supports(path string) bool {
	for _, r := range c.readers {
		if r.Supports(path) {
			return true
		}
	}
	return false
}

// ReadProperties returns the first successful result, or the last error
func (c *Chain) ReadProperties(ctx context.Context, path string) (*model.AudioProperties, error) {
	var lastErr error
	for _, r := range c.readers {
		if !r.Supports(path) {
			continue
		}
		props, err := r.ReadProperties(ctx, path)
		if err == nil {
			return props, nil
		}
		c.log.Debug("container reader failed, trying next",
			zap.String("reader", fmt.Sprintf("%T", r)),
			zap.String("path", path),
			zap.Error(err),
		)
		lastErr = err
	}
	if lastErr == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return nil, lastErr
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
