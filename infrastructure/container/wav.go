package container

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Skryldev/audio-core/domain/model"
)

var (
	errNotRIFF     = errors.New("not a RIFF/WAVE file")
	errMissingFmt  = errors.New("WAVE file has no fmt chunk")
	errShortFmt    = errors.New("WAVE fmt chunk too short")
	errMissingData = errors.New("WAVE file has no data chunk")
)

// fmtCoreSize covers format tag, channels, sample rate, byte rate, block
// align and bits per sample. Extension bytes are skipped.
const fmtCoreSize = 16

// WAVReader parses RIFF/WAVE headers directly
type WAVReader struct{}

// NewWAVReader creates a WAV header reader
func NewWAVReader() *WAVReader {
	return &WAVReader{}
}

// Supports matches .wav and .wave files
func (r *WAVReader) Supports(path string) bool {
	return hasExt(path, ".wav", ".wave")
}

// ReadProperties walks the RIFF chunk list for fmt and data chunks
func (r *WAVReader) ReadProperties(_ context.Context, path string) (*model.AudioProperties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var riff [12]byte
	if _, err := io.ReadFull(f, riff[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotRIFF, err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, errNotRIFF
	}

	var (
		props    model.AudioProperties
		byteRate uint32
		haveFmt  bool
		dataSize uint32
		haveData bool
	)

	for !haveFmt || !haveData {
		var hdr [8]byte
		if _, err := io.ReadFull(f, hdr[:]); err != nil {
			break
		}
		id := string(hdr[0:4])
		size := binary.LittleEndian.Uint32(hdr[4:8])
		// chunks are word aligned
		skip := int64(size) + int64(size%2)

		switch id {
		case "fmt ":
			if size < fmtCoreSize {
				return nil, errShortFmt
			}
			var buf [fmtCoreSize]byte
			if _, err := io.ReadFull(f, buf[:]); err != nil {
				return nil, fmt.Errorf("reading fmt chunk: %w", err)
			}
			props.Channels = binary.LittleEndian.Uint16(buf[2:4])
			props.SampleRate = binary.LittleEndian.Uint32(buf[4:8])
			byteRate = binary.LittleEndian.Uint32(buf[8:12])
			haveFmt = true
			skip -= fmtCoreSize
		case "data":
			dataSize = size
			haveData = true
		}

		if haveFmt && haveData {
			break
		}
		if _, err := f.Seek(skip, io.SeekCurrent); err != nil {
			return nil, err
		}
	}

	if !haveFmt {
		return nil, errMissingFmt
	}
	if !haveData {
		return nil, errMissingData
	}

	if byteRate > 0 {
		props.Bitrate = uint32(uint64(byteRate) * 8 / 1000)
		secs := float64(dataSize) / float64(byteRate)
		props.Duration = time.Duration(secs * float64(time.Second))
	}

	return &props, nil
}
