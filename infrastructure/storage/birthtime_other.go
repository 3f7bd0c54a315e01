//go:build !linux && !darwin && !windows

package storage

import (
	"errors"
	"os"
	"time"
)

func platformBirthTime(string, os.FileInfo) (time.Time, error) {
	return time.Time{}, errors.New("creation time is not supported on this platform")
}
