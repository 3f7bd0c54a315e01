package storage

import (
	"errors"
	"os"
	"syscall"
	"time"
)

func platformBirthTime(_ string, fi os.FileInfo) (time.Time, error) {
	attr, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, errors.New("file attributes unavailable")
	}
	return time.Unix(0, attr.CreationTime.Nanoseconds()), nil
}
