package storage

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

var errBirthTimeUnsupported = errors.New("filesystem does not report creation time")

// platformBirthTime asks statx for STATX_BTIME
func platformBirthTime(path string, _ os.FileInfo) (time.Time, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, errBirthTimeUnsupported
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
