package storage

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func platformBirthTime(path string, _ os.FileInfo) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return time.Unix(st.Btim.Unix()), nil
}
