package common

import (
	"errors"
	"fmt"
)

// The following string constants are taken from the Minix 3.1.0 source,
// specifically from lib/ansi/errlist.c.

var (
	EFBIG   = errors.New("File too large")
	EINVAL  = errors.New("Invalid argument")
	EIO     = errors.New("I/O error")
	ENOENT  = errors.New("No such file or directory")
	ENOSYS  = errors.New("Function not implemented")
	ENOTDIR = errors.New("Not a directory")
)

// DiskError records a failed sector read. It matches EIO under errors.Is
// and unwraps to the error reported by the device.
type DiskError struct {
	Sector int
	Count  int
	Err    error
}

func (e *DiskError) Error() string {
	return fmt.Sprintf("reading %d sector(s) at %d: %s", e.Count, e.Sector, e.Err)
}

func (e *DiskError) Unwrap() error {
	return e.Err
}

func (e *DiskError) Is(target error) bool {
	return target == EIO
}
