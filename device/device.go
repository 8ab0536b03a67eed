package device

import (
	"errors"

	"github.com/jnwhiteh/minixboot/common"
)

const SECTOR_SIZE = common.SECTOR_SIZE

var ERR_SEEK = errors.New("could not seek to given position")
var ERR_BADCALL = errors.New("bad call")
var ERR_SHORT = errors.New("short read")

type CallNumber int

const (
	DEV_READ CallNumber = iota
	DEV_CLOSE
)

type m_dev_req struct {
	call   CallNumber
	sector int
	count  int
	buf    []byte
}

type m_dev_res struct {
	err error
}

// check validates a sector read request against a device of the given size
// in bytes and returns the byte range it covers.
func check(sector, count int, buf []byte, size int64) (int64, int, error) {
	if sector < 0 || count <= 0 {
		return 0, 0, ERR_SEEK
	}
	n := count * SECTOR_SIZE
	if len(buf) < n {
		return 0, 0, ERR_SHORT
	}
	pos := int64(sector) * SECTOR_SIZE
	if pos+int64(n) > size {
		return 0, 0, ERR_SEEK
	}
	return pos, n, nil
}
