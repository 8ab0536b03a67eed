package boot

import (
	"bytes"
	"encoding/binary"

	"github.com/jnwhiteh/minixboot/common"
)

// LoadZone walks zones in order at the given level of indirection. At level
// 0 every zone is a data block that is copied to the destination at the
// load cursor; at higher levels every zone is a block of zone numbers one
// level down, walked in full before moving on. The walk stops as soon as the
// cursor reaches the size of the current inode.
func (l *Loader) LoadZone(level int, zones []uint16) error {
	if level < 0 || level > MAX_LEVEL {
		return common.ENOSYS
	}
	if int64(l.i_data.Size) > int64(len(l.dest)) {
		return common.EFBIG
	}

	size := int(l.i_data.Size)
	for _, z := range zones {
		if l.f_pos >= size {
			break
		}

		if level == 0 {
			if err := l.loadData(int(z), size); err != nil {
				return err
			}
			l.f_pos += common.BLOCK_SIZE
			continue
		}

		next := level - 1
		if z == common.NO_ZONE {
			// A hole: every zone below it is a hole too
			l.z_data[next] = [common.NR_INDIRECTS]uint16{}
		} else {
			if err := l.checkZone(int(z)); err != nil {
				return err
			}
			if err := l.blockRead(int(z), l.z_block[next][:]); err != nil {
				return err
			}
			buf := bytes.NewReader(l.z_block[next][:])
			if err := binary.Read(buf, binary.LittleEndian, &l.z_data[next]); err != nil {
				return err
			}
		}
		if err := l.LoadZone(next, l.z_data[next][:]); err != nil {
			return err
		}
	}
	return nil
}

// Copy data zone z to the destination at the load cursor. Only the bytes
// that belong to the file are placed; a final partial block goes through
// the tail buffer.
func (l *Loader) loadData(z int, size int) error {
	left := size - l.f_pos
	if left > common.BLOCK_SIZE {
		left = common.BLOCK_SIZE
	}
	dst := l.dest[l.f_pos : l.f_pos+left]

	if z == common.NO_ZONE {
		for i := range dst {
			dst[i] = 0
		}
		return nil
	}
	if err := l.checkZone(z); err != nil {
		return err
	}

	if left == common.BLOCK_SIZE {
		return l.blockRead(z, dst)
	}
	if err := l.blockRead(z, l.tail[:]); err != nil {
		return err
	}
	copy(dst, l.tail[:left])
	return nil
}

// Zone numbers must address the data area of the device.
func (l *Loader) checkZone(z int) error {
	if z < int(l.sb_data.Firstdatazone) || z >= int(l.sb_data.Nzones) {
		l.debugf("Illegal zone number %d in inode %d", z, l.i_now+1)
		return common.EINVAL
	}
	return nil
}
