package boot

import (
	"github.com/jnwhiteh/minixboot/common"
)

// LoadFile loads the inode with zero-based index i and copies its contents
// to the destination: the directory buffer for the root inode, the load
// segment for anything else. Direct zones are walked first, then the single
// indirect zone. Files that would need the double indirect zone are
// rejected before any data is read.
func (l *Loader) LoadFile(i int) error {
	if err := l.LoadInode(i); err != nil {
		return err
	}

	l.loaded = 0
	if i == common.ROOT_INDEX {
		l.dest = l.d_dir[:]
	} else {
		l.dest = l.seg
	}

	// Compare before converting: a corrupt size may not fit in an int
	if l.i_data.Size > MAX_LOAD_SIZE {
		l.debugf("Inode %d: %d bytes needs double indirect zones", i+1, l.i_data.Size)
		return common.ENOSYS
	}
	size := int(l.i_data.Size)
	if size > len(l.dest) {
		l.debugf("Inode %d: %d bytes does not fit in %d", i+1, size, len(l.dest))
		return common.EFBIG
	}

	l.f_pos = 0
	zone := l.i_data.Zone[:]

	// Direct zones
	if err := l.LoadZone(0, zone[common.ZONE_IND_L0:common.ZONE_IND_L1]); err != nil {
		return err
	}
	if l.f_pos >= size {
		l.loaded = size
		return nil
	}

	// Indirect zones
	if err := l.LoadZone(1, zone[common.ZONE_IND_L1:common.ZONE_IND_L2]); err != nil {
		return err
	}
	l.loaded = size
	return nil
}

// Size returns the size in bytes of the current inode.
func (l *Loader) Size() int64 {
	return int64(l.i_data.Size)
}

// Bytes returns the contents placed by the last successful LoadFile. The
// slice aliases the loader's buffers and is overwritten by the next load.
func (l *Loader) Bytes() []byte {
	if l.dest == nil {
		return nil
	}
	return l.dest[:l.loaded]
}
