package boot

import (
	"bytes"
	"encoding/binary"

	"github.com/jnwhiteh/minixboot/common"
	"github.com/jnwhiteh/minixboot/debug"
)

// LoadInode makes the inode with zero-based index i the current inode. The
// containing block is read from disk on every call, even when it is the
// block already in the buffer.
func (l *Loader) LoadInode(i int) error {
	if l.state < SuperblockLoaded {
		return common.EINVAL
	}
	if i < 0 || i >= int(l.sb_data.Ninodes) {
		return common.EINVAL
	}

	ib := l.ib_first + i/common.INODES_PER_BLOCK
	if err := l.blockRead(ib, l.i_block[:]); err != nil {
		return err
	}

	off := (i % common.INODES_PER_BLOCK) * common.V1_INODE_SIZE
	buf := bytes.NewReader(l.i_block[off : off+common.V1_INODE_SIZE])
	if err := binary.Read(buf, binary.LittleEndian, &l.i_data); err != nil {
		return err
	}
	l.i_now = i

	if l.showdebug {
		debug.PrintInode(i+1, &l.i_data)
	}
	return nil
}

// Stat returns a copy of the inode with zero-based index i.
func (l *Loader) Stat(i int) (common.Disk_Inode, error) {
	if err := l.LoadInode(i); err != nil {
		return common.Disk_Inode{}, err
	}
	return l.i_data, nil
}
