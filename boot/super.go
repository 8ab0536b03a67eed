package boot

import (
	"bytes"
	"encoding/binary"

	"github.com/jnwhiteh/minixboot/common"
	"github.com/jnwhiteh/minixboot/debug"
)

// LoadSuper reads the superblock, checks that it describes a V1 filesystem
// this loader understands and computes the start of the inode table.
func (l *Loader) LoadSuper() error {
	err := l.diskRead(common.SUPER_SECTOR, common.SUPER_SECTORS, l.sb_block[:])
	if err != nil {
		return err
	}

	sb := &l.sb_data
	err = binary.Read(bytes.NewReader(l.sb_block[:]), binary.LittleEndian, sb)
	if err != nil {
		return err
	}
	if l.showdebug {
		debug.PrintSuper(sb)
	}

	switch sb.Magic {
	case common.SUPER_MAGIC:
		l.dirent = common.DIRENT_SIZE
	case common.SUPER_MAGIC2:
		l.dirent = common.DIRENT_SIZE32
	default:
		l.debugf("Bad superblock magic 0x%x", sb.Magic)
		return common.EINVAL
	}

	if sb.Log_zone_size != 0 {
		l.debugf("Unsupported zone size: log2 %d blocks per zone", sb.Log_zone_size)
		return common.EINVAL
	}

	if sb.Ninodes == 0 || sb.Imap_blocks == 0 || sb.Zmap_blocks == 0 {
		l.debugf("Superblock has empty inode or zone maps")
		return common.EINVAL
	}

	l.ib_first = common.START_BLOCK + int(sb.Imap_blocks) + int(sb.Zmap_blocks)

	iblocks := (int(sb.Ninodes) + common.INODES_PER_BLOCK - 1) / common.INODES_PER_BLOCK
	if l.ib_first+iblocks > int(sb.Firstdatazone) || int(sb.Firstdatazone) >= int(sb.Nzones) {
		l.debugf("Inode table [%d, %d) overlaps data zones [%d, %d)",
			l.ib_first, l.ib_first+iblocks, sb.Firstdatazone, sb.Nzones)
		return common.EINVAL
	}

	l.setState(SuperblockLoaded)
	return nil
}

// Super returns a copy of the loaded superblock.
func (l *Loader) Super() common.Disk_Superblock {
	return l.sb_data
}

// InodeTableStart returns the first block of the inode table.
func (l *Loader) InodeTableStart() int {
	return l.ib_first
}

// DirentSize returns the size of a directory entry on this filesystem.
func (l *Loader) DirentSize() int {
	return l.dirent
}
