package testutils

import (
	"encoding/binary"

	"github.com/jnwhiteh/minixboot/common"
	"github.com/jnwhiteh/minixboot/mkfs"
)

type File = mkfs.File
type Options = mkfs.Options

// BuildImage formats an in-memory image and panics if the layout is
// impossible; fixtures are expected to be valid.
func BuildImage(opts Options, files ...File) []byte {
	img, err := mkfs.Format(opts, files...)
	if err != nil {
		panic(err)
	}
	return img
}

// Return the 32 bytes of inode inum (1-based) in img.
func inodeBytes(img []byte, inum int) []byte {
	sb := img[common.BLOCK_SIZE:]
	imap := int(binary.LittleEndian.Uint16(sb[4:]))
	zmap := int(binary.LittleEndian.Uint16(sb[6:]))
	first := common.START_BLOCK + imap + zmap
	i := inum - 1
	off := (first+i/common.INODES_PER_BLOCK)*common.BLOCK_SIZE + (i%common.INODES_PER_BLOCK)*common.V1_INODE_SIZE
	return img[off : off+common.V1_INODE_SIZE]
}

// SetInodeSize overwrites the recorded size of inode inum.
func SetInodeSize(img []byte, inum int, size uint32) {
	binary.LittleEndian.PutUint32(inodeBytes(img, inum)[4:], size)
}

// SetInodeMode overwrites the mode of inode inum.
func SetInodeMode(img []byte, inum int, mode uint16) {
	binary.LittleEndian.PutUint16(inodeBytes(img, inum)[0:], mode)
}

// SetInodeZone overwrites zone slot idx of inode inum.
func SetInodeZone(img []byte, inum, idx int, z uint16) {
	binary.LittleEndian.PutUint16(inodeBytes(img, inum)[14+2*idx:], z)
}

// InodeZones returns the zone array of inode inum.
func InodeZones(img []byte, inum int) [common.V1_NR_TZONES]uint16 {
	var zones [common.V1_NR_TZONES]uint16
	ino := inodeBytes(img, inum)
	for i := range zones {
		zones[i] = binary.LittleEndian.Uint16(ino[14+2*i:])
	}
	return zones
}

// SetSuperField overwrites the 16-bit superblock field at byte offset off.
func SetSuperField(img []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(img[common.BLOCK_SIZE+off:], v)
}
