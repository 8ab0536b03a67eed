package common

// A V1 superblock as stored on disk
type Disk_Superblock struct {
	Ninodes       uint16 // # of usable inodes on the minor device
	Nzones        uint16 // total device size, including bit maps, etc.
	Imap_blocks   uint16 // # of blocks used by inode bit map
	Zmap_blocks   uint16 // # of blocks used by zone bit map
	Firstdatazone uint16 // number of first data zone
	Log_zone_size uint16 // log2 of blocks/zone
	Max_size      uint32 // maximum file size on this device
	Magic         uint16 // magic number to recognize super-blocks
	State         uint16 // filesystem state
}

// A V1 inode as stored on disk
type Disk_Inode struct {
	Mode   uint16 // file type, protection, etc.
	Uid    uint16 // user id of the file's owner
	Size   uint32 // current file size in bytes
	Mtime  uint32 // when was file data last changed
	Gid    uint8  // group number
	Nlinks uint8  // how many links to this file
	Zone   [V1_NR_TZONES]uint16
}

func (inode *Disk_Inode) IsDirectory() bool {
	return inode.Mode&I_TYPE == I_DIRECTORY
}

func (inode *Disk_Inode) IsRegular() bool {
	return inode.Mode&I_TYPE == I_REGULAR
}

// Disk_dirent is a decoded directory entry. The name field keeps its on-disk
// length, 14 or 30 bytes depending on the superblock magic.
type Disk_dirent struct {
	Inum uint16
	Name []byte
}

// HasName reports whether the entry is named exactly s. A name that fills
// the whole field has no terminating zero.
func (entry Disk_dirent) HasName(s string) bool {
	b := entry.Name
	if len(b) < len(s) {
		return false
	}
	// Test each character in 's' to make sure it is in 'b'
	for i := 0; i < len(s); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	if len(s) == len(b) {
		return true
	}
	return b[len(s)] == 0
}

func (entry Disk_dirent) String() string {
	for i, c := range entry.Name {
		if c == 0 {
			return string(entry.Name[:i])
		}
	}
	return string(entry.Name)
}
