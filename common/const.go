package common

const (
	SECTOR_SIZE       = 512                      // physical transfer unit
	BLOCK_SIZE        = 1024                     // V1 block size, fixed
	SECTORS_PER_BLOCK = BLOCK_SIZE / SECTOR_SIZE // sectors in one block
	BLOCK_SHIFT       = 1                        // block number to sector number

	SUPER_SECTOR  = 2 // the superblock lives in block 1
	SUPER_SECTORS = 2
	START_BLOCK   = 2 // first block of FS (not counting SB)

	SUPER_MAGIC  = 0x137F // V1, 14 character names
	SUPER_MAGIC2 = 0x138F // V1, 30 character names

	V1_INODE_SIZE    = 32 // the size of an inode in bytes
	INODES_PER_BLOCK = BLOCK_SIZE / V1_INODE_SIZE

	V1_NR_DZONES     = 7 // number of direct zones in a V1 inode
	V1_NR_TZONES     = 9 // total # of zone numbers in a V1 inode
	V1_ZONE_NUM_SIZE = 2 // the number of bytes in a zone number (uint16)
	NR_INDIRECTS     = BLOCK_SIZE / V1_ZONE_NUM_SIZE

	// Ranges of the zone array, by level of indirection
	ZONE_IND_L0  = 0
	ZONE_IND_L1  = V1_NR_DZONES
	ZONE_IND_L2  = V1_NR_DZONES + 1
	ZONE_IND_END = V1_NR_TZONES

	DIRSIZ   = 14 // name length with SUPER_MAGIC
	DIRSIZ32 = 30 // name length with SUPER_MAGIC2

	DIRENT_SIZE   = DIRSIZ + 2
	DIRENT_SIZE32 = DIRSIZ32 + 2

	ROOT_INODE_NUM = 1 // the root inode number
	ROOT_INDEX     = 0 // zero-based index of the root inode
	NO_ZONE        = 0

	I_TYPE      = 0170000 // bit mask for type of inode
	I_REGULAR   = 0100000 // regular file, not dir or special
	I_DIRECTORY = 0040000 // file is a directory
)
