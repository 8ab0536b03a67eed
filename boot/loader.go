// Package boot locates a file in the root directory of a MINIX V1 filesystem
// and loads it into a fixed destination using nothing but sector reads.
//
// A Loader owns one statically sized buffer per role and reuses it on every
// call: there is no allocation on the load path and no caching between
// loads. The zone walker recurses once per level of indirection and keeps
// one zone-pointer buffer per level.
package boot

import (
	"log"

	"github.com/jnwhiteh/minixboot/common"
)

// The deepest level of indirection the zone walker follows. Double indirect
// zones (level 2) are not supported.
const MAX_LEVEL = 1

// The size of the directory scratch buffer, and so of the largest root
// directory that can be scanned.
const DIR_BUFFER_SIZE = 8 * common.BLOCK_SIZE

// The largest file that direct and single indirect zones can address.
const MAX_LOAD_SIZE = (common.V1_NR_DZONES + common.NR_INDIRECTS) * common.BLOCK_SIZE

// A Loader is the traversal context for one boot. It is not safe for
// concurrent use.
type Loader struct {
	disk common.Disk
	seg  []byte // the load segment

	sb_block [common.BLOCK_SIZE]byte // super block buffer
	sb_data  common.Disk_Superblock  // decoded super block
	ib_first int                     // first block of the inode table
	dirent   int                     // size of a directory entry

	i_now   int                     // zero-based index of the current inode
	i_block [common.BLOCK_SIZE]byte // inode block buffer
	i_data  common.Disk_Inode       // the current inode

	z_block [MAX_LEVEL][common.BLOCK_SIZE]byte     // zone block buffers
	z_data  [MAX_LEVEL][common.NR_INDIRECTS]uint16 // decoded zone blocks
	tail    [common.BLOCK_SIZE]byte                // last partial data block

	f_pos  int    // load cursor
	dest   []byte // destination of the current load
	loaded int    // bytes placed by the last complete load

	d_dir  [DIR_BUFFER_SIZE]byte // root directory contents
	d_size int                   // size of the root directory

	state     State
	showdebug bool
}

// NewLoader creates a loader reading from disk and assembling files in seg.
func NewLoader(disk common.Disk, seg []byte) *Loader {
	return &Loader{
		disk:  disk,
		seg:   seg,
		i_now: -1,
		state: Idle,
	}
}

// SetDebug turns tracing of disk reads and state changes on or off.
func (l *Loader) SetDebug(on bool) {
	l.showdebug = on
}

// State returns where the loader is in the boot sequence.
func (l *Loader) State() State {
	return l.state
}

func (l *Loader) setState(s State) {
	l.debugf("boot: %s -> %s", l.state, s)
	l.state = s
}

func (l *Loader) debugf(format string, args ...interface{}) {
	if l.showdebug {
		log.Printf(format, args...)
	}
}

// Read count sectors starting at sector into buf.
func (l *Loader) diskRead(sector, count int, buf []byte) error {
	l.debugf("boot: read sector %d count %d", sector, count)
	if err := l.disk.ReadSectors(sector, count, buf); err != nil {
		return &common.DiskError{Sector: sector, Count: count, Err: err}
	}
	return nil
}

// Read one filesystem block into buf.
func (l *Loader) blockRead(bnum int, buf []byte) error {
	return l.diskRead(bnum<<common.BLOCK_SHIFT, common.SECTORS_PER_BLOCK, buf)
}
