package boot

import (
	"bytes"
	"testing"

	"github.com/jnwhiteh/minixboot/common"
	. "github.com/jnwhiteh/minixboot/testutils"
)

const BS = common.BLOCK_SIZE

// Load the only file (inode 2) of img into a segment pre-filled with 0xAA.
func loadOne(test *testing.T, img []byte, segsize int) (*Loader, *CountingDisk, error) {
	l, disk := openLoader(test, img, segsize)
	for i := range l.seg {
		l.seg[i] = 0xAA
	}
	return l, disk, l.LoadFile(1)
}

func TestLoadFileSizes(test *testing.T) {
	sizes := []int{
		1, 100, BS - 1, BS, BS + 1,
		common.V1_NR_DZONES * BS,
		common.V1_NR_DZONES*BS + 1,
		20*BS + 5,
		MAX_LOAD_SIZE,
	}

	for _, size := range sizes {
		data := Pattern(size, byte(size))
		img := BuildImage(Options{}, File{Name: "linux", Data: data})
		l, _, err := loadOne(test, img, MAX_LOAD_SIZE+BS)
		if err != nil {
			ErrorHere(test, "size %d: load failed: %s", size, err)
			continue
		}
		if !bytes.Equal(l.Bytes(), data) {
			ErrorHere(test, "size %d: contents mismatch", size)
		}
		if !bytes.Equal(l.seg[:size], data) {
			ErrorHere(test, "size %d: segment contents mismatch", size)
		}
		// Nothing past the end of the file is touched
		for i, b := range l.seg[size:] {
			if b != 0xAA {
				ErrorHere(test, "size %d: byte %d past the end was written", size, i)
				break
			}
		}
	}
}

func TestLoadFileEmpty(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "empty"})
	l, disk, err := loadOne(test, img, BS)
	if err != nil {
		FatalHere(test, "Load failed: %s", err)
	}
	if len(l.Bytes()) != 0 {
		ErrorHere(test, "Expected no contents, got %d bytes", len(l.Bytes()))
	}
	if len(disk.Reads) != 1 {
		ErrorHere(test, "Expected only the inode block read, got %v", disk.Reads)
	}
}

// A one block file reads exactly its first direct zone
func TestLoadFileOneBlock(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "linux", Data: Pattern(BS, 7)})
	l, disk, err := loadOne(test, img, BS)
	if err != nil {
		FatalHere(test, "Load failed: %s", err)
	}

	zones := InodeZones(img, 2)
	want := []Read{{Sector: l.InodeTableStart() << 1, Count: 2}, {Sector: int(zones[0]) << 1, Count: 2}}
	if len(disk.Reads) != len(want) {
		FatalHere(test, "Expected reads %v, got %v", want, disk.Reads)
	}
	for i := range want {
		if disk.Reads[i] != want[i] {
			ErrorHere(test, "Read %d: expected %v, got %v", i, want[i], disk.Reads[i])
		}
	}
}

// Direct zones are consumed first, then only as many indirect leaves as
// the size needs.
func TestLoadFileIndirect(test *testing.T) {
	size := 10*BS + 10
	data := Pattern(size, 9)
	img := BuildImage(Options{}, File{Name: "linux", Data: data})
	l, disk, err := loadOne(test, img, size)
	if err != nil {
		FatalHere(test, "Load failed: %s", err)
	}
	if !bytes.Equal(l.Bytes(), data) {
		ErrorHere(test, "Contents mismatch")
	}

	// inode + 7 direct + indirect + 4 leaves
	if len(disk.Reads) != 1+7+1+4 {
		ErrorHere(test, "Expected 13 reads, got %d: %v", len(disk.Reads), disk.Reads)
	}
	zones := InodeZones(img, 2)
	if disk.Reads[8] != (Read{Sector: int(zones[common.ZONE_IND_L1]) << 1, Count: 2}) {
		ErrorHere(test, "Expected the indirect block after the direct zones, got %v", disk.Reads[8])
	}

	// Data blocks arrive in file order
	for i := 2; i < len(disk.Reads); i++ {
		if i != 8 && i != 9 && disk.Reads[i].Sector <= disk.Reads[i-1].Sector {
			ErrorHere(test, "Read %d out of order: %v", i, disk.Reads)
		}
	}
}

// The walk stops when the cursor reaches the size, even with zones left
func TestLoadFileStopsAtSize(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "linux", Data: Pattern(12*BS, 5)})
	zones := InodeZones(img, 2)

	// Stop inside the direct range
	SetInodeSize(img, 2, 2*BS)
	_, disk, err := loadOne(test, img, 12*BS)
	if err != nil {
		FatalHere(test, "Load failed: %s", err)
	}
	if len(disk.Reads) != 3 || disk.ReadBlock(int(zones[2])) {
		ErrorHere(test, "Expected inode and two data reads, got %v", disk.Reads)
	}
	if disk.ReadBlock(int(zones[common.ZONE_IND_L1])) {
		ErrorHere(test, "Indirect block read for a direct-only size")
	}

	// Stop inside the indirect block, mid-block
	SetInodeSize(img, 2, 9*BS+1)
	l, disk, err := loadOne(test, img, 12*BS)
	if err != nil {
		FatalHere(test, "Load failed: %s", err)
	}
	if len(disk.Reads) != 1+7+1+3 {
		ErrorHere(test, "Expected 12 reads, got %d: %v", len(disk.Reads), disk.Reads)
	}
	if !bytes.Equal(l.Bytes(), Pattern(12*BS, 5)[:9*BS+1]) {
		ErrorHere(test, "Contents mismatch")
	}
}

func TestLoadFileDoubleIndirect(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "linux", Data: Pattern(BS, 1)})
	SetInodeSize(img, 2, uint32(MAX_LOAD_SIZE+1))
	l, disk, err := loadOne(test, img, 2*MAX_LOAD_SIZE)
	if err != common.ENOSYS {
		FatalHere(test, "Expected ENOSYS, got %v", err)
	}
	if len(disk.Reads) != 1 {
		ErrorHere(test, "Data was read before rejecting: %v", disk.Reads)
	}
	if l.Bytes() != nil && len(l.Bytes()) != 0 {
		ErrorHere(test, "Rejected load reports %d bytes", len(l.Bytes()))
	}
}

func TestLoadFileCorruptSize(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "linux", Data: Pattern(BS, 1)})
	SetInodeSize(img, 2, 0x80000010)
	l, disk, err := loadOne(test, img, 2*BS)
	if err != common.ENOSYS {
		FatalHere(test, "Expected ENOSYS, got %v", err)
	}
	if len(disk.Reads) != 1 {
		ErrorHere(test, "Data was read before rejecting: %v", disk.Reads)
	}
	if len(l.Bytes()) != 0 {
		ErrorHere(test, "Rejected load reports %d bytes", len(l.Bytes()))
	}
	if l.Size() != 0x80000010 {
		ErrorHere(test, "Size mismatch: got %d", l.Size())
	}
}

func TestLoadZoneWithoutDestination(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "linux", Data: Pattern(BS, 1)})
	l, disk := openLoader(test, img, BS)
	if err := l.LoadInode(1); err != nil {
		FatalHere(test, "Failed loading inode: %s", err)
	}
	disk.Reads = nil

	zones := InodeZones(img, 2)
	if err := l.LoadZone(0, zones[:1]); err != common.EFBIG {
		ErrorHere(test, "Expected EFBIG, got %v", err)
	}
	if len(disk.Reads) != 0 {
		ErrorHere(test, "Rejected walk read the disk: %v", disk.Reads)
	}
}

func TestLoadZoneTooDeep(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "linux", Data: Pattern(BS, 1)})
	l, disk := openLoader(test, img, BS)
	if err := l.LoadInode(1); err != nil {
		FatalHere(test, "Failed loading inode: %s", err)
	}
	disk.Reads = nil

	if err := l.LoadZone(2, []uint16{1}); err != common.ENOSYS {
		ErrorHere(test, "Expected ENOSYS, got %v", err)
	}
	if len(disk.Reads) != 0 {
		ErrorHere(test, "Rejected walk read the disk: %v", disk.Reads)
	}
}

func TestLoadFileSegmentTooSmall(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "linux", Data: Pattern(3*BS, 1)})
	_, disk, err := loadOne(test, img, 2*BS)
	if err != common.EFBIG {
		FatalHere(test, "Expected EFBIG, got %v", err)
	}
	if len(disk.Reads) != 1 {
		ErrorHere(test, "Data was read before rejecting: %v", disk.Reads)
	}
}

func TestLoadFileHole(test *testing.T) {
	data := Pattern(3*BS, 2)
	img := BuildImage(Options{}, File{Name: "sparse", Data: data})
	SetInodeZone(img, 2, 1, common.NO_ZONE)

	l, _, err := loadOne(test, img, 3*BS)
	if err != nil {
		FatalHere(test, "Load failed: %s", err)
	}
	want := append([]byte{}, data...)
	for i := BS; i < 2*BS; i++ {
		want[i] = 0
	}
	if !bytes.Equal(l.Bytes(), want) {
		ErrorHere(test, "Hole was not zero filled")
	}
}

func TestLoadFileIndirectHole(test *testing.T) {
	data := Pattern(9*BS, 4)
	img := BuildImage(Options{}, File{Name: "sparse", Data: data})
	SetInodeZone(img, 2, common.ZONE_IND_L1, common.NO_ZONE)

	l, _, err := loadOne(test, img, 9*BS)
	if err != nil {
		FatalHere(test, "Load failed: %s", err)
	}
	if !bytes.Equal(l.Bytes()[:7*BS], data[:7*BS]) {
		ErrorHere(test, "Direct zones mismatch")
	}
	for i, b := range l.Bytes()[7*BS:] {
		if b != 0 {
			ErrorHere(test, "Byte %d under a missing indirect block is %d", 7*BS+i, b)
			break
		}
	}
}

func TestLoadFileIllegalZone(test *testing.T) {
	img := BuildImage(Options{}, File{Name: "linux", Data: Pattern(BS, 1)})
	SetInodeZone(img, 2, 0, 1) // the superblock

	_, disk, err := loadOne(test, img, BS)
	if err != common.EINVAL {
		FatalHere(test, "Expected EINVAL, got %v", err)
	}
	if disk.ReadBlock(1) {
		ErrorHere(test, "Illegal zone was read")
	}
}
