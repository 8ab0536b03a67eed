package device

import (
	"fmt"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/jnwhiteh/minixboot/common"
)

// PartitionOffset returns the byte offset and size of the 1-based partition
// index in the partition table of the disk image at filename.
func PartitionOffset(filename string, index int) (int64, int64, error) {
	d, err := diskfs.Open(filename, diskfs.WithOpenMode(diskfs.ReadOnly))
	if err != nil {
		return 0, 0, err
	}
	defer d.File.Close()

	table, err := d.GetPartitionTable()
	if err != nil {
		return 0, 0, err
	}

	parts := table.GetPartitions()
	if index < 1 || index > len(parts) {
		return 0, 0, fmt.Errorf("%s: no partition %d (table has %d)", filename, index, len(parts))
	}
	p := parts[index-1]
	if p.GetSize() == 0 {
		return 0, 0, fmt.Errorf("%s: partition %d is empty", filename, index)
	}
	return p.GetStart(), p.GetSize(), nil
}

// NewPartitionDevice opens a file-backed device over one partition of a disk
// image. Index 0 selects the whole image.
func NewPartitionDevice(filename string, index int) (common.BlockDevice, error) {
	if index == 0 {
		return NewFileDevice(filename, 0, 0)
	}
	base, size, err := PartitionOffset(filename, index)
	if err != nil {
		return nil, err
	}
	return NewFileDevice(filename, base, size)
}
