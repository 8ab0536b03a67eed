package testutils

import (
	"errors"
	"strings"

	"github.com/jnwhiteh/minixboot/common"
)

var ErrInjected = errors.New("injected disk failure")

// A Read is one call made to a CountingDisk.
type Read struct {
	Sector int
	Count  int
}

// CountingDisk records every read passed through to the wrapped disk.
type CountingDisk struct {
	common.Disk
	Reads []Read
}

func NewCountingDisk(disk common.Disk) *CountingDisk {
	return &CountingDisk{Disk: disk}
}

func (d *CountingDisk) ReadSectors(sector, count int, buf []byte) error {
	d.Reads = append(d.Reads, Read{sector, count})
	return d.Disk.ReadSectors(sector, count, buf)
}

// ReadBlock reports whether filesystem block bnum was read.
func (d *CountingDisk) ReadBlock(bnum int) bool {
	for _, r := range d.Reads {
		if r.Sector == bnum<<common.BLOCK_SHIFT {
			return true
		}
	}
	return false
}

// FailingDisk fails every read of the given sector and passes the rest
// through.
type FailingDisk struct {
	common.Disk
	Sector int
}

func (d *FailingDisk) ReadSectors(sector, count int, buf []byte) error {
	if sector == d.Sector {
		return ErrInjected
	}
	return d.Disk.ReadSectors(sector, count, buf)
}

// Machine is a hosted stand-in for the first-stage bootstrap.
type Machine struct {
	common.Disk
	Console strings.Builder
	Segment []byte
	Image   []byte // what RunProg was handed
	Runs    int
}

func NewMachine(disk common.Disk, segsize int) *Machine {
	return &Machine{Disk: disk, Segment: make([]byte, segsize)}
}

func (m *Machine) Puts(s string) {
	m.Console.WriteString(s)
}

func (m *Machine) LoadSegment() []byte {
	return m.Segment
}

func (m *Machine) RunProg(image []byte) error {
	m.Runs++
	m.Image = image
	return nil
}
