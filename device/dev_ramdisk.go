package device

import (
	"os"

	"github.com/jnwhiteh/minixboot/common"
)

type ramdiskDevice struct {
	data []byte
}

// NewRamdiskDevice creates a device backed by the given bytes. The slice is
// used in place, not copied.
func NewRamdiskDevice(data []byte) common.BlockDevice {
	return &ramdiskDevice{data}
}

// NewRamdiskDeviceFile reads a whole image file into memory.
func NewRamdiskDeviceFile(filename string) (common.BlockDevice, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewRamdiskDevice(data), nil
}

func (dev *ramdiskDevice) ReadSectors(sector, count int, buf []byte) error {
	if dev.data == nil {
		return ERR_BADCALL
	}
	pos, n, err := check(sector, count, buf, int64(len(dev.data)))
	if err != nil {
		return err
	}
	copy(buf[:n], dev.data[pos:])
	return nil
}

func (dev *ramdiskDevice) Close() error {
	dev.data = nil
	return nil
}
