package device

import (
	"io"
	"os"
	"sync"

	"github.com/jnwhiteh/minixboot/common"
)

type fileDevice struct {
	file     *os.File
	filename string
	base     int64 // byte offset of the filesystem within the file
	size     int64 // number of bytes visible through this device
	in       chan m_dev_req
	out      chan m_dev_res

	m      sync.Mutex
	closed bool
}

// NewFileDevice creates a new file-backed device. Sector 0 of the device is
// at byte offset base within the file and the device extends for size bytes.
// A size of 0 means up to the end of the file.
func NewFileDevice(filename string, base, size int64) (common.BlockDevice, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	fi, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if base < 0 || base > fi.Size() {
		file.Close()
		return nil, ERR_SEEK
	}
	if size == 0 || base+size > fi.Size() {
		size = fi.Size() - base
	}

	dev := &fileDevice{
		file:     file,
		filename: filename,
		base:     base,
		size:     size,
		in:       make(chan m_dev_req),
		out:      make(chan m_dev_res),
	}

	go dev.loop()
	return dev, nil
}

func (dev *fileDevice) loop() {
	var in <-chan m_dev_req = dev.in
	var out chan<- m_dev_res = dev.out

	for req := range in {
		switch req.call {
		case DEV_READ:
			pos, n, err := check(req.sector, req.count, req.buf, dev.size)
			if err != nil {
				out <- m_dev_res{err}
				continue
			}
			_, err = dev.file.ReadAt(req.buf[:n], dev.base+pos)
			if err == io.EOF {
				err = ERR_SHORT
			}
			out <- m_dev_res{err}
		case DEV_CLOSE:
			err := dev.file.Close()
			out <- m_dev_res{err}
			close(dev.in)
			close(dev.out)
		default:
			out <- m_dev_res{ERR_BADCALL}
		}
	}
}

func (dev *fileDevice) ReadSectors(sector, count int, buf []byte) error {
	dev.m.Lock()
	defer dev.m.Unlock()
	if dev.closed {
		return ERR_BADCALL
	}
	dev.in <- m_dev_req{DEV_READ, sector, count, buf}
	res := <-dev.out
	return res.err
}

// Close stops the device loop and closes the file. Closing a closed device
// does nothing.
func (dev *fileDevice) Close() error {
	dev.m.Lock()
	defer dev.m.Unlock()
	if dev.closed {
		return nil
	}
	dev.closed = true
	dev.in <- m_dev_req{DEV_CLOSE, 0, 0, nil}
	res := <-dev.out
	return res.err
}
