package boot

import (
	"encoding/binary"

	"github.com/jnwhiteh/minixboot/common"
	"github.com/jnwhiteh/minixboot/debug"
)

// LoadRoot loads the root directory into the directory buffer. The root
// inode is always the first inode on disk.
func (l *Loader) LoadRoot() error {
	if err := l.LoadFile(common.ROOT_INDEX); err != nil {
		return err
	}
	if !l.i_data.IsDirectory() {
		l.debugf("Root inode has mode 0%o", l.i_data.Mode)
		return common.ENOTDIR
	}
	l.d_size = l.loaded
	l.setState(RootDirLoaded)
	return nil
}

// Decode the directory entry at offset d of the directory buffer. The name
// aliases the buffer.
func (l *Loader) dirent_at(d int) common.Disk_dirent {
	return common.Disk_dirent{
		Inum: binary.LittleEndian.Uint16(l.d_dir[d:]),
		Name: l.d_dir[d+2 : d+l.dirent],
	}
}

// Search scans the loaded root directory for an entry named exactly name
// and returns the zero-based index of its inode.
func (l *Loader) Search(name string) (int, error) {
	if l.state < RootDirLoaded {
		return -1, common.EINVAL
	}

	for d := 0; d+l.dirent <= l.d_size; d += l.dirent {
		entry := l.dirent_at(d)
		if entry.Inum == 0 {
			continue
		}
		if entry.HasName(name) {
			return int(entry.Inum) - 1, nil
		}
	}
	return -1, common.ENOENT
}

// ReadDir loads the root directory and returns its used entries.
func (l *Loader) ReadDir() ([]common.Disk_dirent, error) {
	if err := l.LoadRoot(); err != nil {
		return nil, err
	}

	var entries []common.Disk_dirent
	for d := 0; d+l.dirent <= l.d_size; d += l.dirent {
		entry := l.dirent_at(d)
		if entry.Inum == 0 {
			continue
		}
		name := make([]byte, len(entry.Name))
		copy(name, entry.Name)
		entries = append(entries, common.Disk_dirent{Inum: entry.Inum, Name: name})
	}
	if l.showdebug {
		debug.PrintDirectory(entries)
	}
	return entries, nil
}
