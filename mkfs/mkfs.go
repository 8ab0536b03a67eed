// Package mkfs lays out MINIX V1 filesystem images with a populated root
// directory, the kind of image the boot loader reads.
package mkfs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jnwhiteh/minixboot/common"
)

// A File to place in the root directory.
type File struct {
	Name string
	Data []byte
	Inum int    // inode number, 0 for the next free one
	Mode uint16 // 0 for a regular file
}

type Options struct {
	Magic   uint16 // SUPER_MAGIC or SUPER_MAGIC2, 0 for SUPER_MAGIC
	Ninodes int    // 0 for 64
	Blocks  int    // total size in blocks, 0 for just enough
}

// The largest file that can be laid out, using direct and single indirect
// zones only.
const MAX_FILE_SIZE = (common.V1_NR_DZONES + common.NR_INDIRECTS) * common.BLOCK_SIZE

// The most zones a V1 superblock can count.
const MAX_ZONES = 0xFFFF

// The number of bits in a bitmap block.
const BITS_PER_BLOCK = common.BLOCK_SIZE * 8

// Format builds an image holding files in its root directory. Data zones
// are allocated contiguously in the order given, the root directory first.
func Format(opts Options, files ...File) ([]byte, error) {
	const bsize = common.BLOCK_SIZE

	magic := opts.Magic
	dirent := common.DIRENT_SIZE
	switch magic {
	case 0:
		magic = common.SUPER_MAGIC
	case common.SUPER_MAGIC:
	case common.SUPER_MAGIC2:
		dirent = common.DIRENT_SIZE32
	default:
		return nil, fmt.Errorf("unsupported magic 0x%x", magic)
	}
	ninodes := opts.Ninodes
	if ninodes == 0 {
		ninodes = 64
	}

	files = append([]File(nil), files...)
	if err := assignInodes(files, &ninodes); err != nil {
		return nil, err
	}

	// Root directory contents
	dir := make([]byte, (2+len(files))*dirent)
	putEntry := func(slot, inum int, name string) {
		e := dir[slot*dirent : (slot+1)*dirent]
		binary.LittleEndian.PutUint16(e, uint16(inum))
		copy(e[2:], name)
	}
	putEntry(0, common.ROOT_INODE_NUM, ".")
	putEntry(1, common.ROOT_INODE_NUM, "..")
	for i, f := range files {
		if len(f.Name) == 0 || len(f.Name) > dirent-2 {
			return nil, fmt.Errorf("bad file name %q", f.Name)
		}
		putEntry(2+i, f.Inum, f.Name)
	}
	if len(dir) > MAX_FILE_SIZE {
		return nil, errors.New("too many files for the root directory")
	}

	imap := (ninodes + 1 + BITS_PER_BLOCK - 1) / BITS_PER_BLOCK
	iblocks := (ninodes + common.INODES_PER_BLOCK - 1) / common.INODES_PER_BLOCK
	datazones := zonesFor(len(dir))
	for _, f := range files {
		if len(f.Data) > MAX_FILE_SIZE {
			return nil, fmt.Errorf("%s: %d bytes needs double indirect zones", f.Name, len(f.Data))
		}
		datazones += zonesFor(len(f.Data))
	}

	// The zone map size depends on the zone count, which includes it
	zmap := 1
	for {
		nzones := common.START_BLOCK + imap + zmap + iblocks + datazones
		if opts.Blocks > nzones {
			nzones = opts.Blocks
		}
		if need := (nzones + BITS_PER_BLOCK - 1) / BITS_PER_BLOCK; need > zmap {
			zmap = need
			continue
		}
		break
	}
	firstdata := common.START_BLOCK + imap + zmap + iblocks
	nzones := firstdata + datazones
	if opts.Blocks > nzones {
		nzones = opts.Blocks
	}
	if nzones > MAX_ZONES {
		return nil, fmt.Errorf("%d blocks is too large for a V1 filesystem", nzones)
	}

	img := make([]byte, nzones*bsize)

	sup := common.Disk_Superblock{
		Ninodes:       uint16(ninodes),
		Nzones:        uint16(nzones),
		Imap_blocks:   uint16(imap),
		Zmap_blocks:   uint16(zmap),
		Firstdatazone: uint16(firstdata),
		Log_zone_size: 0,
		Max_size:      MAX_FILE_SIZE,
		Magic:         magic,
		State:         1,
	}
	supr_block := new(bytes.Buffer)
	if err := binary.Write(supr_block, binary.LittleEndian, &sup); err != nil {
		return nil, err
	}
	copy(img[bsize:], supr_block.Bytes())

	setBit := func(start, bit int) {
		img[start*bsize+bit/8] |= 1 << uint(bit%8)
	}
	imapStart := common.START_BLOCK
	zmapStart := common.START_BLOCK + imap
	setBit(imapStart, 0)
	setBit(zmapStart, 0)

	zone := firstdata
	alloc := func() int {
		setBit(zmapStart, zone-firstdata+1)
		zone++
		return zone - 1
	}

	place := func(inum int, mode uint16, nlinks int, data []byte) error {
		inode := common.Disk_Inode{
			Mode:   mode,
			Size:   uint32(len(data)),
			Nlinks: uint8(nlinks),
		}
		var indirect []byte
		for off, n := 0, 0; off < len(data); off, n = off+bsize, n+1 {
			if n == common.V1_NR_DZONES {
				z := alloc()
				inode.Zone[common.ZONE_IND_L1] = uint16(z)
				indirect = img[z*bsize : (z+1)*bsize]
			}
			z := alloc()
			copy(img[z*bsize:(z+1)*bsize], data[off:])
			if n < common.V1_NR_DZONES {
				inode.Zone[n] = uint16(z)
			} else {
				binary.LittleEndian.PutUint16(indirect[(n-common.V1_NR_DZONES)*2:], uint16(z))
			}
		}

		buf := new(bytes.Buffer)
		if err := binary.Write(buf, binary.LittleEndian, &inode); err != nil {
			return err
		}
		i := inum - 1
		off := (firstdata-iblocks+i/common.INODES_PER_BLOCK)*bsize + (i%common.INODES_PER_BLOCK)*common.V1_INODE_SIZE
		copy(img[off:], buf.Bytes())
		setBit(imapStart, inum)
		return nil
	}

	if err := place(common.ROOT_INODE_NUM, common.I_DIRECTORY|0755, 2, dir); err != nil {
		return nil, err
	}
	for _, f := range files {
		mode := f.Mode
		if mode == 0 {
			mode = common.I_REGULAR | 0644
		}
		if err := place(f.Inum, mode, 1, f.Data); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// Give every file without an inode number the next free one, growing
// ninodes to cover the highest number used.
func assignInodes(files []File, ninodes *int) error {
	used := map[int]bool{common.ROOT_INODE_NUM: true}
	for _, f := range files {
		if f.Inum == 0 {
			continue
		}
		if f.Inum < 0 || used[f.Inum] {
			return fmt.Errorf("%s: inode %d already in use", f.Name, f.Inum)
		}
		used[f.Inum] = true
	}

	next := 2
	for i := range files {
		if files[i].Inum == 0 {
			for used[next] {
				next++
			}
			files[i].Inum = next
			used[next] = true
		}
		if files[i].Inum > *ninodes {
			*ninodes = files[i].Inum
		}
	}
	if *ninodes > MAX_ZONES {
		return fmt.Errorf("%d inodes is too many for a V1 filesystem", *ninodes)
	}
	return nil
}

// The number of zones a file of size bytes occupies, indirect block included.
func zonesFor(size int) int {
	n := (size + common.BLOCK_SIZE - 1) / common.BLOCK_SIZE
	if n > common.V1_NR_DZONES {
		n++
	}
	return n
}
