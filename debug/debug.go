package debug

import (
	"bytes"
	"fmt"
	"log"

	"github.com/jnwhiteh/minixboot/common"
)

func PrintSuper(sb *common.Disk_Superblock) {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "%-14s 0x%x\n", "magic", sb.Magic)
	fmt.Fprintf(buf, "%-14s %d\n", "inodes", sb.Ninodes)
	fmt.Fprintf(buf, "%-14s %d\n", "zones", sb.Nzones)
	fmt.Fprintf(buf, "%-14s %d\n", "imap blocks", sb.Imap_blocks)
	fmt.Fprintf(buf, "%-14s %d\n", "zmap blocks", sb.Zmap_blocks)
	fmt.Fprintf(buf, "%-14s %d\n", "first data", sb.Firstdatazone)
	fmt.Fprintf(buf, "%-14s %d\n", "log zone size", sb.Log_zone_size)
	fmt.Fprintf(buf, "%-14s %d\n", "max size", sb.Max_size)
	log.Printf("Superblock follows:\n%s", buf.String())
}

func PrintInode(inum int, inode *common.Disk_Inode) {
	log.Printf("%8s %-16s %8s %8s %s", "INODE #", "MODE", "NLINKS", "SIZE", "ZONES")
	log.Printf("%8d %16b %8d %8d %v", inum, inode.Mode, inode.Nlinks, inode.Size, inode.Zone)
}

func PrintDirectory(entries []common.Disk_dirent) {
	// Print the directory block entries
	buf := bytes.NewBuffer(nil)
	for i, dirent := range entries {
		if dirent.Inum != 0 {
			fmt.Fprintf(buf, "Entry %8d: \"%s\" at inode %8d\n", i, dirent, dirent.Inum)
		}
	}
	log.Printf("Directory follows:\n%s\n", buf.String())
}
