package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jnwhiteh/minixboot/bcache"
	"github.com/jnwhiteh/minixboot/boot"
	"github.com/jnwhiteh/minixboot/common"
	"github.com/jnwhiteh/minixboot/debug"
	"github.com/jnwhiteh/minixboot/device"
)

const (
	RWX_MODES     = 0000777
	R_BIT         = 0000004
	W_BIT         = 0000002
	X_BIT         = 0000001
	I_SET_UID_BIT = 0004000
	I_SET_GID_BIT = 0002000
)

var l_ifmt = []byte("0pcCd?dB-?l?s???")

func ModeString(inode *common.Disk_Inode) []byte {
	// Start with a default, which we overwrite
	rwx := []byte("drwxr-x--x")

	// This is a dirty hack we inherit from Minix3 to map and file type
	// into a letter for display in ls -l
	rwx[0] = l_ifmt[(inode.Mode>>12)&0xF]

	mode := inode.Mode & RWX_MODES
	for index := 7; index >= 1; index -= 3 {
		rwx[index+0] = '-'
		rwx[index+1] = '-'
		rwx[index+2] = '-'
		if mode&R_BIT > 0 {
			rwx[index+0] = 'r'
		}
		if mode&W_BIT > 0 {
			rwx[index+1] = 'w'
		}
		if mode&X_BIT > 0 {
			rwx[index+2] = 'x'
		}
		mode = mode >> 3
	}

	canexec := inode.Mode&X_BIT > 0

	if inode.Mode&I_SET_UID_BIT > 0 && canexec {
		rwx[3] = 's'
	}
	if inode.Mode&I_SET_GID_BIT > 0 && canexec {
		rwx[6] = 's'
	}
	return rwx
}

// Find a file in the root directory and return its inode index
func lookup(l *boot.Loader, name string) (int, bool) {
	if err := l.LoadRoot(); err != nil {
		fmt.Printf("Could not load root directory: %s\n", err)
		return 0, false
	}
	i, err := l.Search(name)
	if err != nil {
		fmt.Printf("Could not find a file named '%s'\n", name)
		return 0, false
	}
	return i, true
}

func repl(filename string, l *boot.Loader) {
	sb := l.Super()
	fmt.Println("Welcome to the minixboot explorer!")
	fmt.Printf("Attached to %s\n", filename)
	fmt.Printf("Magic number is 0x%x\n", sb.Magic)
	fmt.Printf("Inodes: %d, zones: %d\n", sb.Ninodes, sb.Nzones)
	fmt.Println("Enter '?' for a list of commands.")

	buf := bufio.NewReader(os.Stdin)

	for {
		// Print the prompt
		fmt.Printf("/> ")

		// Read another line of input from stdin
		read, err := buf.ReadString('\n')
		if err != nil {
			fmt.Print("\n")
			break
		}

		tokens := strings.Fields(read)
		if len(tokens) == 0 {
			continue
		}

		switch tokens[0] {
		case "?":
			fmt.Println("Commands:")
			fmt.Println("\t?\thelp")
			fmt.Println("\tcat\tshow file contents")
			fmt.Println("\tls\tshow directory listing")
			fmt.Println("\tstat\tshow a file's inode")
			fmt.Println("\tsuper\tshow the superblock")
		case "super":
			debug.PrintSuper(&sb)
		case "ls":
			entries, err := l.ReadDir()
			if err != nil {
				fmt.Printf("Could not read root directory: %s\n", err)
				continue
			}
			for _, dirent := range entries {
				inode, err := l.Stat(int(dirent.Inum) - 1)
				if err != nil {
					fmt.Printf("%-10s %8s %s (inode %d: %s)\n", "?", "?", dirent, dirent.Inum, err)
					continue
				}
				fmt.Printf("%s %8d %s\n", ModeString(&inode), inode.Size, dirent)
			}
		case "stat":
			if len(tokens) < 2 {
				fmt.Printf("Usage: stat filename\n")
				continue
			}
			i, ok := lookup(l, tokens[1])
			if !ok {
				continue
			}
			inode, err := l.Stat(i)
			if err != nil {
				fmt.Printf("Failed getting inode %d: %s\n", i+1, err)
				continue
			}
			fmt.Printf("Inode: %d\n", i+1)
			fmt.Printf("Mode: %s\n", ModeString(&inode))
			fmt.Printf("Nlinks: %d\n", inode.Nlinks)
			fmt.Printf("Size: %d\n", inode.Size)
			fmt.Printf("Uid: %d\n", inode.Uid)
			fmt.Printf("Gid: %d\n", inode.Gid)
			fmt.Printf("Mtime: %d\n", inode.Mtime)
			for idx, zoneNum := range inode.Zone {
				if zoneNum != 0 {
					fmt.Printf("Zone[%d]: %d\n", idx, zoneNum)
				}
			}
		case "cat":
			if len(tokens) < 2 {
				fmt.Printf("Usage: cat filename\n")
				continue
			}
			i, ok := lookup(l, tokens[1])
			if !ok {
				continue
			}
			if err := l.LoadFile(i); err != nil {
				fmt.Printf("Failed loading %s: %s\n", tokens[1], err)
				continue
			}
			fmt.Printf("%s\n", l.Bytes())
		default:
			fmt.Printf("Unknown command '%s'\n", tokens[0])
		}
	}
}

func main() {
	var filename string
	var partition int
	var slots int

	flag.StringVar(&filename, "file", "", "the image filename")
	flag.IntVar(&partition, "partition", 0, "the partition holding the filesystem (0 for the whole image)")
	flag.IntVar(&slots, "cache", 64, "the number of reads to cache (0 for none)")

	// Parse the flags from the commandline
	flag.Parse()

	if filename == "" {
		log.Fatalf("No image given, use -file")
	}

	dev, err := device.NewPartitionDevice(filename, partition)
	if err != nil {
		log.Fatalf("Could not open %s: %s", filename, err)
	}
	defer dev.Close()

	var disk common.Disk = dev
	if slots > 0 {
		disk, err = bcache.NewLRUCache(dev, slots)
		if err != nil {
			log.Fatalf("Could not create cache: %s", err)
		}
	}

	l := boot.NewLoader(disk, make([]byte, boot.MAX_LOAD_SIZE))
	if err := l.LoadSuper(); err != nil {
		log.Fatalf("Could not read superblock: %s", err)
	}

	repl(filename, l)
}
