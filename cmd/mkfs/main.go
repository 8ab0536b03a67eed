package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jnwhiteh/minixboot/common"
	"github.com/jnwhiteh/minixboot/mkfs"
)

// This command creates a MINIX V1 filesystem image whose root directory holds
// the files named on the commandline, e.g. a kernel for minixboot to load.

func ferr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func main() {
	var inode_count int
	var block_count int
	var long_names bool
	var help bool
	var filename string

	// Define commandline flags
	flag.IntVar(&inode_count, "inodecount", 0, "the number of inodes in the filesystem")
	flag.IntVar(&block_count, "size", 0, "the size of the filesystem (in blocks, 0 to fit the files)")
	flag.BoolVar(&long_names, "long", false, "use 30 character file names")
	flag.BoolVar(&help, "help", false, "display the usage for this command")
	flag.StringVar(&filename, "file", "", "the image filename")

	// Parse the flags from the commandline
	flag.Parse()

	// Check to ensure a filename is given on the commandline
	if len(filename) <= 0 {
		ferr("Must specify a filename\n")
		help = true
	}

	if help {
		ferr("Usage: %s -file image [files...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := mkfs.Options{Ninodes: inode_count, Blocks: block_count}
	if long_names {
		opts.Magic = common.SUPER_MAGIC2
	}

	var files []mkfs.File
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Could not read %s: %s", path, err)
		}
		files = append(files, mkfs.File{Name: filepath.Base(path), Data: data})
	}

	img, err := mkfs.Format(opts, files...)
	if err != nil {
		log.Fatalf("Could not create filesystem: %s", err)
	}
	if err := os.WriteFile(filename, img, 0644); err != nil {
		log.Fatalf("Error creating image file '%s': %s", filename, err)
	}

	fmt.Printf("Blocks: %d\n", len(img)/common.BLOCK_SIZE)
	for _, f := range files {
		fmt.Printf("%-30s %8d\n", f.Name, len(f.Data))
	}
}
