package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jnwhiteh/minixboot/bcache"
	"github.com/jnwhiteh/minixboot/boot"
	"github.com/jnwhiteh/minixboot/common"
	"github.com/jnwhiteh/minixboot/device"
)

// This command runs the second stage boot loader against a disk image: it
// finds the named file in the root directory of the MINIX filesystem and
// loads it into a load segment. Instead of jumping to the image, it writes
// the loaded bytes to a file.

// hostMachine plays the part of the first stage bootstrap.
type hostMachine struct {
	common.Disk
	seg []byte
	out string
}

func (m *hostMachine) Puts(s string) {
	os.Stdout.WriteString(s)
}

func (m *hostMachine) LoadSegment() []byte {
	return m.seg
}

func (m *hostMachine) RunProg(image []byte) error {
	if m.out == "" {
		fmt.Printf("Loaded %d bytes\n", len(image))
		return nil
	}
	if err := os.WriteFile(m.out, image, 0644); err != nil {
		return err
	}
	fmt.Printf("Wrote %d bytes to %s\n", len(image), m.out)
	return nil
}

func main() {
	var image string
	var partition int
	var name string
	var segsize int
	var out string
	var slots int
	var showdebug bool
	var help bool

	// Define commandline flags
	flag.StringVar(&image, "image", "", "the disk image to boot from")
	flag.IntVar(&partition, "partition", 0, "the partition holding the filesystem (0 for the whole image)")
	flag.StringVar(&name, "name", "linux", "the file to load from the root directory")
	flag.IntVar(&segsize, "segsize", 64*1024, "the size of the load segment (in bytes)")
	flag.StringVar(&out, "out", "", "where to write the loaded image")
	flag.IntVar(&slots, "cache", 0, "the number of reads to cache (0 for none)")
	flag.BoolVar(&showdebug, "debug", false, "trace disk reads and boot states")
	flag.BoolVar(&help, "help", false, "display the usage for this command")

	// Parse the flags from the commandline
	flag.Parse()

	if help || image == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -image file [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	dev, err := device.NewPartitionDevice(image, partition)
	if err != nil {
		log.Fatalf("Could not open %s: %s", image, err)
	}
	defer dev.Close()

	var disk common.Disk = dev
	if slots > 0 {
		disk, err = bcache.NewLRUCache(dev, slots)
		if err != nil {
			log.Fatalf("Could not create cache: %s", err)
		}
	}

	m := &hostMachine{disk, make([]byte, segsize), out}
	l := boot.NewLoader(m, m.LoadSegment())
	l.SetDebug(showdebug)

	if err := boot.BootLoader(l, m, name); err != nil {
		log.Fatalf("Boot failed in state %s: %s", l.State(), err)
	}
}
