package common

// Disk reads physical sectors. A read of count sectors starting at sector
// fills buf[:count*SECTOR_SIZE] or fails; there is no partial success.
type Disk interface {
	ReadSectors(sector, count int, buf []byte) error
}

// Console writes raw text to the boot console.
type Console interface {
	Puts(s string)
}

// Machine is everything the loader needs from the first-stage bootstrap.
type Machine interface {
	Disk
	Console
	// LoadSegment returns the memory region the image is assembled in.
	LoadSegment() []byte
	// RunProg transfers control to the loaded image. On real hardware it
	// never returns.
	RunProg(image []byte) error
}

// A BlockDevice is a Disk that owns an underlying resource.
type BlockDevice interface {
	Disk
	Close() error
}
