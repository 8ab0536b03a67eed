package common

import (
	"errors"
	"testing"
)

func entry(name string, size int) Disk_dirent {
	b := make([]byte, size)
	copy(b, name)
	return Disk_dirent{Inum: 1, Name: b}
}

func TestHasName(test *testing.T) {
	cases := []struct {
		field string
		name  string
		match bool
	}{
		{"linux", "linux", true},
		{"linux", "linu", false},
		{"linu", "linux", false},
		{"linux", "Linux", false},
		{"linux", "", false},
		{"abcdefghijklmn", "abcdefghijklmn", true},
		{"abcdefghijklmn", "abcdefghijklmno", false},
	}
	for _, c := range cases {
		if got := entry(c.field, DIRSIZ).HasName(c.name); got != c.match {
			test.Errorf("%q.HasName(%q) = %v", c.field, c.name, got)
		}
	}
}

func TestDirentString(test *testing.T) {
	if s := entry("boot", DIRSIZ).String(); s != "boot" {
		test.Errorf("Expected boot, got %q", s)
	}
	if s := entry("abcdefghijklmn", DIRSIZ).String(); s != "abcdefghijklmn" {
		test.Errorf("Expected the full field, got %q", s)
	}
}

func TestInodeType(test *testing.T) {
	dir := Disk_Inode{Mode: I_DIRECTORY | 0755}
	reg := Disk_Inode{Mode: I_REGULAR | 0644}
	if !dir.IsDirectory() || dir.IsRegular() {
		test.Errorf("Directory mode misclassified")
	}
	if !reg.IsRegular() || reg.IsDirectory() {
		test.Errorf("Regular mode misclassified")
	}
}

func TestDiskError(test *testing.T) {
	cause := errors.New("drive not ready")
	var err error = &DiskError{Sector: 4, Count: 2, Err: cause}
	if !errors.Is(err, EIO) {
		test.Errorf("DiskError does not match EIO")
	}
	if !errors.Is(err, cause) {
		test.Errorf("DiskError does not unwrap to its cause")
	}
	if errors.Is(err, ENOENT) {
		test.Errorf("DiskError matches ENOENT")
	}
}
