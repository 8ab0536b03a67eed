package boot

import (
	"github.com/jnwhiteh/minixboot/common"
)

// LoadProg runs the boot sequence up to execution transfer: it reads the
// superblock, loads the root directory, finds name in it and loads that file
// into the load segment. The console only hears about a successful match.
// If name is not in the root directory nothing else is done and ENOENT is
// returned.
func (l *Loader) LoadProg(con common.Console, name string) error {
	if err := l.LoadSuper(); err != nil {
		return err
	}

	if err := l.LoadRoot(); err != nil {
		return err
	}

	i, err := l.Search(name)
	if err != nil {
		l.setState(NoMatch)
		return err
	}
	l.setState(EntryMatched)
	con.Puts(name + " found\r\n")

	if err := l.LoadFile(i); err != nil {
		return err
	}
	l.setState(TargetLoaded)
	return nil
}

// Boot loads name from the filesystem on m and hands the loaded image to
// m.RunProg. The first error stops the sequence; nothing is retried.
func Boot(m common.Machine, name string) error {
	return BootLoader(NewLoader(m, m.LoadSegment()), m, name)
}

// BootLoader is Boot with a caller-supplied loader, so the disk it reads
// from and its debug setting can differ from the machine's.
func BootLoader(l *Loader, m common.Machine, name string) error {
	if err := l.LoadProg(m, name); err != nil {
		return err
	}
	l.setState(ExecutionTransferred)
	return m.RunProg(l.Bytes())
}
