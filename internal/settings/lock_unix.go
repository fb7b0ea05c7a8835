//go:build unix

package settings

import (
	"os"

	"golang.org/x/sys/unix"
)

// Advisory locks keep two running instances from interleaving a read with a
// write of the same file.
func lockFile(f *os.File, exclusive bool) error {
	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}
	return unix.Flock(int(f.Fd()), how)
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
