//go:build unix

package shairport

import (
	"os"

	"golang.org/x/sys/unix"
)

// openPipe opens the metadata pipe without blocking on a missing
// writer. The non-blocking flag matters twice: open returns immediately
// instead of wedging until a sender attaches, and reads park in the
// runtime poller where Close can interrupt them.
func openPipe(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDONLY|unix.O_NONBLOCK, 0)
}
