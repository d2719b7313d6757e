//go:build !unix

package shairport

import "os"

// openPipe on platforms without FIFO semantics falls back to a plain
// open, which is enough to read a regular file during development.
func openPipe(path string) (*os.File, error) {
	return os.Open(path)
}
