//go:build linux

package hid

import "golang.org/x/sys/unix"

// openFlags matches spec.md §6: O_WRONLY | O_NONBLOCK.
const openFlags = unix.O_WRONLY | unix.O_NONBLOCK

func defaultBackend() Backend {
	return NewLinuxBackend()
}
