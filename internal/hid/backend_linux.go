//go:build linux

package hid

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"rocinante-hid/internal/abi"
)

// linuxBackend is the real Backend: raw syscalls against /dev/uinput.
type linuxBackend struct{}

// NewLinuxBackend returns the production Backend used outside tests.
func NewLinuxBackend() Backend { return linuxBackend{} }

func (linuxBackend) Open(path string, flags int) (uintptr, error) {
	fd, err := unix.Open(path, flags, 0)
	if err != nil {
		return 0, err
	}
	return uintptr(fd), nil
}

func (linuxBackend) IoctlInt(fd uintptr, req uintptr, val int) error {
	return abi.IoctlInt(fd, req, val)
}

func (linuxBackend) IoctlBytes(fd uintptr, req uintptr, data []byte) error {
	if len(data) == 0 {
		return abi.Ioctl(fd, req, nil)
	}
	return abi.Ioctl(fd, req, unsafe.Pointer(&data[0]))
}

func (linuxBackend) IoctlNoArg(fd uintptr, req uintptr) error {
	return abi.Ioctl(fd, req, nil)
}

func (linuxBackend) Write(fd uintptr, buf []byte) (int, error) {
	return unix.Write(int(fd), buf)
}

func (linuxBackend) Close(fd uintptr) error {
	return unix.Close(int(fd))
}
