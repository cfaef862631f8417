package abi

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl direction/size encoding, transcribed from asm-generic/ioctl.h.
// uinput's own request numbers (UI_SET_EVBIT and friends) are _IOW-style
// and are precomputed below rather than hardcoded, so they stay correct
// if the argument types they encode ever change size.
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocNone  = 0
	iocWrite = 1
)

func iocEncode(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift
}

func io(typ, nr uintptr) uintptr {
	return iocEncode(iocNone, typ, nr, 0)
}

func iow(typ, nr, size uintptr) uintptr {
	return iocEncode(iocWrite, typ, nr, size)
}

// uinput ioctl magic is 'U' (0x55); request numbers below match
// linux/uinput.h.
const uinputMagic = 'U'

var (
	UISetEvBit  = iow(uinputMagic, 100, unsafe.Sizeof(int(0)))
	UISetKeyBit = iow(uinputMagic, 101, unsafe.Sizeof(int(0)))
	UISetRelBit = iow(uinputMagic, 102, unsafe.Sizeof(int(0)))
	UISetAbsBit = iow(uinputMagic, 103, unsafe.Sizeof(int(0)))
	UISetMscBit = iow(uinputMagic, 110, unsafe.Sizeof(int(0)))

	UIDevCreate  = io(uinputMagic, 1)
	UIDevDestroy = io(uinputMagic, 2)

	// UIDevSetup takes a uinput_setup struct; UIDevSetupSize is the wire
	// size the ioctl request number is encoded with (must match the
	// byte count Setup.MarshalBinary produces).
	UIDevSetupSize = uintptr(UinputSetupSize)
	UIDevSetup     = iow(uinputMagic, 3, UIDevSetupSize)

	// UISetPhys takes a NUL-terminated string buffer of UinputMaxNameSize
	// bytes.
	UISetPhys = iow(uinputMagic, 108, unsafe.Sizeof(uintptr(0)))
)

// Ioctl issues a raw ioctl(2) against fd with req as the request number
// and ptr as the argument pointer (nil for no-argument requests such as
// UIDevCreate/UIDevDestroy).
func Ioctl(fd uintptr, req uintptr, ptr unsafe.Pointer) error {
	var errno unix.Errno

	_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(ptr))
	if errno != 0 {
		return errno
	}

	return nil
}

// IoctlInt issues an ioctl whose argument is an integer value rather
// than a pointer (UI_SET_EVBIT and the other UI_SET_*BIT calls pass the
// bit number directly as the third syscall argument, not by reference).
func IoctlInt(fd uintptr, req uintptr, val int) error {
	var errno unix.Errno

	_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(val))
	if errno != 0 {
		return errno
	}

	return nil
}
