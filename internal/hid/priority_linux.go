//go:build linux

package hid

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const schedFIFO = 1

type schedParam struct {
	Priority int32
}

// raisePriority requests SCHED_FIFO scheduling for the calling OS
// thread (the polling ticker, after runtime.LockOSThread). This is
// best-effort: a process without CAP_SYS_NICE gets EPERM, which is
// logged and otherwise ignored — the ticker still paces correctly at
// the default scheduling class, just with less protection against
// being starved by competing load.
func raisePriority() error {
	param := schedParam{Priority: 50}

	_, _, errno := unix.Syscall(unix.SYS_SCHED_SETSCHEDULER, 0, uintptr(schedFIFO), uintptr(unsafe.Pointer(&param)))
	if errno != 0 {
		return errno
	}
	return nil
}
