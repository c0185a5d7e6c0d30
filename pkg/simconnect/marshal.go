package simconnect

import (
	"bytes"
	"fmt"
	"syscall"
)

// cString converts s to a NUL-terminated byte string. A string that already
// contains a NUL byte would be silently truncated by the SDK, so it panics.
func cString(s string) *byte {
	p, err := syscall.BytePtrFromString(s)
	if err != nil {
		panic(fmt.Sprintf("simconnect: string argument %q contains a NUL byte", s))
	}
	return p
}

// cBool converts b to a Win32 BOOL.
func cBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// cxxBool converts b to a one byte C++ bool.
func cxxBool(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// BytesToString returns the NUL-terminated string stored in a fixed size
// field such as RecvSystemState.SzString.
func BytesToString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
