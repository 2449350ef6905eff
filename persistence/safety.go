package persistence

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"
)

var (
	// ErrUnsupportedArchitecture is returned when running on an unsupported CPU architecture.
	ErrUnsupportedArchitecture = errors.New("persistence: unsupported architecture, only amd64 and arm64 are supported")

	// ErrBigEndian is returned when running on a big-endian system.
	ErrBigEndian = errors.New("persistence: big-endian systems are not supported")
)

// init performs startup validation of platform requirements: the
// unsafe element<->byte reinterpretation in binary.go assumes a
// little-endian amd64/arm64 host.
func init() {
	if err := validatePlatform(); err != nil {
		panic(fmt.Sprintf("frontcoded/persistence: %v", err))
	}
}

func validatePlatform() error {
	arch := runtime.GOARCH
	if arch != "amd64" && arch != "arm64" {
		return fmt.Errorf("%w: %s", ErrUnsupportedArchitecture, arch)
	}
	if !isLittleEndian() {
		return ErrBigEndian
	}
	return nil
}

func isLittleEndian() bool {
	var test uint16 = 0x0001
	firstByte := *(*byte)(unsafe.Pointer(&test))
	return firstByte == 1
}

// PlatformInfo returns a one-line description of the current platform,
// useful in diagnostics when Save/Load report a platform error.
func PlatformInfo() string {
	endian := "little-endian"
	if !isLittleEndian() {
		endian = "big-endian"
	}
	return fmt.Sprintf("GOOS=%s GOARCH=%s endianness=%s", runtime.GOOS, runtime.GOARCH, endian)
}
