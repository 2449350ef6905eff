//go:build amd64 || arm64

// Package persistence provides the on-disk binary envelope for a
// frontcoded.FrontCodedList.
//
// PLATFORM REQUIREMENTS:
//   - Architecture: amd64 or arm64 only
//   - Endianness: little-endian (native on x86_64 and ARM64)
//
// Save/Load reinterpret the encoded element buffer as raw bytes via
// unsafe.Slice rather than encoding element-by-element; see safety.go for
// the runtime platform checks that back that assumption.
package persistence
