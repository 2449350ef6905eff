//go:build amd64 || arm64

package persistence

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"

	"github.com/fcoded/frontcoded/frontcoded"
)

// Save writes list to w as a Header followed by its (optionally
// compressed) encoded buffer. Only Count, Ratio and the buffer are
// persisted; the block index is recomputed by Load via
// frontcoded.Rebuild.
func Save[T frontcoded.Element](w io.Writer, list *frontcoded.FrontCodedList[T], opts ...Option) error {
	cfg := newConfig(opts)

	elems := list.Buffer()
	raw, err := elementsToBytes(elems)
	if err != nil {
		return err
	}

	stored := raw
	flags := uint8(0)
	if cfg.codec != CodecNone {
		var applied bool
		stored, applied, err = compress(raw, cfg.codec)
		if err != nil {
			return err
		}
		if applied {
			switch cfg.codec {
			case CodecZSTD:
				flags |= FlagCompressedZstd
			case CodecLZ4:
				flags |= FlagCompressedLZ4
			}
		}
	}

	header := Header{
		Magic:     MagicNumber,
		Version:   Version,
		Width:     uint8(frontcoded.WidthOf[T]()),
		Flags:     flags,
		Count:     uint32(list.Size()),
		Ratio:     list.Ratio(),
		BufferLen: uint32(len(elems)),
		StoredLen: uint32(len(stored)),
		Checksum:  CalculateChecksum(stored),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	if cfg.logger != nil {
		cfg.logger.Debug("persistence: saved list",
			"arrays", header.Count, "ratio", header.Ratio, "bytes", header.StoredLen, "codec", cfg.codec)
	}

	_, err = w.Write(stored)
	return err
}

// Load reads a Header and buffer section written by Save and rebuilds a
// FrontCodedList[T]. It returns ErrInvalidMagic/ErrInvalidVersion/
// ErrInvalidWidth for a header that doesn't match, a
// *ChecksumMismatchError for a corrupted buffer section, and whatever
// *frontcoded.ErrDataCorruption Rebuild reports for a buffer that
// rebuilds to something inconsistent with the header's Count/Ratio.
func Load[T frontcoded.Element](r io.Reader, opts ...Option) (*frontcoded.FrontCodedList[T], error) {
	cfg := newConfig(opts)

	var header Header
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}
	if frontcoded.Width(header.Width) != frontcoded.WidthOf[T]() {
		return nil, ErrInvalidWidth
	}

	stored := make([]byte, header.StoredLen)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, err
	}

	if actual := CalculateChecksum(stored); actual != header.Checksum {
		if cfg.logger != nil {
			cfg.logger.Warn("persistence: checksum mismatch", "expected", header.Checksum, "actual", actual)
		}
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
	}

	var zero T
	width := int(unsafe.Sizeof(zero))
	var codec Codec
	switch {
	case header.Flags&FlagCompressedZstd != 0:
		codec = CodecZSTD
	case header.Flags&FlagCompressedLZ4 != 0:
		codec = CodecLZ4
	default:
		codec = CodecNone
	}

	raw, err := decompress(stored, codec, int(header.BufferLen)*width)
	if err != nil {
		return nil, err
	}

	elems, err := bytesToElements[T](raw)
	if err != nil {
		return nil, err
	}
	if len(elems) != int(header.BufferLen) {
		return nil, &frontcoded.ErrDataCorruption{Pos: int64(len(elems)), Reason: "decoded buffer length does not match header"}
	}

	list, err := frontcoded.Rebuild[T](frontcoded.WrapBuffer(elems), header.Count, header.Ratio)
	if err != nil {
		return nil, err
	}

	if cfg.logger != nil {
		cfg.logger.Debug("persistence: loaded list", "arrays", header.Count, "ratio", header.Ratio, "codec", codec)
	}
	return list, nil
}

// elementsToBytes reinterprets elems as a byte slice without copying,
// following the same direct-memory-conversion technique the teacher's
// binary writer uses for float32/uint32/uint64 slices.
func elementsToBytes[T frontcoded.Element](elems []T) ([]byte, error) {
	if len(elems) == 0 {
		return nil, nil
	}
	if err := validatePlatform(); err != nil {
		return nil, err
	}
	var zero T
	width := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&elems[0])), len(elems)*width), nil
}

// bytesToElements reinterprets b as a []T without copying. b must be
// exactly a multiple of sizeof(T) long.
func bytesToElements[T frontcoded.Element](b []byte) ([]T, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if err := validatePlatform(); err != nil {
		return nil, err
	}
	var zero T
	width := int(unsafe.Sizeof(zero))
	if len(b)%width != 0 {
		return nil, fmt.Errorf("persistence: buffer length %d is not a multiple of element width %d", len(b), width)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/width), nil
}
