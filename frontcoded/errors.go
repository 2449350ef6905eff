package frontcoded

import (
	"errors"
	"fmt"
)

// ErrInvalidRatio is returned when a Builder is constructed with ratio < 1.
var ErrInvalidRatio = errors.New("frontcoded: ratio must be >= 1")

// ErrNoSuchElement is returned by Cursor.Next/Previous when the cursor is
// already at the corresponding end of the list.
var ErrNoSuchElement = errors.New("frontcoded: cursor has no next/previous element")

// ErrIndexOutOfRange indicates a logical index outside [0, size) was passed
// to a read operation, or outside [0, size] was passed to Iterator.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("frontcoded: index %d out of range [0, %d)", e.Index, e.Size)
}

// ErrInvalidRange indicates an invalid offset/cap pair was passed to the
// fill-into-caller-buffer read path.
type ErrInvalidRange struct {
	Offset int
	Cap    int
	DstLen int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("frontcoded: invalid range offset=%d cap=%d dst_len=%d", e.Offset, e.Cap, e.DstLen)
}

// ErrDataCorruption indicates that rebuilding the block index, or decoding a
// varint, walked past the end of the encoded buffer.
type ErrDataCorruption struct {
	Pos    int64
	Reason string
}

func (e *ErrDataCorruption) Error() string {
	return fmt.Sprintf("frontcoded: data corruption at offset %d: %s", e.Pos, e.Reason)
}
