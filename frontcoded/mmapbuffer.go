package frontcoded

import (
	"fmt"
	"unsafe"

	"github.com/fcoded/frontcoded/internal/mmap"
)

// mmapBuffer is a read-only Buffer backed by a memory-mapped blob. The
// mapped bytes are reinterpreted as []T without copying, following the
// same unsafe-pointer-cast technique the teacher's columnar vector store
// uses to avoid deserialization overhead on load.
type mmapBuffer[T Element] struct {
	m    *mmap.Mapping
	data []T
}

// openMmapBuffer maps path and exposes its bytes as a []T of n elements
// starting at byteOffset. The caller must Close the returned buffer when
// done; accessing Slice() after Close is undefined behavior.
func openMmapBuffer[T Element](path string, byteOffset int64, n int64) (*mmapBuffer[T], error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	var zero T
	width := int64(unsafe.Sizeof(zero))
	need := byteOffset + n*width
	if int64(m.Size()) < need {
		_ = m.Close()
		return nil, fmt.Errorf("frontcoded: mmap buffer too small: have %d bytes, need %d", m.Size(), need)
	}

	raw := m.Bytes()[byteOffset:need]
	var data []T
	if n > 0 {
		ptr := unsafe.Pointer(&raw[0]) //nolint:gosec // required to reinterpret the mapped bytes as []T
		data = unsafe.Slice((*T)(ptr), n)
	}

	return &mmapBuffer[T]{m: m, data: data}, nil
}

func (b *mmapBuffer[T]) Slice() []T { return b.data }

func (b *mmapBuffer[T]) Len() int64 { return int64(len(b.data)) }

// Close unmaps the underlying file. Safe to call multiple times.
func (b *mmapBuffer[T]) Close() error {
	if b.m == nil {
		return nil
	}
	return b.m.Close()
}
