package frontcoded

import (
	"iter"
	"slices"
)

// Builder consumes an ordered, finite sequence of arrays and emits a
// FrontCodedList. It keeps a copy of the previous array for prefix
// comparison: for every array it either writes a self-contained anchor
// record (every ratio-th array) or a delta record relative to the
// previous array.
type Builder[T Element] struct {
	ratio uint32
	codec codec[T]
	buf   *sliceBuffer[T]
	index *blockIndex
	count uint32
	prev  []T
	log   *Logger
}

// NewBuilder creates a Builder for the given block ratio. ratio must be
// >= 1; ratio == 1 means every record is an anchor.
func NewBuilder[T Element](ratio uint32, opts ...Option) (*Builder[T], error) {
	if ratio < 1 {
		return nil, ErrInvalidRatio
	}
	cfg := newConfig(opts)
	return &Builder[T]{
		ratio: ratio,
		codec: newCodec[T](),
		buf:   newSliceBuffer[T](64),
		index: newBlockIndex(4),
		log:   cfg.logger,
	}, nil
}

// Add appends the next array in logical order. The caller retains
// ownership of array; Builder copies what it needs to retain (the
// previous-array slot used for prefix comparison).
func (b *Builder[T]) Add(array []T) {
	i := b.count
	if i%b.ratio == 0 {
		block := int(i / b.ratio)
		off := b.buf.Len()
		b.index.set(block, off)
		b.writeAnchor(array)
	} else {
		common := commonPrefixLen(array, b.prev)
		b.writeDelta(array, common)
	}
	b.prev = append(b.prev[:0], array...)
	b.count++

	if b.log != nil && b.count%1_000_000 == 0 {
		b.log.Debug("frontcoded: building", "arrays", b.count, "bytes", len(b.buf.Slice()))
	}
}

// Finish freezes the builder into an immutable FrontCodedList. The
// builder must not be used afterwards.
func (b *Builder[T]) Finish() *FrontCodedList[T] {
	b.buf.trim()
	b.index.trim()

	if b.log != nil {
		b.log.Debug("frontcoded: finished build",
			"arrays", b.count, "ratio", b.ratio, "blocks", b.index.len(), "bytes", len(b.buf.Slice()))
	}

	return &FrontCodedList[T]{
		n:     b.count,
		ratio: b.ratio,
		codec: b.codec,
		buf:   b.buf,
		index: b.index,
	}
}

// writeAnchor writes a self-contained (len, elements...) record.
func (b *Builder[T]) writeAnchor(array []T) {
	n := int64(len(array))
	lenWidth := int64(b.codec.count(n))
	off := b.buf.reserve(lenWidth + n)
	buf := b.buf.Slice()
	w := b.codec.write(buf, off, n)
	copy(buf[off+int64(w):], array)
}

// writeDelta writes a (suffix_len, common_len, suffix elements...)
// record relative to the previous array.
func (b *Builder[T]) writeDelta(array []T, common int) {
	suffixLen := int64(len(array) - common)
	suffixWidth := int64(b.codec.count(suffixLen))
	commonWidth := int64(b.codec.count(int64(common)))

	off := b.buf.reserve(suffixWidth + commonWidth + suffixLen)
	buf := b.buf.Slice()
	p := off
	p += int64(b.codec.write(buf, p, suffixLen))
	p += int64(b.codec.write(buf, p, int64(common)))
	copy(buf[p:], array[common:])
}

// commonPrefixLen returns the length of the longest common prefix of a
// and b: the greedy maximum shared prefix between the pair, comparing up
// to the shorter length and stopping at the first mismatch.
func commonPrefixLen[T Element](a, b []T) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Build consumes a producing iterator over arrays and returns a frozen
// FrontCodedList.
func Build[T Element](arrays iter.Seq[[]T], ratio uint32, opts ...Option) (*FrontCodedList[T], error) {
	b, err := NewBuilder[T](ratio, opts...)
	if err != nil {
		return nil, err
	}
	for a := range arrays {
		b.Add(a)
	}
	return b.Finish(), nil
}

// BuildFromSlice builds a FrontCodedList from a finite, already-materialized
// collection of arrays.
func BuildFromSlice[T Element](arrays [][]T, ratio uint32, opts ...Option) (*FrontCodedList[T], error) {
	return Build(slices.Values(arrays), ratio, opts...)
}
