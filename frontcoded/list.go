package frontcoded

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// FrontCodedList is an immutable, front-coded, random-access list of
// fixed-width-element arrays. It is safe for concurrent reads; nothing
// about it may be mutated after Builder.Finish/Rebuild produce it.
type FrontCodedList[T Element] struct {
	n     uint32
	ratio uint32
	codec codec[T]
	buf   Buffer[T]
	index *blockIndex
}

// Size returns the number of arrays held by the list.
func (l *FrontCodedList[T]) Size() int { return int(l.n) }

// Buffer exposes the raw encoded element buffer backing the list, the
// only part of the list (besides Size and Ratio) that a serializer needs
// to persist; the block index is derived, not authoritative.
func (l *FrontCodedList[T]) Buffer() []T { return l.buf.Slice() }

// Ratio returns the block ratio the list was built with.
func (l *FrontCodedList[T]) Ratio() uint32 { return l.ratio }

func (l *FrontCodedList[T]) checkIndex(i int) error {
	if i < 0 || i >= int(l.n) {
		return &ErrIndexOutOfRange{Index: i, Size: int(l.n)}
	}
	return nil
}

// ArrayLength returns len(Get(i)) without materializing the array.
func (l *FrontCodedList[T]) ArrayLength(i int) (int, error) {
	if err := l.checkIndex(i); err != nil {
		return 0, err
	}
	return int(l.arrayLength(i)), nil
}

func (l *FrontCodedList[T]) arrayLength(i int) int64 {
	buf := l.buf.Slice()
	block := i / int(l.ratio)
	deltaCount := i % int(l.ratio)

	pos := l.index.at(block)
	length, n := l.codec.read(buf, pos)
	if deltaCount == 0 {
		return length
	}
	pos += int64(n) + length

	var suffixLen, common int64
	for j := 0; j < deltaCount; j++ {
		var sn, cn int
		suffixLen, sn = l.codec.read(buf, pos)
		common, cn = l.codec.read(buf, pos+int64(sn))
		pos += int64(sn) + int64(cn) + suffixLen
	}
	return suffixLen + common
}

// Get returns a freshly allocated copy of the i-th array.
func (l *FrontCodedList[T]) Get(i int) ([]T, error) {
	if err := l.checkIndex(i); err != nil {
		return nil, err
	}
	length := l.arrayLength(i)
	dst := make([]T, length)
	l.extract(i, dst, 0, int(length))
	return dst, nil
}

// GetInto fills dst[offset:offset+cap] with up to cap elements of the i-th
// array and returns a signed count following the package-wide convention:
// if cap >= array_length, it returns array_length (the number written);
// otherwise it returns cap - array_length, a negative number whose
// magnitude is the shortfall. So array_length(i) == r when r >= 0, and
// == cap - r when r < 0.
func (l *FrontCodedList[T]) GetInto(i int, dst []T, offset, cap int) (int, error) {
	if err := l.checkIndex(i); err != nil {
		return 0, err
	}
	if offset < 0 || cap < 0 || offset+cap > len(dst) {
		return 0, &ErrInvalidRange{Offset: offset, Cap: cap, DstLen: len(dst)}
	}
	length := l.extract(i, dst, offset, cap)
	if int(length) <= cap {
		return int(length), nil
	}
	return cap - int(length), nil
}

// extract reconstructs the i-th array, writing at most cap elements into
// dst[offset:], and returns the array's true length.
func (l *FrontCodedList[T]) extract(i int, dst []T, offset, cap int) int64 {
	length, _ := l.extractLocating(i, dst, offset, cap)
	return length
}

// extractLocating is extract, additionally returning the buffer offset
// immediately following the record for logical index i. It copies each
// element of the final array at most once, regardless of how many delta
// records separate it from its block anchor.
func (l *FrontCodedList[T]) extractLocating(i int, dst []T, offset, cap int) (length, endPos int64) {
	buf := l.buf.Slice()
	block := i / int(l.ratio)
	deltaCount := i % int(l.ratio)

	pos0 := l.index.at(block)
	anchorLen, n0 := l.codec.read(buf, pos0)
	if deltaCount == 0 {
		toCopy := min(int64(cap), anchorLen)
		if toCopy > 0 {
			copy(dst[offset:offset+int(toCopy)], buf[pos0+int64(n0):pos0+int64(n0)+toCopy])
		}
		return anchorLen, pos0 + int64(n0) + anchorLen
	}

	prevPayloadPos := pos0 + int64(n0)
	pos := prevPayloadPos + anchorLen

	written := int64(0)
	var suffixLen, common int64
	for j := 0; j < deltaCount; j++ {
		var sn, cn int
		suffixLen, sn = l.codec.read(buf, pos)
		common, cn = l.codec.read(buf, pos+int64(sn))
		payloadPos := pos + int64(sn) + int64(cn)

		effectiveCommon := min(common, int64(cap))
		if effectiveCommon > written {
			// written is below cap here, so it equals the previous record's
			// common length and the missing elements start at the beginning
			// of the previous record's payload.
			copy(dst[offset+int(written):offset+int(effectiveCommon)],
				buf[prevPayloadPos:prevPayloadPos+effectiveCommon-written])
		}
		written = effectiveCommon

		prevPayloadPos = payloadPos
		pos = payloadPos + suffixLen
	}

	if written < int64(cap) {
		toCopy := min(int64(cap)-written, suffixLen)
		if toCopy > 0 {
			copy(dst[offset+int(written):offset+int(written)+int(toCopy)],
				buf[prevPayloadPos:prevPayloadPos+toCopy])
		}
	}
	return suffixLen + common, pos
}

// Iterator returns a bidirectional cursor positioned so that its first
// call to Next returns Get(start). start must be in [0, Size()].
func (l *FrontCodedList[T]) Iterator(start int) (*Cursor[T], error) {
	return newCursor(l, start)
}

// ForEach calls fn with each array in order, stopping early if fn returns
// false. The array passed to fn is reused between calls and must not be
// retained past the call.
func (l *FrontCodedList[T]) ForEach(fn func(i int, array []T) bool) error {
	c, err := l.Iterator(0)
	if err != nil {
		return err
	}
	i := 0
	for c.HasNext() {
		a, err := c.nextNoCopy()
		if err != nil {
			return err
		}
		if !fn(i, a) {
			return nil
		}
		i++
	}
	return nil
}

// AnchorSet returns the set of logical indices that are block anchors
// (i % Ratio() == 0), as a roaring bitmap. Useful for callers that want to
// reason about where random access is cheapest.
func (l *FrontCodedList[T]) AnchorSet() *roaring.Bitmap {
	bm := roaring.New()
	for i := uint32(0); i < l.n; i += l.ratio {
		bm.Add(i)
	}
	return bm
}

// Equal reports whether l and other hold the same sequence of arrays,
// independent of ratio or physical buffer layout.
func (l *FrontCodedList[T]) Equal(other *FrontCodedList[T]) bool {
	if l.n != other.n {
		return false
	}
	for i := 0; i < int(l.n); i++ {
		a, err := l.Get(i)
		if err != nil {
			return false
		}
		b, err := other.Get(i)
		if err != nil {
			return false
		}
		if len(a) != len(b) {
			return false
		}
		for k := range a {
			if a[k] != b[k] {
				return false
			}
		}
	}
	return true
}

// String renders a bracketed, comma-separated debugging view of the list.
// The format is unspecified and may change.
func (l *FrontCodedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	_ = l.ForEach(func(i int, array []T) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for k, v := range array {
			if k > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte(']')
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
