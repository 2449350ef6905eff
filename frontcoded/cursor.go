package frontcoded

// Cursor is a bidirectional positional iterator over a FrontCodedList. It
// keeps a live scratch buffer holding the most recently produced array so
// that a forward scan costs one varint read plus one contiguous copy per
// record instead of a full block-anchor extract every time.
//
// A Cursor is not safe for concurrent use; it owns mutable position and
// scratch state. Its lifetime is bounded by the list it was created from.
type Cursor[T Element] struct {
	list    *FrontCodedList[T]
	i       int
	pos     int64
	scratch []T
	length  int
	inSync  bool
}

func newCursor[T Element](l *FrontCodedList[T], start int) (*Cursor[T], error) {
	n := l.Size()
	if start < 0 || start > n {
		return nil, &ErrIndexOutOfRange{Index: start, Size: n}
	}
	c := &Cursor[T]{list: l}
	if start == 0 || start == n {
		c.i = start
		return c, nil
	}

	ratio := int(l.ratio)
	block := start / ratio
	rem := start % ratio
	c.pos = l.index.at(block)
	c.i = start - rem
	for k := 0; k < rem; k++ {
		if _, err := c.nextNoCopy(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// HasNext reports whether Next can be called.
func (c *Cursor[T]) HasNext() bool { return c.i < c.list.Size() }

// HasPrevious reports whether Previous can be called.
func (c *Cursor[T]) HasPrevious() bool { return c.i > 0 }

// NextIndex returns the logical index Next would return.
func (c *Cursor[T]) NextIndex() int { return c.i }

// PreviousIndex returns the logical index Previous would return.
func (c *Cursor[T]) PreviousIndex() int { return c.i - 1 }

// Next advances the cursor and returns a freshly owned copy of the next
// array, or ErrNoSuchElement if the cursor is already at the end.
func (c *Cursor[T]) Next() ([]T, error) {
	a, err := c.nextNoCopy()
	if err != nil {
		return nil, err
	}
	out := make([]T, len(a))
	copy(out, a)
	return out, nil
}

// nextNoCopy advances the cursor and returns the internal scratch slice
// directly; callers that retain it past their next call must copy it
// themselves. Used internally by ForEach and String.
func (c *Cursor[T]) nextNoCopy() ([]T, error) {
	if !c.HasNext() {
		return nil, ErrNoSuchElement
	}

	ratio := int(c.list.ratio)
	codec := c.list.codec
	buf := c.list.buf.Slice()

	switch {
	case c.i%ratio == 0:
		pos := c.list.index.at(c.i / ratio)
		length, n := codec.read(buf, pos)
		c.ensureScratch(int(length))
		if length > 0 {
			copy(c.scratch[:length], buf[pos+int64(n):pos+int64(n)+length])
		}
		c.length = int(length)
		c.pos = pos + int64(n) + length
		c.inSync = true

	case c.inSync:
		suffixLen, sn := codec.read(buf, c.pos)
		common, cn := codec.read(buf, c.pos+int64(sn))
		payloadPos := c.pos + int64(sn) + int64(cn)
		total := int(common + suffixLen)
		c.ensureScratch(total)
		if suffixLen > 0 {
			copy(c.scratch[common:common+suffixLen], buf[payloadPos:payloadPos+suffixLen])
		}
		c.length = total
		c.pos = payloadPos + suffixLen

	default:
		length, endPos := c.list.extractLocating(c.i, nil, 0, 0)
		c.ensureScratch(int(length))
		c.list.extract(c.i, c.scratch, 0, int(length))
		c.length = int(length)
		c.pos = endPos
		c.inSync = true
	}

	c.i++
	return c.scratch[:c.length], nil
}

// Previous moves the cursor back and returns a freshly owned copy of the
// preceding array via the list's random-access path. It clears in_sync:
// pos no longer describes a record the scratch is derived from, so the
// next forward Next must resynchronise via the generic extract branch.
func (c *Cursor[T]) Previous() ([]T, error) {
	if !c.HasPrevious() {
		return nil, ErrNoSuchElement
	}
	c.inSync = false
	c.i--
	return c.list.Get(c.i)
}

// ensureScratch grows scratch to at least n elements, doubling capacity
// geometrically so a forward scan over similarly-sized arrays amortizes
// to O(1) reallocation.
func (c *Cursor[T]) ensureScratch(n int) {
	if cap(c.scratch) >= n {
		c.scratch = c.scratch[:n]
		return
	}
	newCap := cap(c.scratch)
	if newCap == 0 {
		newCap = 16
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]T, n, newCap)
	copy(grown, c.scratch)
	c.scratch = grown
}
