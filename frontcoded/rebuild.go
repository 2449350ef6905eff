package frontcoded

import "fmt"

// Rebuild reconstructs a FrontCodedList from its three authoritative
// pieces of persisted state - element count, ratio and the encoded
// buffer - by walking the buffer linearly and recomputing the block
// index. The block index itself is never persisted.
//
// Rebuild returns an *ErrDataCorruption if the walk runs past the end of
// buf, which happens only for a malformed or truncated buffer; a buffer
// produced by Builder.Finish for the given (n, ratio) always rebuilds
// cleanly.
func Rebuild[T Element](buf Buffer[T], n uint32, ratio uint32, opts ...Option) (list *FrontCodedList[T], err error) {
	if ratio < 1 {
		return nil, ErrInvalidRatio
	}
	cfg := newConfig(opts)

	defer func() {
		if r := recover(); r != nil {
			list = nil
			err = &ErrDataCorruption{Pos: -1, Reason: fmt.Sprintf("buffer walk panicked: %v", r)}
		}
	}()

	codec := newCodec[T]()
	slice := buf.Slice()
	bufLen := int64(len(slice))

	blocks := (int64(n) + int64(ratio) - 1) / int64(ratio)
	idx := newBlockIndex(blocks)

	var pos int64
	skip := ratio - 1
	for i := uint32(0); i < n; i++ {
		if pos < 0 || pos >= bufLen {
			return nil, &ErrDataCorruption{Pos: pos, Reason: "record start past end of buffer"}
		}
		length, ln := codec.read(slice, pos)

		skip++
		if skip == ratio {
			skip = 0
			idx.set(int(i/ratio), pos)
			pos += int64(ln) + length
		} else {
			commonPos := pos + int64(ln)
			if commonPos < 0 || commonPos >= bufLen {
				return nil, &ErrDataCorruption{Pos: commonPos, Reason: "truncated delta record header"}
			}
			_, cn := codec.read(slice, commonPos)
			pos += int64(ln) + int64(cn) + length
		}
		if pos > bufLen {
			return nil, &ErrDataCorruption{Pos: pos, Reason: "record payload extends past end of buffer"}
		}
	}
	idx.trim()

	if cfg.logger != nil {
		cfg.logger.Debug("frontcoded: rebuilt block index", "arrays", n, "ratio", ratio, "blocks", idx.len())
	}

	return &FrontCodedList[T]{
		n:     n,
		ratio: ratio,
		codec: codec,
		buf:   buf,
		index: idx,
	}, nil
}
