package frontcoded

// blockIndex holds the offset into the encoded buffer of every anchor
// record, one per block of `ratio` logical arrays. It is not persisted;
// Rebuild recomputes it from the buffer, count and ratio after load.
type blockIndex struct {
	offsets []int64
}

func newBlockIndex(capacity int64) *blockIndex {
	return &blockIndex{offsets: make([]int64, 0, capacity)}
}

func (bi *blockIndex) len() int {
	return len(bi.offsets)
}

func (bi *blockIndex) at(block int) int64 {
	return bi.offsets[block]
}

// set records offset as the anchor position for the given block, growing
// the index if block is the next slot to be filled.
func (bi *blockIndex) set(block int, offset int64) {
	if block < len(bi.offsets) {
		bi.offsets[block] = offset
		return
	}
	bi.offsets = append(bi.offsets, offset)
}

func (bi *blockIndex) trim() {
	if cap(bi.offsets) == len(bi.offsets) {
		return
	}
	trimmed := make([]int64, len(bi.offsets))
	copy(trimmed, bi.offsets)
	bi.offsets = trimmed
}
