// Package frontcoded provides an immutable, compact, random-access list of
// arrays of a fixed primitive element type, compressed with front coding.
//
// Arrays are stored in a single contiguous element buffer. Every ratio-th
// array is stored verbatim as an anchor record; the arrays in between are
// stored as a delta against their immediate predecessor: the length of the
// shared prefix plus the differing suffix. A small block index of anchor
// offsets gives O(1) access to the start of any block; reconstructing an
// arbitrary array costs one block-index lookup plus a walk of at most
// ratio-1 delta records.
//
// The list is built once from a producer of arrays via Builder and is
// immutable afterwards; concurrent reads require no synchronization. A
// Cursor gives amortized O(1)-per-element forward scanning while still
// allowing random repositioning.
package frontcoded
