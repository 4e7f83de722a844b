// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

// Package fp implements the fixed-size fingerprint table the LZO1X-1
// compressor uses to find candidate matches: a lossy, open-addressed
// map from a 32-bit fingerprint of four input bytes to the most recent
// absolute position at which that fingerprint was observed.
//
// This generalizes the teacher's head3/hashHead3 hash-chain approach in
// sliding_window.go into the simpler single-slot, collision-overwriting
// table the streaming compressor uses: chains give better match quality
// but need O(window) auxiliary arrays to unwind on eviction, which a
// chunked/streaming compressor can't afford to keep rebuilding. A single
// slot per hash is wrong just often enough to need the caller's 4-byte
// equality check, never to need bookkeeping on evict.
package fp

const (
	// Bits is the number of bits of table index.
	Bits = 13
	// Size is the number of table entries (1<<Bits).
	Size = 1 << Bits
	// Magic is the multiplicative hash constant.
	Magic = 0x1824429D
)

// Table is the fingerprint-to-position map. The zero value is ready to use.
type Table struct {
	slots [Size]uint32
}

// New returns an empty Table.
func New() *Table { return &Table{} }

func hash(fingerprint uint32) uint32 {
	return (fingerprint * Magic) >> (32 - Bits)
}

// LookupAndReplace reads the entry for fingerprint, writes pos into it,
// and returns the previous value (0 if the slot was never written, since
// position 0 is never a valid match start).
func (t *Table) LookupAndReplace(fingerprint, pos uint32) (prev uint32) {
	idx := hash(fingerprint)
	prev = t.slots[idx]
	t.slots[idx] = pos
	return prev
}

// Clear zeroes every entry. Required between independent streams sharing
// a Table, and used by Compressor.Reset.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = 0
	}
}
