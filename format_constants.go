// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzo1x

// LZO1X-1 format constants: history-copy offset and length bounds per
// form (named A-F per the wire-format table), and the fingerprint
// table's hash parameters.

// Match offset bounds (max lookback distance for each form family).
const (
	maxOffsetM1 = 0x0400 // forms A: lookback <= 1024
	maxOffsetM2 = 0x0800 // forms C/D: lookback <= 2048
	maxOffsetM3 = 0x4000 // form E: lookback <= 16384
	maxOffsetM4 = 0xbfff // form F: lookback <= 49151

	maxLookback = maxOffsetM4

	// shortMatchBaseOffset is the base distance of form B (lookback 2049..3072).
	shortMatchBaseOffset = 0x0800
)

// Match length bounds per form family.
const (
	minCopyLen = 2  // forms A
	maxLenCD   = 8  // forms C/D combined (copy_length 3..8)
	maxLenM3   = 33 // form E inline max (copy_length 2 + 31)
	maxLenM4   = 9  // form F inline max (copy_length 2 + 7)

	// minMatchLen is the minimum match length this compressor's own
	// match finder ever accepts; it never emits the length-2/3 forms
	// A and B (those exist only so the decoder can read streams from
	// other encoders). Guaranteed by construction: any match accepted
	// via the fingerprint table has already passed a full 4-byte
	// equality check.
	minMatchLen = 4
)

// Instruction byte markers (high nibble dispatch) for the history-copy forms.
const (
	markerCD = 0x40 // forms C/D (teacher's "M2"): inst >= 0x40
	markerE  = 0x20 // form E (teacher's "M3"): inst >= 0x20
	markerF  = 0x10 // form F (teacher's "M4"): inst >= 0x10
)

// Run-encoding masks: the maximum value representable by a form's
// inline length field before falling back to the zero-filler + remainder
// run encoding (see command.go). mask+2 (or +3 for literals) is the
// concrete maximum inline length.
const (
	runMaskLiteral = 15 // long-literal form, width_bits=4
	runMaskFormE   = 31 // form E length field, width_bits=5
	runMaskFormF   = 7  // form F length field, width_bits=3
)

// Fingerprint table hash parameters (see internal/fp).
const (
	fpBits  = 13
	fpSize  = 1 << fpBits
	fpMagic = 0x1824429D
)

// historyCapacity is the size of the sliding window of raw bytes each
// codec must keep addressable for lookback: the maximum lookback
// distance plus 4 bytes of slack for in-flight match extension.
const historyCapacity = maxLookback + 4

// endOfStream is the exact three-byte sentinel terminating every stream.
var endOfStream = [3]byte{0x11, 0x00, 0x00}
