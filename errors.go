// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzo1x

import "errors"

// Sentinel errors surfaced by the compressor and decompressor. Every
// fatal path returns one of these, optionally wrapped with position
// context via fmt.Errorf's %w, so callers can still errors.Is against
// the sentinel.
var (
	// ErrOutOfMemory belongs to the format's error taxonomy; neither
	// codec in this package returns it.
	ErrOutOfMemory = errors.New("lzo1x: out of memory")
	// ErrNotCompressible is a reserved encoder error (unused by this
	// codec directly, but kept for callers wrapping NotCompressible
	// policies around us, per the format's error taxonomy).
	ErrNotCompressible = errors.New("lzo1x: not compressible")
	// ErrInputOverrun is returned when a decoded command references
	// input bytes past what has been supplied, with EOF signalled.
	ErrInputOverrun = errors.New("lzo1x: input overrun")
	// ErrOutputOverrun belongs to the format's error taxonomy; neither
	// codec in this package returns it, since both hold undelivered
	// output internally until the caller supplies room for it.
	ErrOutputOverrun = errors.New("lzo1x: output overrun")
	// ErrLookbehindOverrun is returned when a history copy's lookback
	// is greater than the amount of history decoded so far.
	ErrLookbehindOverrun = errors.New("lzo1x: lookbehind overrun")
	// ErrEndOfStreamNotFound is returned when EOF is signalled before
	// the end-of-stream command has been decoded.
	ErrEndOfStreamNotFound = errors.New("lzo1x: end of stream not found")
	// ErrInputNotConsumed is returned when bytes remain in the
	// decompressor's hold-over buffer after the end-of-stream command.
	ErrInputNotConsumed = errors.New("lzo1x: input not consumed after end of stream")
	// ErrEncoderFault is returned when the compressor's internal state
	// would require emitting a command that violates a wire-format
	// invariant. The compressor is poisoned afterward.
	ErrEncoderFault = errors.New("lzo1x: encoder fault")
	// ErrMalformedCommand is returned when a decoded command byte uses a
	// reserved bit pattern: a form-F byte whose zero distance field
	// doesn't carry the exact end-of-stream tuple (copy_length=3, ss=0). Distinct from ErrInputOverrun, which
	// means the header is merely incomplete, not invalid.
	ErrMalformedCommand = errors.New("lzo1x: malformed command")
)
