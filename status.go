// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzo1x

// Status reports the outcome of one Process call.
type Status int

const (
	// StatusOK means Process returned because in or out was exhausted;
	// more bytes of one or the other are needed before progress
	// continues, or there is more buffered output still draining.
	StatusOK Status = iota
	// StatusEnd means the end-of-stream command has been fully written
	// (compressor) or consumed (decompressor). No further Process calls
	// are required, though calling with a zero-length in is harmless.
	StatusEnd
	// StatusError means err is non-nil and the codec is poisoned: every
	// subsequent Process call on it returns the same error immediately.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEnd:
		return "end"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
