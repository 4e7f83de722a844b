// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lzo1x implements a streaming LZO1X-1 codec: a compressor and a
decompressor, each a state machine that consumes bounded input chunks
and produces bounded output chunks, carrying all cross-call context
(match history, fingerprint table, pending command, parser state)
internally so arbitrarily large streams never need to live in memory
at once.

# Compress

	c := lzo1x.NewCompressor(lzo1x.DefaultCompressOptions())
	for more input remains or output is still draining {
		consumed, written, status, err := c.Process(in, out)
		...
	}

Process returns status lzo1x.StatusEnd once the end-of-stream sentinel
has been fully written; a zero-length in signals EOF to the compressor
the same way it does to the decompressor below. err is non-nil only on
status lzo1x.StatusError, at which point the codec is poisoned and must
be discarded.

# Decompress

	d := lzo1x.NewDecompressor()
	for more compressed input remains or output is still draining {
		consumed, written, status, err := d.Process(in, out)
		...
	}

An in window of length zero signals EOF: the decompressor must then be
sitting exactly on the end-of-stream command with no unconsumed input,
or it reports ErrInputNotConsumed / ErrEndOfStreamNotFound.

# Scope

This package implements only LZO1X-1 (the fast, single-pass variant).
It does not attempt to reproduce any one reference encoder's exact
byte-for-byte output — the format admits multiple valid encodings of
the same input — and it does not support random-access decoding or any
container format (LZOP archive headers, checksums, filter chains). A
caller wanting those wraps this package; this package only implements
the wire-format state machines themselves.
*/
package lzo1x
