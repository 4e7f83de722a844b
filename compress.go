// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzo1x

import (
	"fmt"

	"github.com/lzo1x/streaming/internal/fp"
	"github.com/lzo1x/streaming/internal/ring"
)

// Compressor is a streaming LZO1X-1 encoder. The zero value is not
// usable; construct one with NewCompressor. A Compressor must not be
// used concurrently from multiple goroutines.
type Compressor struct {
	opts    *CompressOptions
	history *ring.Ring
	table   *fp.Table

	// pending holds every ingested byte from base onward that has not
	// yet been committed to history: the still-open literal run plus
	// whatever lookahead has arrived but not yet been scanned.
	pending []byte
	base    uint64 // absolute position of pending[0]; equals the open literal run's start
	scan    uint64 // absolute position of the next byte to test for a match

	haveMatch     bool   // a match has been found and is awaiting its trailing literal's length
	matchLookback uint32
	matchLength   uint32

	lastLiteralLength uint32 // literal length attached to the most recently emitted command
	misses            uint

	out []byte // staged compressed bytes not yet delivered to the caller

	bytesRead uint64

	eof      bool
	finished bool
	err      error
}

// BytesRead returns the total number of uncompressed input bytes
// consumed across every Process call so far.
func (c *Compressor) BytesRead() uint64 {
	return c.bytesRead
}

// NewCompressor returns a ready-to-use Compressor. opts may be nil
// (behaves like DefaultCompressOptions()).
func NewCompressor(opts *CompressOptions) *Compressor {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	return &Compressor{
		opts:    opts,
		history: ring.New(historyCapacity),
		table:   fp.New(),
	}
}

// Reset returns c to a freshly constructed state so it can encode a new,
// unrelated stream without allocating a new history ring or fingerprint
// table. opts may be nil.
func (c *Compressor) Reset(opts *CompressOptions) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	c.opts = opts
	c.history.Clear()
	c.table.Clear()
	c.pending = c.pending[:0]
	c.base, c.scan = 0, 0
	c.haveMatch = false
	c.matchLookback, c.matchLength = 0, 0
	c.lastLiteralLength = 0
	c.misses = 0
	c.out = c.out[:0]
	c.bytesRead = 0
	c.eof, c.finished, c.err = false, false, nil
}

// Process feeds in to the compressor and copies as much compressed
// output as fits into out. A zero-length in signals end of input: the
// compressor flushes its final literal run and writes the end-of-stream
// sentinel, which may span several Process calls if out is small.
//
// consumed is always len(in) (input is copied into an internal buffer
// immediately; backpressure is expressed only through written and
// status). Call Process again with a zero-length in (and, if needed, a
// fresh out) until status is StatusEnd.
func (c *Compressor) Process(in, out []byte) (consumed, written int, status Status, err error) {
	if c.err != nil {
		return 0, 0, StatusError, c.err
	}
	if c.finished && len(c.out) == 0 {
		return 0, 0, StatusEnd, nil
	}

	if !c.finished {
		if len(in) == 0 {
			c.eof = true
		} else {
			c.pending = append(c.pending, in...)
			consumed = len(in)
			c.bytesRead += uint64(consumed)
		}

		if e := c.advance(); e != nil {
			c.err = e
			return consumed, c.drain(out), StatusError, e
		}
	}

	written = c.drain(out)
	if c.finished && len(c.out) == 0 {
		status = StatusEnd
	} else {
		status = StatusOK
	}
	return consumed, written, status, nil
}

func (c *Compressor) drain(out []byte) int {
	n := copy(out, c.out)
	c.out = c.out[n:]
	return n
}

func (c *Compressor) limit() uint64 {
	return c.base + uint64(len(c.pending))
}

func (c *Compressor) byteAt(pos uint64) byte {
	if pos < c.base {
		back := c.base - pos
		return c.history.At(c.history.Len() - int(back))
	}
	return c.pending[pos-c.base]
}

func (c *Compressor) matches4(a, b uint64) bool {
	for i := uint64(0); i < 4; i++ {
		if c.byteAt(a+i) != c.byteAt(b+i) {
			return false
		}
	}
	return true
}

// extendMatch reports how many bytes starting at candidate and scan
// agree, bounded by however much input has been ingested so far. It may
// read past candidate into the not-yet-committed pending region,
// including positions at or beyond scan itself: that self-overlap is
// exactly how LZO encodes run-length-style repeats as one long match.
func (c *Compressor) extendMatch(candidate, scan uint64) uint32 {
	limit := c.limit()
	length := uint64(0)
	for scan+length < limit && c.byteAt(candidate+length) == c.byteAt(scan+length) {
		length++
	}
	return uint32(length)
}

func fingerprint(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24
}

// commit moves bytes [c.base, upTo) into history and advances c.base to
// upTo. Called once a stretch of input has been fully accounted for by
// an emitted command (its literal bytes copied to output, its match
// bytes needing only to remain available for future lookback).
func (c *Compressor) commit(upTo uint64) {
	n := upTo - c.base
	c.history.Append(c.pending[:n])
	c.pending = c.pending[n:]
	c.base = upTo
}

// advance runs the match-finding loop as far as currently available
// input allows, emitting commands into c.out as literal runs are
// closed off by a newly found match or by end of input.
func (c *Compressor) advance() error {
	for {
		// A skip step may have carried scan past the end of ingested input.
		if c.scan+4 > c.limit() {
			if !c.eof {
				return nil
			}
			break
		}

		fpv := fingerprint(c.byteAt(c.scan), c.byteAt(c.scan+1), c.byteAt(c.scan+2), c.byteAt(c.scan+3))
		// Positions are stored offset by one: 0 is the table's "never
		// written" sentinel, so position 0 itself must be recoverable
		// from a raw value of 1, not 0.
		raw := c.table.LookupAndReplace(fpv, uint32(c.scan)+1)

		if raw != 0 {
			candidate := uint64(raw) - 1
			if candidate < c.scan && c.scan-candidate <= maxLookback && c.matches4(candidate, c.scan) {
				length := c.extendMatch(candidate, c.scan)
				if err := c.closeLiteralRun(uint32(c.scan - c.base)); err != nil {
					return err
				}
				c.commit(c.scan + uint64(length))
				c.haveMatch = true
				c.matchLookback = uint32(c.scan - candidate)
				c.matchLength = length
				c.scan += uint64(length)
				c.misses = 0
				continue
			}
		}

		c.registerMiss()
	}

	if err := c.closeLiteralRun(uint32(c.limit() - c.base)); err != nil {
		return err
	}
	c.commit(c.limit())
	if err := c.emitEndOfStream(); err != nil {
		return err
	}
	c.finished = true
	return nil
}

func (c *Compressor) registerMiss() {
	c.misses++
	step := c.misses >> c.opts.skipTrigger()
	if step < 1 {
		step = 1
	}
	c.scan += uint64(step)
}

// closeLiteralRun finalizes whatever command is currently open (either
// the very first literal, or a previously found match awaiting its
// trailing literal length) now that the literal run has a known length:
// pending[:literalLen] relative to c.base.
func (c *Compressor) closeLiteralRun(literalLen uint32) error {
	// Generously sized for the worst case: a command byte plus a
	// zero-filler run for an oversized copy length, a 16-bit distance
	// field, and a second run for an oversized literal length.
	bufSize := 16 + int(literalLen)/255 + int(c.matchLength)/255
	buf := make([]byte, bufSize)

	var m int
	if !c.haveMatch {
		m = Encode(buf, Command{FirstLiteral: true, LiteralLength: literalLen}, 0)
		if m == 0 && literalLen != 0 {
			return fmt.Errorf("lzo1x: %w: could not encode first literal", ErrEncoderFault)
		}
	} else {
		cmd := Command{Lookback: c.matchLookback, CopyLength: c.matchLength, LiteralLength: literalLen}
		m = Encode(buf, cmd, c.lastLiteralLength)
		if m == 0 {
			return fmt.Errorf("lzo1x: %w: could not encode history copy", ErrEncoderFault)
		}
	}
	c.out = append(c.out, buf[:m]...)
	c.out = append(c.out, c.pending[:literalLen]...)
	c.lastLiteralLength = literalLen
	return nil
}

func (c *Compressor) emitEndOfStream() error {
	buf := make([]byte, 3)
	n := Encode(buf, Command{EndOfStream: true}, 0)
	if n != 3 {
		return fmt.Errorf("lzo1x: %w: could not encode end of stream", ErrEncoderFault)
	}
	c.out = append(c.out, buf[:n]...)
	return nil
}
