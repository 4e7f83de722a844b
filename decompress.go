// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzo1x

import "github.com/lzo1x/streaming/internal/ring"

type decPhase int

const (
	decNeedCommand decPhase = iota
	decCopyHistory
	decCopyLiteral
	decFlushing
)

// Decompressor is a streaming LZO1X-1 decoder. The zero value is not
// usable; construct one with NewDecompressor. A Decompressor must not
// be used concurrently from multiple goroutines.
type Decompressor struct {
	history *ring.Ring

	in []byte // unconsumed input bytes, held across Process calls

	phase    decPhase
	remaining int
	distance  uint32 // valid when phase == decCopyHistory
	literalAfter uint32 // literal length to run once the current history copy completes
	curLiteralLen uint32 // literal length of the phase==decCopyLiteral run in progress

	lastLiteralLength uint32
	firstCommand      bool

	one          [1]byte // scratch source for history.ShiftCopy
	bytesWritten uint64

	finished bool
	err      error
}

// BytesWritten returns the total number of decompressed bytes delivered
// to callers across every Process call so far.
func (d *Decompressor) BytesWritten() uint64 {
	return d.bytesWritten
}

// NewDecompressor returns a ready-to-use Decompressor.
func NewDecompressor() *Decompressor {
	return &Decompressor{
		history:      ring.New(historyCapacity),
		firstCommand: true,
	}
}

// Reset returns d to a freshly constructed state so it can decode a new,
// unrelated stream without allocating a new history ring.
func (d *Decompressor) Reset() {
	d.history.Clear()
	d.in = d.in[:0]
	d.phase = decNeedCommand
	d.remaining = 0
	d.distance = 0
	d.literalAfter = 0
	d.curLiteralLen = 0
	d.lastLiteralLength = 0
	d.firstCommand = true
	d.bytesWritten = 0
	d.finished = false
	d.err = nil
}

// Process feeds in to the decompressor and copies as much decompressed
// output as fits into out. A zero-length in signals end of input: the
// decompressor must at that point be sitting exactly on the
// end-of-stream command with no unconsumed input, or it reports
// ErrEndOfStreamNotFound / ErrInputNotConsumed.
//
// consumed is always len(in). Call Process again with a fresh out (and,
// once no more compressed bytes remain, a zero-length in) until status
// is StatusEnd.
func (d *Decompressor) Process(in, out []byte) (consumed, written int, status Status, err error) {
	if d.err != nil {
		return 0, 0, StatusError, d.err
	}
	if d.finished {
		return 0, 0, StatusEnd, nil
	}

	eof := len(in) == 0
	if !eof {
		d.in = append(d.in, in...)
	}
	consumed = len(in)

	outPos := 0
	for {
		switch d.phase {
		case decCopyHistory, decCopyLiteral:
			for d.remaining > 0 {
				if outPos >= len(out) {
					d.bytesWritten += uint64(outPos)
					return consumed, outPos, StatusOK, nil
				}
				var b byte
				if d.phase == decCopyHistory {
					if d.history.Len() < int(d.distance) {
						d.err = ErrLookbehindOverrun
						d.bytesWritten += uint64(outPos)
						return consumed, outPos, StatusError, d.err
					}
					b = d.history.At(d.history.Len() - int(d.distance))
				} else {
					if len(d.in) == 0 {
						if eof {
							d.err = ErrInputOverrun
							d.bytesWritten += uint64(outPos)
							return consumed, outPos, StatusError, d.err
						}
						d.bytesWritten += uint64(outPos)
						return consumed, outPos, StatusOK, nil
					}
					b = d.in[0]
				}
				// Every produced byte is pushed onto the back of the
				// history ring, which is the decompressor's primary
				// write path: once the ring holds its full lookback
				// capacity, each push evicts the oldest byte straight
				// into the caller's output, exactly the "suffix of
				// history older than the lookback window" the flushing
				// step describes. out[outPos:] is non-empty here (the
				// loop guard above returned otherwise), so the single
				// source byte always gets copied.
				d.one[0] = b
				_, evicted := d.history.ShiftCopy(d.one[:], out[outPos:])
				outPos += evicted
				if d.phase == decCopyLiteral {
					d.in = d.in[1:]
				}
				d.remaining--
			}
			if d.phase == decCopyHistory {
				d.remaining = int(d.literalAfter)
				d.curLiteralLen = d.literalAfter
				d.phase = decCopyLiteral
				continue
			}
			d.lastLiteralLength = d.curLiteralLen
			d.phase = decNeedCommand
			continue

		case decFlushing:
			for d.history.Len() > 0 {
				if outPos >= len(out) {
					d.bytesWritten += uint64(outPos)
					return consumed, outPos, StatusOK, nil
				}
				b, _ := d.history.PopFront()
				out[outPos] = b
				outPos++
			}
			d.finished = true
			d.bytesWritten += uint64(outPos)
			return consumed, outPos, StatusEnd, nil

		case decNeedCommand:
			n, cmd, decErr := Decode(d.in, d.lastLiteralLength, d.firstCommand)
			if decErr != nil {
				d.err = decErr
				d.bytesWritten += uint64(outPos)
				return consumed, outPos, StatusError, d.err
			}
			if n == 0 {
				if eof {
					if len(d.in) == 0 {
						d.err = ErrEndOfStreamNotFound
					} else {
						d.err = ErrInputOverrun
					}
					d.bytesWritten += uint64(outPos)
					return consumed, outPos, StatusError, d.err
				}
				d.bytesWritten += uint64(outPos)
				return consumed, outPos, StatusOK, nil
			}
			d.in = d.in[n:]
			d.firstCommand = false

			if cmd.EndOfStream {
				if len(d.in) != 0 {
					d.err = ErrInputNotConsumed
					d.bytesWritten += uint64(outPos)
					return consumed, outPos, StatusError, d.err
				}
				d.phase = decFlushing
				continue
			}

			if cmd.FirstLiteral || cmd.Lookback == 0 {
				d.remaining = int(cmd.LiteralLength)
				d.curLiteralLen = cmd.LiteralLength
				d.phase = decCopyLiteral
			} else {
				d.remaining = int(cmd.CopyLength)
				d.distance = cmd.Lookback
				d.literalAfter = cmd.LiteralLength
				d.phase = decCopyHistory
			}
			continue
		}
	}
}
