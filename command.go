// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzo1x

// Command is one wire-format command pair: a history copy (possibly
// absent) followed by the literal bytes that immediately follow it.
// FirstLiteral marks the dedicated leading literal-only pair every
// stream begins with; EndOfStream marks the terminal sentinel. Neither
// Lookback nor CopyLength is meaningful when FirstLiteral is set, and
// both are exactly the sentinel's fixed values when EndOfStream is set.
type Command struct {
	FirstLiteral  bool
	EndOfStream   bool
	Lookback      uint32
	CopyLength    uint32
	LiteralLength uint32
}

// literalContinuation reports whether cmd carries literal bytes with no
// accompanying history copy, other than the dedicated first-literal
// pair. This is the wire-format's "long literal" command appearing
// mid-stream, which the data model folds into an ordinary Command with
// a zero Lookback/CopyLength rather than a dedicated type — see
// DESIGN.md for why: the source format overloads the same top-nibble-
// zero byte pattern for this and for the short history-copy forms A/B,
// disambiguated only by the previous command's literal length.
func (cmd Command) literalContinuation() bool {
	return !cmd.FirstLiteral && !cmd.EndOfStream && cmd.Lookback == 0 && cmd.CopyLength == 0
}

// EncodeRun writes the run encoding of remainder (a non-negative excess
// over a form's inline field) to dst: zero or more 0x00 filler bytes,
// each worth 255, followed by one remainder byte in 1..=255. widthBits
// is accepted for symmetry with DecodeRun and the spec's function
// signature; the run encoding itself does not depend on it. Returns 0
// if dst is too small.
func EncodeRun(dst []byte, remainder int, widthBits int) int {
	_ = widthBits
	if remainder < 0 {
		return 0
	}
	n := 0
	t := remainder
	for t > 255 {
		if n >= len(dst) {
			return 0
		}
		dst[n] = 0
		n++
		t -= 255
	}
	if n >= len(dst) {
		return 0
	}
	dst[n] = byte(t)
	n++
	return n
}

// DecodeRun reads a run encoding from src: leading 0x00 filler bytes
// (each worth 255) followed by one non-zero remainder byte. Returns
// (0, 0) if src runs out before a non-zero byte is found.
func DecodeRun(src []byte, widthBits int) (consumed int, runLength int) {
	_ = widthBits
	i := 0
	fillers := 0
	for i < len(src) && src[i] == 0 {
		i++
		fillers++
	}
	if i >= len(src) {
		return 0, 0
	}
	remainder := int(src[i])
	i++
	return i, fillers*255 + remainder
}

// encodeField writes a form's inline length field (already range-checked
// by the caller to fit alongside its other bits) or, if value exceeds
// mask, signals escape (a zero field) and appends the run encoding of
// value-mask. Returns the field bits to OR into the command byte and
// any extra bytes that must follow the command's fixed-size header.
func encodeField(value int, mask int, widthBits int) (field byte, extra []byte) {
	if value >= 1 && value <= mask {
		return byte(value), nil
	}
	remainder := value - mask
	size := remainder/255 + 2
	if size < 1 {
		size = 1
	}
	buf := make([]byte, size)
	n := EncodeRun(buf, remainder, widthBits)
	return 0, buf[:n]
}

// encodeFirstLiteral writes the dedicated leading-literal-pair form: a
// single byte L+17 for 1<=L<=238 (the real wire format's direct range;
// this codec's own compressor also uses it for first literals shorter
// than 4, see DESIGN.md), otherwise the same escape-and-run encoding used by
// mid-stream long literals (encodeLongLiteral), since the real format
// treats first-literal overflow identically to a mid-stream long literal.
func encodeFirstLiteral(dst []byte, length uint32) int {
	if length == 0 {
		// No bytes precede the first match (or the stream is empty):
		// the dedicated form is omitted entirely.
		return 0
	}
	if length <= 238 {
		if len(dst) < 1 {
			return 0
		}
		dst[0] = opcodeByte(int(length) + 17)
		return 1
	}
	return encodeLongLiteral(dst, length)
}

// encodeLongLiteral writes the mid-stream long-literal form: top four
// bits zero, low four bits the inline L-3 field or an escape to the
// run encoding of L-3-15.
func encodeLongLiteral(dst []byte, length uint32) int {
	field, extra := encodeField(int(length)-3, runMaskLiteral, 4)
	need := 1 + len(extra)
	if len(dst) < need {
		return 0
	}
	dst[0] = field
	copy(dst[1:], extra)
	return need
}

// ssBits returns the SS field (0..3) a history copy embeds for the
// literal that follows it; literal lengths >3 are carried by a separate
// long-literal command instead, so the embedded field is 0.
func ssBits(literalLength uint32) uint32 {
	if literalLength <= 3 {
		return literalLength
	}
	return 0
}

func encodeFormA(dst []byte, lookback, ss uint32) int {
	if len(dst) < 2 {
		return 0
	}
	val := lookback - 1
	d := val & 0x3
	h := val >> 2
	dst[0] = opcodeByte(int(d<<2) | int(ss))
	dst[1] = opcodeByte(int(h))
	return 2
}

func encodeFormB(dst []byte, lookback, ss uint32) int {
	if len(dst) < 2 {
		return 0
	}
	val := lookback - (shortMatchBaseOffset + 1)
	d := val & 0x3
	h := val >> 2
	dst[0] = opcodeByte(int(d<<2) | int(ss))
	dst[1] = opcodeByte(int(h))
	return 2
}

// encodeFormCD writes the combined forms C (copy_length 3-4) and D
// (copy_length 5-8): both share one uniform bit layout, distinguished
// only by how many of the three length bits are nonzero, exactly as
// the teacher's fast-path M2 emission computes it.
func encodeFormCD(dst []byte, length, lookback, ss uint32) int {
	if len(dst) < 2 {
		return 0
	}
	off := lookback - 1
	dst[0] = opcodeByte(int((length-1)<<5) | int((off&7)<<2) | int(ss))
	dst[1] = opcodeByte(int(off >> 3))
	return 2
}

func encodeFormE(dst []byte, length, lookback, ss uint32) int {
	field, extra := encodeField(int(length)-2, runMaskFormE, 5)
	v16 := ((lookback - 1) << 2) | ss
	need := 1 + len(extra) + 2
	if len(dst) < need {
		return 0
	}
	dst[0] = opcodeByte(markerE | int(field))
	n := 1
	n += copy(dst[n:], extra)
	dst[n] = opcodeByte(int(v16))
	dst[n+1] = opcodeByte(int(v16 >> 8))
	return need
}

func encodeFormF(dst []byte, length, lookback, ss uint32) int {
	field, extra := encodeField(int(length)-2, runMaskFormF, 3)
	baseDist := lookback - maxOffsetM3
	h := (baseDist >> 14) & 1
	rem := baseDist &^ (1 << 14)
	v16 := (rem << 2) | ss
	need := 1 + len(extra) + 2
	if len(dst) < need {
		return 0
	}
	dst[0] = opcodeByte(markerF | int(h<<3) | int(field))
	n := 1
	n += copy(dst[n:], extra)
	dst[n] = opcodeByte(int(v16))
	dst[n+1] = opcodeByte(int(v16 >> 8))
	return need
}

// Encode writes cmd to dst, choosing the smallest wire-format form
// applicable to (cmd.Lookback, cmd.CopyLength, cmd.LiteralLength,
// lastLiteralLength). lastLiteralLength is the literal length of the
// *previous* command pair in the stream (0 if cmd is the first),
// required to legally select forms A and B. Returns 0 if dst is too
// small for the whole command (header plus any long-literal overflow
// header; raw literal/history bytes themselves are the caller's
// responsibility to copy separately).
func Encode(dst []byte, cmd Command, lastLiteralLength uint32) int {
	if cmd.EndOfStream {
		if len(dst) < 3 {
			return 0
		}
		copy(dst, endOfStream[:])
		return 3
	}
	if cmd.FirstLiteral {
		return encodeFirstLiteral(dst, cmd.LiteralLength)
	}
	if cmd.literalContinuation() {
		return encodeLongLiteral(dst, cmd.LiteralLength)
	}

	ss := ssBits(cmd.LiteralLength)
	var n int
	switch {
	case cmd.CopyLength == 2 && cmd.Lookback <= maxOffsetM1 &&
		lastLiteralLength >= 1 && lastLiteralLength <= 3:
		n = encodeFormA(dst, cmd.Lookback, ss)
	case cmd.CopyLength == 3 && cmd.Lookback >= shortMatchBaseOffset+1 &&
		cmd.Lookback <= shortMatchBaseOffset+1024 && lastLiteralLength >= 4:
		n = encodeFormB(dst, cmd.Lookback, ss)
	case cmd.CopyLength >= 3 && cmd.CopyLength <= maxLenCD && cmd.Lookback <= maxOffsetM2:
		n = encodeFormCD(dst, cmd.CopyLength, cmd.Lookback, ss)
	case cmd.Lookback <= maxOffsetM3:
		n = encodeFormE(dst, cmd.CopyLength, cmd.Lookback, ss)
	case cmd.Lookback <= maxOffsetM4:
		n = encodeFormF(dst, cmd.CopyLength, cmd.Lookback, ss)
	default:
		return 0
	}
	if n == 0 {
		return 0
	}
	if cmd.LiteralLength > 3 {
		m := encodeLongLiteral(dst[n:], cmd.LiteralLength)
		if m == 0 {
			return 0
		}
		n += m
	}
	return n
}

// Decode reads one command header from src. lastLiteralLength is the
// literal length of the previous command pair (ignored when
// firstLiteral is true). With firstLiteral true, a first byte of 18 or
// more is the dedicated leading-literal form, a top-nibble-zero byte is
// a long literal (returned with FirstLiteral set), and any other byte
// is read as a generic command with no preceding literal, such as the
// terminator of an empty stream. Returns (0, Command{}, nil) if src does not yet
// hold a complete header — the caller should wait for more input. A
// non-nil err means src holds a complete but invalid header (a
// reserved bit pattern); consumed is always 0 in that case, since
// there is no well-defined command length to skip past.
func Decode(src []byte, lastLiteralLength uint32, firstLiteral bool) (consumed int, cmd Command, err error) {
	if len(src) == 0 {
		return 0, Command{}, nil
	}

	// The dedicated first-literal form only exists for byte values
	// 18..255 (length 1..238); a first byte below that means the
	// stream has no leading literal at all (length 0, possibly empty
	// input) and the byte is the first *generic* command instead, with
	// no literal context behind it.
	if firstLiteral && src[0] >= 18 {
		n, c := decodeFirstLiteral(src)
		return n, c, nil
	}
	if firstLiteral {
		lastLiteralLength = 0
	}

	inst := src[0]
	switch {
	case inst >= markerCD:
		n, c := decodeFormCD(src)
		return n, c, nil
	case inst >= markerE:
		n, c := decodeFormE(src)
		return n, c, nil
	case inst >= markerF:
		return decodeFormF(src)
	default:
		if lastLiteralLength == 0 {
			n, c, err := decodeLiteralContinuation(src)
			if n > 0 {
				c.FirstLiteral = firstLiteral
			}
			return n, c, err
		}
		if lastLiteralLength <= 3 {
			n, c := decodeFormA(src)
			return n, c, nil
		}
		n, c := decodeFormB(src)
		return n, c, nil
	}
}

func decodeFirstLiteral(src []byte) (int, Command) {
	return 1, Command{FirstLiteral: true, LiteralLength: uint32(int(src[0]) - 17)}
}

func decodeLiteralContinuation(src []byte) (int, Command, error) {
	if src[0] != 0 {
		// Inline long-literal field: the low nibble (1..15) is L-3.
		return 1, Command{LiteralLength: uint32(src[0]) + 3}, nil
	}
	n, length := decodeLongLiteralAfterEscape(src)
	if n == 0 {
		return 0, Command{}, nil
	}
	return n, Command{LiteralLength: uint32(length)}, nil
}

// decodeLongLiteralAfterEscape decodes the byte after a 0x00 long-literal
// escape marker and reconstructs the literal length (mask=15, +3).
func decodeLongLiteralAfterEscape(src []byte) (consumed int, length int) {
	n, runLength := DecodeRun(src[1:], 4)
	if n == 0 {
		return 0, 0
	}
	return 1 + n, runMaskLiteral + runLength + 3
}

func decodeFormA(src []byte) (int, Command) {
	if len(src) < 2 {
		return 0, Command{}
	}
	inst, tail := src[0], src[1]
	d := uint32(inst>>2) & 0x3
	h := uint32(tail)
	lookback := (h<<2 | d) + 1
	ss := uint32(inst) & 0x3
	return 2, Command{Lookback: lookback, CopyLength: 2, LiteralLength: ss}
}

func decodeFormB(src []byte) (int, Command) {
	if len(src) < 2 {
		return 0, Command{}
	}
	inst, tail := src[0], src[1]
	d := uint32(inst>>2) & 0x3
	h := uint32(tail)
	lookback := (h<<2 | d) + shortMatchBaseOffset + 1
	ss := uint32(inst) & 0x3
	return 2, Command{Lookback: lookback, CopyLength: 3, LiteralLength: ss}
}

func decodeFormCD(src []byte) (int, Command) {
	if len(src) < 2 {
		return 0, Command{}
	}
	inst, tail := src[0], src[1]
	length := uint32(inst>>5) + 1
	off := (uint32(tail) << 3) + (uint32(inst>>2)&0x7)
	ss := uint32(inst) & 0x3
	return 2, Command{Lookback: off + 1, CopyLength: length, LiteralLength: ss}
}

func decodeFormE(src []byte) (int, Command) {
	inst := src[0]
	field := uint32(inst) & 0x1f
	pos := 1
	length := field + 2
	if field == 0 {
		n, runLength := DecodeRun(src[pos:], 5)
		if n == 0 {
			return 0, Command{}
		}
		pos += n
		length = runMaskFormE + uint32(runLength) + 2
	}
	if len(src) < pos+2 {
		return 0, Command{}
	}
	v16 := uint32(src[pos]) | uint32(src[pos+1])<<8
	pos += 2
	lookback := (v16 >> 2) + 1
	ss := v16 & 0x3
	return pos, Command{Lookback: lookback, CopyLength: length, LiteralLength: ss}
}

func decodeFormF(src []byte) (int, Command, error) {
	inst := src[0]
	field := uint32(inst) & 0x7
	pos := 1
	length := field + 2
	if field == 0 {
		n, runLength := DecodeRun(src[pos:], 3)
		if n == 0 {
			return 0, Command{}, nil
		}
		pos += n
		length = runMaskFormF + uint32(runLength) + 2
	}
	if len(src) < pos+2 {
		return 0, Command{}, nil
	}
	v16 := uint32(src[pos]) | uint32(src[pos+1])<<8
	pos += 2
	baseDist := (uint32(inst&0x8) << 11) | (v16 >> 2)
	ss := v16 & 0x3
	if baseDist == 0 {
		// The all-zero distance field is reserved exclusively for the
		// end-of-stream sentinel's exact tuple; any other length/ss
		// riding on it is a corrupted stream, not a valid form F command.
		if length != 3 || ss != 0 {
			return 0, Command{}, ErrMalformedCommand
		}
		return pos, Command{EndOfStream: true, Lookback: maxOffsetM3, CopyLength: length, LiteralLength: ss}, nil
	}
	lookback := baseDist + maxOffsetM3
	return pos, Command{Lookback: lookback, CopyLength: length, LiteralLength: ss}, nil
}
