// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzo1x

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// driveCompress and driveDecompress feed src through a Compressor or
// Decompressor using chunkIn-size
// input reads and chunkOut-size output writes, simulating an arbitrary
// caller-chosen chunking pattern across Process calls.
func driveCompress(t *testing.T, c *Compressor, src []byte, chunkIn, chunkOut int) []byte {
	t.Helper()
	var result []byte
	out := make([]byte, chunkOut)
	pos := 0
	for {
		var in []byte
		if pos < len(src) {
			end := pos + chunkIn
			if end > len(src) {
				end = len(src)
			}
			in = src[pos:end]
		}
		consumed, written, status, err := c.Process(in, out)
		require.NoError(t, err)
		pos += consumed
		result = append(result, out[:written]...)
		if status == StatusEnd {
			return result
		}
	}
}

func driveDecompress(t *testing.T, d *Decompressor, src []byte, chunkIn, chunkOut int) []byte {
	t.Helper()
	var result []byte
	out := make([]byte, chunkOut)
	pos := 0
	for {
		var in []byte
		if pos < len(src) {
			end := pos + chunkIn
			if end > len(src) {
				end = len(src)
			}
			in = src[pos:end]
		}
		consumed, written, status, err := d.Process(in, out)
		require.NoError(t, err)
		pos += consumed
		result = append(result, out[:written]...)
		if status == StatusEnd {
			return result
		}
	}
}

func compressAll(t *testing.T, src []byte, chunkIn, chunkOut int) []byte {
	t.Helper()
	c := NewCompressor(DefaultCompressOptions())
	return driveCompress(t, c, src, chunkIn, chunkOut)
}

func decompressAll(t *testing.T, src []byte, chunkIn, chunkOut int) []byte {
	t.Helper()
	d := NewDecompressor()
	return driveDecompress(t, d, src, chunkIn, chunkOut)
}

func TestEmptyStreamRoundTrip(t *testing.T) {
	compressed := compressAll(t, nil, 64, 64)
	require.Equal(t, []byte{0x11, 0x00, 0x00}, compressed)

	got := decompressAll(t, compressed, 64, 64)
	require.Empty(t, got)
}

func TestSingleByteLiteralRoundTrip(t *testing.T) {
	src := []byte{0x41}
	compressed := compressAll(t, src, 64, 64)
	got := decompressAll(t, compressed, 64, 64)
	require.Equal(t, src, got)
}

func TestRunLengthRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte{0x00}, 20)
	compressed := compressAll(t, src, 64, 64)
	got := decompressAll(t, compressed, 64, 64)
	require.Equal(t, src, got)
}

func TestRepeatingPatternRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("abcdefgh"), 2)
	compressed := compressAll(t, src, 64, 64)
	got := decompressAll(t, compressed, 64, 64)
	require.Equal(t, src, got)
}

func TestLargeRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := make([]byte, 100*1024)
	rng.Read(src)
	compressed := compressAll(t, src, 4096, 4096)
	got := decompressAll(t, compressed, 4096, 4096)
	require.Equal(t, src, got)
}

func TestLargeCompressibleRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	chunk := make([]byte, 256)
	rng.Read(chunk)
	src := bytes.Repeat(chunk, 400) // 100 KiB of a repeating 256-byte block
	compressed := compressAll(t, src, 4096, 4096)
	require.Less(t, len(compressed), len(src)/2)
	got := decompressAll(t, compressed, 4096, 4096)
	require.Equal(t, src, got)
}

// TestChunkingInvarianceEncode verifies that splitting the same input
// into different Process call boundaries always compresses to
// something the decoder can reconstruct back to the original bytes.
// It does not assert byte-identical compressed output: a match in
// progress never waits for more input across Process calls (see
// DESIGN.md), so a smaller chunkIn can close a match earlier and emit
// a shorter one than a single large call would, which is a valid
// compression-ratio difference, not a correctness one.
func TestChunkingInvarianceEncode(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	src := make([]byte, 50*1024)
	rng.Read(src)
	// Inject some repeats so history copies are exercised too.
	copy(src[30000:30256], src[1000:1256])

	for _, chunkIn := range []int{1, 3, 7, 64, 4096, len(src)} {
		compressed := compressAll(t, src, chunkIn, 1<<20)
		got := decompressAll(t, compressed, 4096, 4096)
		require.Equal(t, src, got, "chunkIn=%d", chunkIn)
	}
}

// TestChunkingInvarianceDecode verifies that feeding the same compressed
// stream to the decompressor through different input/output chunk sizes
// always reconstructs the same original bytes.
func TestChunkingInvarianceDecode(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	src := make([]byte, 20*1024)
	rng.Read(src)
	copy(src[10000:10300], src[500:800])
	compressed := compressAll(t, src, len(src), 1<<20)

	for _, chunkIn := range []int{1, 5, 17, 4096} {
		for _, chunkOut := range []int{1, 5, 17, 4096} {
			got := decompressAll(t, compressed, chunkIn, chunkOut)
			require.Equal(t, src, got, "chunkIn=%d chunkOut=%d", chunkIn, chunkOut)
		}
	}
}

func TestOneByteAtATimeLongLiteralRun(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	src := make([]byte, 400) // random bytes with no 4-byte repeat: one long literal run
	rng.Read(src)
	compressed := compressAll(t, src, 1, 1)
	got := decompressAll(t, compressed, 1, 1)
	require.Equal(t, src, got)
}
