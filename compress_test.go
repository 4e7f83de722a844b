// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzo1x

import "testing"

func TestCompressorResetProducesIndependentStream(t *testing.T) {
	c := NewCompressor(nil)
	first := driveCompress(t, c, []byte("hello world"), 64, 64)

	c.Reset(nil)
	second := driveCompress(t, c, []byte("hello world"), 64, 64)

	if len(first) != len(second) {
		t.Fatalf("Reset produced a differently sized stream: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Reset produced a different stream at byte %d: %x vs %x", i, first[i], second[i])
		}
	}
}

func TestCompressorRejectsUseAfterError(t *testing.T) {
	c := NewCompressor(nil)
	c.err = ErrEncoderFault
	_, _, status, err := c.Process([]byte("x"), make([]byte, 16))
	if status != StatusError || err != ErrEncoderFault {
		t.Fatalf("poisoned compressor returned status=%v err=%v", status, err)
	}
}

func TestDefaultCompressOptionsSkipTrigger(t *testing.T) {
	opts := DefaultCompressOptions()
	if got := opts.skipTrigger(); got != defaultSkipTrigger {
		t.Fatalf("skipTrigger() = %d, want %d", got, defaultSkipTrigger)
	}
	var nilOpts *CompressOptions
	if got := nilOpts.skipTrigger(); got != defaultSkipTrigger {
		t.Fatalf("nil skipTrigger() = %d, want %d", got, defaultSkipTrigger)
	}
	clamped := &CompressOptions{SkipTrigger: 999}
	if got := clamped.skipTrigger(); got != maxSkipTrigger {
		t.Fatalf("clamped skipTrigger() = %d, want %d", got, maxSkipTrigger)
	}
}
