// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

// Package ring implements a fixed-capacity byte ring buffer with
// periodic (modulo-capacity) indexing. It is the history container
// shared by the LZO1X compressor and decompressor: both need a
// bounded window of the most recently seen bytes that can be read by
// logical offset without the caller ever touching a raw modular index.
package ring

// Ring is a fixed-capacity container of bytes. Once Len reaches Cap,
// further PushBack/PushFront calls overwrite the element on the
// opposite end (the oldest for PushBack, the newest for PushFront), exactly as the teacher's slidingWindowDict buffer wraps
// around its insertPos/scanPos/removePos trio, but exposed here as a
// standalone, general-purpose type instead of being embedded in the
// match finder.
type Ring struct {
	buf  []byte
	head int // physical index of the logical-index-0 (oldest) byte
	size int // number of logically occupied bytes, 0 <= size <= cap(buf)
}

// New returns an empty Ring with the given capacity. Capacity must be > 0.
func New(capacity int) *Ring {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Ring{buf: make([]byte, capacity)}
}

// Cap returns the ring's fixed capacity.
func (r *Ring) Cap() int { return len(r.buf) }

// Len returns the number of bytes currently held.
func (r *Ring) Len() int { return r.size }

// IsFull reports whether the ring holds Cap bytes.
func (r *Ring) IsFull() bool { return r.size == len(r.buf) }

// Clear empties the ring without releasing the backing array.
func (r *Ring) Clear() {
	r.head = 0
	r.size = 0
}

func (r *Ring) physical(logical int) int {
	p := r.head + logical
	c := len(r.buf)
	p %= c
	if p < 0 {
		p += c
	}
	return p
}

// At returns the byte at logical index i (0 is the oldest byte held).
// i must satisfy 0 <= i < Len.
func (r *Ring) At(i int) byte {
	if i < 0 || i >= r.size {
		panic("ring: index out of range")
	}
	return r.buf[r.physical(i)]
}

// Set overwrites the byte at logical index i (0 is the oldest byte held).
func (r *Ring) Set(i int, b byte) {
	if i < 0 || i >= r.size {
		panic("ring: index out of range")
	}
	r.buf[r.physical(i)] = b
}

// SetSlice overwrites Len(data) consecutive bytes starting at logical
// index i. The written range must lie entirely within [0, Len).
func (r *Ring) SetSlice(i int, data []byte) {
	for k, b := range data {
		r.Set(i+k, b)
	}
}

// PushBack appends b as the newest byte, evicting the oldest byte first
// if the ring is already full.
func (r *Ring) PushBack(b byte) {
	c := len(r.buf)
	if r.size < c {
		r.buf[r.physical(r.size)] = b
		r.size++
		return
	}
	r.buf[r.head] = b
	r.head = (r.head + 1) % c
}

// PushFront prepends b as the oldest byte, evicting the newest byte
// first if the ring is already full.
func (r *Ring) PushFront(b byte) {
	c := len(r.buf)
	r.head = (r.head - 1 + c) % c
	r.buf[r.head] = b
	if r.size < c {
		r.size++
	}
}

// PopBack removes and returns the newest byte. ok is false if the ring is empty.
func (r *Ring) PopBack() (b byte, ok bool) {
	if r.size == 0 {
		return 0, false
	}
	r.size--
	return r.buf[r.physical(r.size)], true
}

// PopFront removes and returns the oldest byte. ok is false if the ring is empty.
func (r *Ring) PopFront() (b byte, ok bool) {
	if r.size == 0 {
		return 0, false
	}
	b = r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return b, true
}

// Append pushes all of data onto the back, silently evicting the
// oldest bytes on overflow. Use ShiftCopy instead when the evicted
// bytes themselves need to be observed.
func (r *Ring) Append(data []byte) {
	for _, b := range data {
		r.PushBack(b)
	}
}

// ShiftCopy appends bytes from src to the back of the ring one at a
// time, evicting displaced old bytes into sink as room in the ring is
// needed. It stops early if sink fills up before src is exhausted,
// leaving the ring and src position where a caller can resume on the
// next call with a fresh sink — this is the decompressor's primary
// write path: src is freshly expanded history/literal bytes, sink is
// the caller's bounded output buffer, and a full sink models normal
// backpressure rather than an error.
func (r *Ring) ShiftCopy(src, sink []byte) (copied, evicted int) {
	for copied < len(src) {
		if r.IsFull() {
			if evicted >= len(sink) {
				break
			}
			b, _ := r.PopFront()
			sink[evicted] = b
			evicted++
		}
		r.PushBack(src[copied])
		copied++
	}
	return copied, evicted
}
