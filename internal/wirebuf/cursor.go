// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2013 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

// Package wirebuf implements the ByteCursor capability: a consumable byte
// queue fed from outside by a transport, rather than pulling from an
// io.Reader itself. This lets the decoder suspend whenever bytes run out
// and resume later from the same cursor once more bytes are fed.
package wirebuf

// Cursor is a consumable byte queue. Peek does not advance the read
// position; Consume does. Feed appends newly-arrived transport bytes.
//
// Cursor is not safe for concurrent use: the codec's single-threaded
// cooperative model (one connection, one owning task) means a Cursor is
// only ever driven by one goroutine at a time.
type Cursor struct {
	buf []byte
	idx int
}

// NewCursor returns an empty cursor. Feed bytes into it before calling
// Peek/Consume.
func NewCursor() *Cursor {
	return &Cursor{}
}

// Feed appends b to the cursor's pending bytes. The slice is copied, so
// the caller's buffer may be reused or mutated after Feed returns.
func (c *Cursor) Feed(b []byte) {
	if len(b) == 0 {
		return
	}
	c.compact()
	c.buf = append(c.buf, b...)
}

// Size reports how many unconsumed bytes remain in the cursor.
func (c *Cursor) Size() int {
	return len(c.buf) - c.idx
}

// Peek returns the next n bytes without consuming them, or nil if fewer
// than n bytes are buffered. The returned slice aliases the cursor's
// internal storage and is only valid until the next Feed or Consume call.
func (c *Cursor) Peek(n int) []byte {
	if n < 0 || c.Size() < n {
		return nil
	}
	return c.buf[c.idx : c.idx+n]
}

// PeekByte returns the byte at offset off past the current read position,
// and whether it was available.
func (c *Cursor) PeekByte(off int) (byte, bool) {
	if c.Size() <= off {
		return 0, false
	}
	return c.buf[c.idx+off], true
}

// Consume returns the next n bytes and advances the read position past
// them. It panics if fewer than n bytes are available; callers must check
// Size (or use Peek) first, since InsufficientData must never surface as
// a panic.
func (c *Cursor) Consume(n int) []byte {
	if c.Size() < n {
		panic("wirebuf: Consume past end of buffered data")
	}
	p := c.buf[c.idx : c.idx+n]
	c.idx += n
	return p
}

// ConsumeUntil returns the bytes up to (excluding) the first occurrence
// of delim and consumes delim itself. ok is false if delim does not
// appear in the buffered bytes yet.
func (c *Cursor) ConsumeUntil(delim byte) (slice []byte, ok bool) {
	for i := c.idx; i < len(c.buf); i++ {
		if c.buf[i] == delim {
			slice = c.buf[c.idx:i]
			c.idx = i + 1
			return slice, true
		}
	}
	return nil, false
}

// compact discards already-consumed bytes once they are no longer
// referenced, so long-lived connections don't grow the backing array
// without bound. Safe to call at any time; it never moves unconsumed data
// out from under an in-flight Peek result because Peek results are only
// valid until the next mutating call (documented above).
func (c *Cursor) compact() {
	if c.idx == 0 {
		return
	}
	if c.idx == len(c.buf) {
		c.buf = c.buf[:0]
		c.idx = 0
		return
	}
	n := copy(c.buf, c.buf[c.idx:])
	c.buf = c.buf[:n]
	c.idx = 0
}
