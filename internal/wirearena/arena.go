// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2013 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

// Package wirearena implements the Arena capability: a bump allocator
// whose lifetime is tied to one Reply, handing out byte storage with no
// per-object free. Borrowed strings handed back to callers alias this
// storage and must not outlive the Arena.
package wirearena

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/bytebufferpool"
)

var pool bytebufferpool.Pool

// Arena allocates raw bytes with a lifetime tied to one decoded Reply.
// There is no individual free: the whole Arena is released together via
// Release, which returns its backing buffer to the pool.
//
// Arena additionally interns strings: column/catalog/table names recur
// heavily within one ResultSet (and across ResultSets on the same
// connection), so repeated Intern calls for identical bytes return the
// same Go string instead of allocating a new one each time.
type Arena struct {
	buf    *bytebufferpool.ByteBuffer
	intern map[uint64]string
	once   sync.Once
}

// New returns a fresh Arena backed by a pooled buffer.
func New() *Arena {
	return &Arena{buf: pool.Get()}
}

// Alloc copies b into arena-owned storage and returns a slice viewing
// that copy. The returned slice is valid until Release is called.
func (a *Arena) Alloc(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	start := a.buf.Len()
	if _, err := a.buf.Write(b); err != nil {
		// bytebufferpool.ByteBuffer.Write never returns a non-nil error;
		// guard anyway since Arena must not silently corrupt data.
		panic("wirearena: buffer write failed: " + err.Error())
	}
	return a.buf.B[start : start+len(b)]
}

// Intern returns an arena-lifetime string equal to b, reusing a
// previously interned value when b has already been seen.
func (a *Arena) Intern(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	a.once.Do(func() { a.intern = make(map[uint64]string) })
	h := xxhash.Sum64(b)
	if s, ok := a.intern[h]; ok && s == string(b) {
		return s
	}
	s := string(a.Alloc(b))
	a.intern[h] = s
	return s
}

// Release returns the Arena's backing buffer to the shared pool. The
// Arena, and every slice/string it handed out, must not be used again
// afterward.
func (a *Arena) Release() {
	pool.Put(a.buf)
	a.buf = nil
	a.intern = nil
}
