// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import "encoding/binary"

// Fixed-width little-endian integer helpers (§4.1). These operate on
// already-available byte slices; the framer/decoders are responsible for
// ensuring enough bytes are present (or returning ErrInsufficientData)
// before calling these.

func readUint16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func readUint24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func readUint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func readUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func putUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func putUint24(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
}

func putUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func putUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
