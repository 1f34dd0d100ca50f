// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

// Length-encoded integer and string codec (§4.1). The packet framer
// guarantees a whole packet's payload is buffered before any decoder
// runs (§4.2), so these operate on an already-fully-available byte slice
// with an explicit read position rather than on the Cursor directly.

// lenencInt reads a length-encoded integer starting at b[0]. It returns
// the decoded value, whether the NULL marker (0xFB) was seen, and the
// number of bytes consumed. A 0xFF prefix is reserved (it is the
// error-packet tag consumed at a different layer) and is reported as
// MalformedPacket.
func lenencInt(b []byte) (val uint64, isNull bool, n int, err error) {
	if len(b) == 0 {
		return 0, false, 0, ErrInsufficientData
	}
	switch f := b[0]; {
	case f <= 0xFA:
		return uint64(f), false, 1, nil
	case f == 0xFB:
		return 0, true, 1, nil
	case f == 0xFC:
		if len(b) < 3 {
			return 0, false, 0, ErrInsufficientData
		}
		return uint64(readUint16(b[1:3])), false, 3, nil
	case f == 0xFD:
		if len(b) < 4 {
			return 0, false, 0, ErrInsufficientData
		}
		return uint64(readUint24(b[1:4])), false, 4, nil
	case f == 0xFE:
		if len(b) < 9 {
			return 0, false, 0, ErrInsufficientData
		}
		return readUint64(b[1:9]), false, 9, nil
	default: // 0xFF
		return 0, false, 0, malformed("reserved LENENC prefix 0xFF")
	}
}

// lenencIntBytes encodes n as a length-encoded integer, choosing the
// narrowest representation (§4.1). Values beyond the 8-byte (0xFE-prefix)
// form do not exist on the wire; n is a uint64 so that form always fits.
func lenencIntBytes(n uint64) []byte {
	switch {
	case n <= 0xFA:
		return []byte{byte(n)}
	case n <= 0xFFFF:
		return append([]byte{0xFC}, putUint16(uint16(n))...)
	case n <= 0xFFFFFF:
		return append([]byte{0xFD}, putUint24(uint32(n))...)
	default:
		return append([]byte{0xFE}, putUint64(n)...)
	}
}

// lenencString reads a length-encoded string starting at b[0]: a LENENC
// integer n followed by n raw bytes. Zero-length strings are valid and
// distinct from NULL.
func lenencString(b []byte) (s []byte, isNull bool, n int, err error) {
	num, isNull, hdr, err := lenencInt(b)
	if err != nil || isNull {
		return nil, isNull, hdr, err
	}
	if len(b) < hdr+int(num) {
		return nil, false, 0, ErrInsufficientData
	}
	return b[hdr : hdr+int(num)], false, hdr + int(num), nil
}

// skipLenencString advances past a length-encoded string without
// retaining its bytes, returning the number of bytes it occupied.
func skipLenencString(b []byte) (n int, err error) {
	_, isNull, n, err := lenencString(b)
	if err != nil {
		return 0, err
	}
	_ = isNull
	return n, nil
}

// nulTermString reads bytes up to (excluding) the first 0x00 byte and
// returns them along with the total span including the terminator.
func nulTermString(b []byte) (s []byte, n int, err error) {
	for i, c := range b {
		if c == 0x00 {
			return b[:i], i + 1, nil
		}
	}
	return nil, 0, ErrInsufficientData
}
